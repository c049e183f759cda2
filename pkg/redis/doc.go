// Package redis connects to the optional Redis instance backing the shared
// content cache.
//
// Connect retries the initial ping, Healthcheck plugs the client into the
// readiness check and Storage offers a prefixed byte store with expiry:
//
//	if cfg.Redis.Enabled() {
//	    client, err := redis.Connect(ctx, cfg.Redis)
//	    if err != nil {
//	        return err
//	    }
//	    store := redis.NewStorage(client, cfg.Redis.KeyPrefix)
//	}
//
// Storage tests need a live server and are skipped unless REDIS_TEST_URL is set.
package redis
