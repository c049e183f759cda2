// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
// The cache evicts the least recently used entry once capacity is exceeded.
// When a TTL is configured, entries older than the TTL are treated as missing
// and dropped on access.
//
// Usage:
//
//	pages := cache.NewLRU[string, Page](64, cache.WithTTL[string, Page](10*time.Minute))
//
//	pages.Put("student", page)
//	if page, ok := pages.Get("student"); ok {
//	    // fresh entry
//	}
//
// All operations are O(1) and guarded by a single mutex.
package cache
