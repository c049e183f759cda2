// Package gateway is the JSON client for the upstream content and
// registration API.
//
// Every call attaches a freshly fetched bearer token, disables caching and
// is never retried. A non-2xx response is classified once, here, into
// either *ValidationError (the body is an object of field violation
// groups) or *OpaqueError:
//
//	_, err := client.Call(ctx, http.MethodPost, "student/registration", body)
//	var verr *gateway.ValidationError
//	if errors.As(err, &verr) {
//		v := verr.First()
//		// v.Path, v.Msg
//	}
package gateway
