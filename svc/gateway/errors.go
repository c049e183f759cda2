package gateway

import "errors"

var (
	ErrMissingBaseURL     = errors.New("gateway: API_DOMAIN_NAME is not configured")
	ErrMissingTokenSource = errors.New("gateway: no token source configured")
	ErrToken              = errors.New("gateway: failed to obtain auth token")
	ErrTransport          = errors.New("gateway: transport failure")
	ErrInvalidRequest     = errors.New("gateway: invalid request")
	ErrInvalidResponse    = errors.New("gateway: invalid response body")
)
