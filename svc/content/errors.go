package content

import "errors"

var (
	ErrUnknownFunnel  = errors.New("content: unknown funnel")
	ErrUnknownSection = errors.New("content: unknown section")
)
