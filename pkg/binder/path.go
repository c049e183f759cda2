package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PathExtractor returns the value of a named path parameter.
type PathExtractor func(r *http.Request, name string) string

// Path creates a binder filling struct fields tagged `path:"name"` from path
// parameters. A nil extractor reads chi URL parameters.
//
//	type pageRequest struct {
//		Funnel  string `path:"funnel"`
//		Section string `path:"section"`
//	}
func Path(extractor PathExtractor) func(r *http.Request, v any) error {
	if extractor == nil {
		extractor = chi.URLParam
	}
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "path", func(name string) (string, bool) {
			val := extractor(r, name)
			return val, val != ""
		}, ErrFailedToParsePath)
	}
}
