// Package binder decodes HTTP requests into typed request values for
// handler.Wrap.
//
// JSON reads an application/json body (bounded by DefaultMaxJSONSize) and
// cleans every decoded string with sanitizer.FormValue. Path fills fields
// tagged `path:"..."` from chi URL parameters.
//
//	handler.Wrap(page, handler.WithBinders[handler.Context, pageRequest](
//	    binder.Path(nil),
//	))
//
// A binder with nothing to read returns ErrBinderNotApplicable and is skipped.
// Other failures wrap one of the package sentinels, which the error handler
// maps to 400 or 415 responses.
package binder
