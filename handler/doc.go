// Package handler provides type-safe HTTP request handling.
//
// Handlers are generic functions that receive a bound request value and
// return a Response. Wrap turns them into http.HandlerFunc, running the
// configured binders first and routing binding or rendering failures to an
// ErrorHandler:
//
//	type Submission map[string]string
//
//	func submit(ctx handler.Context, req Submission) handler.Response {
//		if handler.IsDataStar(ctx.Request()) {
//			return handler.DataStar(handler.WithSignals(map[string]any{"loading": false}))
//		}
//		return handler.JSON(map[string]any{"success": true})
//	}
//
//	router.Post("/api/student/registration", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, Submission](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, Submission](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
// JSON renders a value with a configurable status. DataStar renders a
// Server-Sent Events stream with signal patches and an optional redirect
// for requests issued by the Datastar client (see IsDataStar).
//
// # Errors
//
// NewErrorHandler classifies errors into a status code and a client-safe
// message: HTTPError carries its own, validator errors map to 422, binder
// errors to 400, 413 or 415, and anything else to 500 with a generic message.
// Datastar requests receive the message as the "error" signal.
package handler
