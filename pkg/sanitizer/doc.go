// Package sanitizer cleans user supplied text before it is validated and
// masks personal data before it reaches a log line.
//
// Input helpers are plain func(string) string values that compose:
//
//	clean := sanitizer.Compose(sanitizer.RemoveNullBytes, sanitizer.SingleLine)
//	name := clean(raw)
//
// FormValue is the pipeline applied to every string field decoded from a
// registration form. MaskEmail and MaskPhone keep just enough of a value for
// an operator to correlate log lines with a lead.
package sanitizer
