// Package validator provides small declarative rules for validating lead form
// input.
//
// A Rule pairs a Check func with the ValidationError reported when the check
// fails. Rules are evaluated either with Apply, which collects every failure,
// or with ApplyFirst, which stops at the first failing rule. Registration forms
// use ApplyFirst so that exactly one field error is reported per attempt, in
// the order the rules were listed.
//
// # Usage
//
//	err := validator.ApplyFirst(
//		validator.RequiredString("full_name", name).WithMessage("Please enter your name"),
//		validator.RequiredString("mobile_number", phone),
//		validator.ValidStrictPhone("mobile_number", phone),
//		validator.ValidEmail("email", email),
//	)
//	if first := validator.FirstError(err); first != nil {
//		// first.Field, first.Message
//	}
//
// # Error Handling
//
// Both helpers return ValidationErrors, which implements error. Use
// ExtractValidationErrors or errors.As to inspect the individual failures.
package validator
