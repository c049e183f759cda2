// Package registration validates and submits campaign lead registrations.
//
// A Form carries one funnel's values and the errors of the last attempt.
// Flow.Submit validates the form (stopping at the first failing field),
// posts it to the funnel's upstream endpoint and maps an upstream
// validation failure back onto a form field. Each attempt walks a small
// state machine:
//
//	idle -> validating -> invalid -> idle
//	                   -> submitting -> rejected | failed | succeeded -> idle
//
// Service exposes POST /{funnel}/registration for every funnel in the
// catalog, answering JSON or Datastar signal patches.
package registration
