package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// maxFailureBody caps how much of a non-2xx body is read.
const maxFailureBody = 64 << 10

// Violation is one field-level complaint from the upstream validator.
type Violation struct {
	Path string
	Msg  string
}

// ValidationError is a non-2xx response whose body is a structured set of
// field violations. Violations keeps every well-formed entry in document
// order; the first one is the entry callers surface by default.
type ValidationError struct {
	Status     int
	Body       string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	first := e.First()
	return fmt.Sprintf("gateway: upstream rejected request (status %d): %s: %s", e.Status, first.Path, first.Msg)
}

// First returns the first violation.
func (e *ValidationError) First() Violation {
	if len(e.Violations) == 0 {
		return Violation{}
	}
	return e.Violations[0]
}

// OpaqueError is any non-2xx response that does not carry field violations.
type OpaqueError struct {
	Status int
	Body   string
}

func (e *OpaqueError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("gateway: upstream failure (status %d): %s", e.Status, body)
}

type rawViolation struct {
	Path *string `json:"path"`
	Msg  *string `json:"msg"`
}

// classifyFailure decides once whether a failure body is a validation
// payload. The body must be a JSON object whose first value is a list of
// {path, msg} entries, either flat or nested in groups, and whose first
// entry is well formed. Anything else is opaque.
func classifyFailure(status int, body []byte) error {
	groups, ok := orderedValues(body)
	if !ok || len(groups) == 0 {
		return &OpaqueError{Status: status, Body: string(body)}
	}

	first, ok := violations(groups[0])
	if !ok || len(first) == 0 || len(first[0]) == 0 {
		return &OpaqueError{Status: status, Body: string(body)}
	}
	lead := first[0][0]
	if lead.Path == nil || lead.Msg == nil || *lead.Path == "" {
		return &OpaqueError{Status: status, Body: string(body)}
	}

	verr := &ValidationError{Status: status, Body: string(body)}
	collect := func(groups [][]rawViolation) {
		for _, group := range groups {
			for _, v := range group {
				if v.Path != nil && v.Msg != nil && *v.Path != "" {
					verr.Violations = append(verr.Violations, Violation{Path: *v.Path, Msg: *v.Msg})
				}
			}
		}
	}
	collect(first)
	for _, raw := range groups[1:] {
		if entries, ok := violations(raw); ok {
			collect(entries)
		}
	}
	return verr
}

// orderedValues returns the values of a JSON object in document order.
func orderedValues(body []byte) ([]json.RawMessage, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	var values []json.RawMessage
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, false
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, false
		}
		values = append(values, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, false
	}
	return values, true
}

// violations decodes one object value as a list of groups of entries. A
// flat list of entries is read as a single group.
func violations(raw json.RawMessage) ([][]rawViolation, bool) {
	var groups [][]rawViolation
	if err := json.Unmarshal(raw, &groups); err == nil {
		return groups, true
	}
	var flat []rawViolation
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, false
	}
	return [][]rawViolation{flat}, true
}
