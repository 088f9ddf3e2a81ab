package entity

import "encoding/json"

// Canonical is the success payload: the unified shape produced regardless of
// source file type.
type Canonical struct {
	Invoices  []Invoice  `json:"invoices"`
	Products  []Product  `json:"products"`
	Customers []Customer `json:"customers"`
}

// ErrorResult is the failure payload. Error is the user-facing message;
// Details and RawResponse carry diagnostics when available.
type ErrorResult struct {
	Error       string `json:"error"`
	Details     string `json:"details,omitempty"`
	RawResponse string `json:"raw_response,omitempty"`
}

// Result holds exactly one of the two payloads. Callers branch on IsError;
// no partial canonical data is ever attached to an error.
type Result struct {
	Data *Canonical
	Err  *ErrorResult
}

// OK wraps a canonical payload, normalizing nil slices so the serialized
// form always carries all three arrays.
func OK(data Canonical) Result {
	if data.Invoices == nil {
		data.Invoices = []Invoice{}
	}
	if data.Products == nil {
		data.Products = []Product{}
	}
	if data.Customers == nil {
		data.Customers = []Customer{}
	}
	return Result{Data: &data}
}

// Fail builds an error result with an optional details string.
func Fail(msg, details string) Result {
	return Result{Err: &ErrorResult{Error: msg, Details: details}}
}

// FailRaw builds an error result carrying the raw upstream text for
// inspection by callers.
func FailRaw(msg, raw string) Result {
	return Result{Err: &ErrorResult{Error: msg, RawResponse: raw}}
}

func (r Result) IsError() bool {
	return r.Err != nil
}

// MarshalJSON emits the active variant only. An empty Result marshals as an
// error so a zero value can never masquerade as a successful extraction.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		return json.Marshal(r.Err)
	}
	if r.Data != nil {
		return json.Marshal(r.Data)
	}
	return json.Marshal(ErrorResult{Error: "no extraction result"})
}
