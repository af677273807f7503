// Package reconcile derives the response codes a handler actually produces
// from its return expressions, merges them with the declared api:response
// annotations and regenerates the annotation list when the two disagree.
package reconcile

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is one member of the closed set of response statuses the tool knows
// about. Anything outside the set is a hard error, never a guess.
type Code int

const (
	OK                  Code = http.StatusOK
	Created             Code = http.StatusCreated
	Accepted            Code = http.StatusAccepted
	NoContent           Code = http.StatusNoContent
	Found               Code = http.StatusFound
	BadRequest          Code = http.StatusBadRequest
	Unauthorized        Code = http.StatusUnauthorized
	Forbidden           Code = http.StatusForbidden
	NotFound            Code = http.StatusNotFound
	Conflict            Code = http.StatusConflict
	UnprocessableEntity Code = http.StatusUnprocessableEntity
	InternalServerError Code = http.StatusInternalServerError
	NotImplemented      Code = http.StatusNotImplemented
	ServiceUnavailable  Code = http.StatusServiceUnavailable
)

var (
	ErrUnknownResponseForm = errors.New("unrecognized response form")
	ErrUnknownStatusCode   = errors.New("unknown status code")
)

var codeNames = map[Code]string{
	OK:                  "OK",
	Created:             "Created",
	Accepted:            "Accepted",
	NoContent:           "NoContent",
	Found:               "Found",
	BadRequest:          "BadRequest",
	Unauthorized:        "Unauthorized",
	Forbidden:           "Forbidden",
	NotFound:            "NotFound",
	Conflict:            "Conflict",
	UnprocessableEntity: "UnprocessableEntity",
	InternalServerError: "InternalServerError",
	NotImplemented:      "NotImplemented",
	ServiceUnavailable:  "ServiceUnavailable",
}

var codesByName = func() map[string]Code {
	out := make(map[string]Code, len(codeNames))

	for code, name := range codeNames {
		out[name] = code
	}

	return out
}()

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// CodeByName resolves a textual member reference like "Conflict".
func CodeByName(name string) (Code, error) {
	code, ok := codesByName[name]

	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatusCode, name)
	}

	return code, nil
}
