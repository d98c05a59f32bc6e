// Package response defines the uniform result envelope returned by every
// service, action and HTTP endpoint of the inventory service.
package response

import (
	"net/http"
)

// Kind classifies the outcome of a call.
type Kind int

const (
	KindOK Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindPersistence
	KindRateLimited
	KindTimeout
)

// HTTPStatus maps the outcome onto a response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindOK:
		return http.StatusOK
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// UnauthorizedMessage is the message of every envelope rejected by the guard.
const UnauthorizedMessage = "Unauthorized"

// Result is the {success, message, data, errors?} envelope.
type Result[T any] struct {
	Success bool                `json:"success"`
	Message *string             `json:"message"`
	Data    *T                  `json:"data"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Kind    Kind                `json:"-"`
}

// OK wraps a successful outcome. data may be nil (absent row, no-op delete).
func OK[T any](data *T, message string) Result[T] {
	return Result[T]{Success: true, Message: &message, Data: data, Kind: KindOK}
}

// Fail builds a failed envelope of the given kind.
func Fail[T any](kind Kind, message string) Result[T] {
	return Result[T]{Success: false, Message: &message, Kind: kind}
}

// FromError converts a store-layer error into a persistence failure.
func FromError[T any](err error) Result[T] {
	return Fail[T](KindPersistence, err.Error())
}

// Unauthorized is the envelope returned when a required session is missing.
func Unauthorized[T any]() Result[T] {
	return Fail[T](KindUnauthorized, UnauthorizedMessage)
}

// Invalid carries field-level validation messages; message stays null.
func Invalid[T any](errs map[string][]string) Result[T] {
	return Result[T]{Success: false, Errors: errs, Kind: KindValidation}
}

// MessageText returns the message or an empty string when it is null.
func (r Result[T]) MessageText() string {
	if r.Message == nil {
		return ""
	}
	return *r.Message
}

// Map converts the payload of r, keeping success, message, errors and kind.
// fn is only called for a non-nil payload.
func Map[T, U any](r Result[T], fn func(*T) *U) Result[U] {
	out := Result[U]{
		Success: r.Success,
		Message: r.Message,
		Errors:  r.Errors,
		Kind:    r.Kind,
	}
	if r.Data != nil {
		out.Data = fn(r.Data)
	}
	return out
}
