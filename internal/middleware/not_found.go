package middleware

import (
	"fmt"
	"net/http"

	"github.com/onerilhan/go-api-starter/internal/middleware/errors"
)

// NotFoundHandler eşleşmeyen route'lar için classified 404 fırlatır.
// Response gövdesini Recover middleware'i üretir.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New(http.StatusNotFound, errors.StructuredPayload{
			Message:   errors.SingleMessage(fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path)),
			ErrorCode: "ROUTE_NOT_FOUND",
		}))
	}
}

// MethodNotAllowedHandler desteklenmeyen HTTP metodları için classified 405 fırlatır
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New(http.StatusMethodNotAllowed, errors.StructuredPayload{
			Message:   errors.SingleMessage(fmt.Sprintf("Method %s not allowed for %s", r.Method, r.URL.Path)),
			ErrorCode: "METHOD_NOT_ALLOWED",
		}))
	}
}
