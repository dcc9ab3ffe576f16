package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/onerilhan/go-api-starter/internal/middleware/errors"
)

// httpTransport errors.Transport'un net/http implementasyonu.
// Normalizer'ı somut engine tipinden izole eden tek köprü burası.
type httpTransport struct {
	writer  http.ResponseWriter
	request *http.Request
}

// Path inbound request'in path'ini döner (query string hariç)
func (t *httpTransport) Path() string {
	return t.request.URL.Path
}

// Reply final JSON gövdesini tek seferde yazar
func (t *httpTransport) Reply(status int, body errors.ErrorResponse) error {
	t.writer.Header().Set("Content-Type", "application/json")
	t.writer.WriteHeader(status)
	return json.NewEncoder(t.writer).Encode(body)
}

// Recover centralized error handling: zincirin altındaki her katmandan
// (handler, auth, rate limit, router 404/405) gelen panic'i yakalar ve
// normalizer'a teslim eder. Handler panic etmediyse yanıta dokunmaz.
func Recover(normalizer *errors.Normalizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					normalizer.Handle(recovered, debug.Stack(), &httpTransport{writer: w, request: r})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
