package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/preston-bernstein/election-gateway/internal/logging"
)

// Recoverer turns a panic in next into a logged 500 with the usual error envelope.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (h *Handler) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			logging.Error(logging.FromContext(r.Context(), h.logger), "handler panic", fmt.Errorf("%v", rec),
				slog.String("stack", string(debug.Stack())),
			)
			writeError(w, r, http.StatusInternalServerError, msgUnexpected, h.logger)
		}()
		next.ServeHTTP(w, r)
	})
}
