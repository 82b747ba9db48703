package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/questparty/questparty-api/internal/api/shared"
	"github.com/questparty/questparty-api/internal/platform/logger"
)

// MsgUnexpected is the client-facing message for any unhandled failure.
const MsgUnexpected = "An unexpected error occurred"

// Recoverer recovers from panics in downstream handlers, logs them with the
// stack and answers with a 500 failure envelope. If the handler already
// started its response, the panic is only logged.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			log := logger.FromContext(r.Context())
			log.Error("panic recovered",
				slog.Any("panic", rvr),
				slog.String("stack", string(debug.Stack())),
				slog.Bool("response_started", ww.Status() != 0))

			if ww.Status() != 0 {
				return
			}
			shared.RespondErrorAndLog(ww, r, http.StatusInternalServerError, MsgUnexpected,
				fmt.Errorf("panic: %v", rvr))
		}()

		next.ServeHTTP(ww, r)
	})
}
