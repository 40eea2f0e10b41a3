package middleware

import (
	"fmt"
	"net/http"

	"algoarena/internal/common"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// Recoverer turns a handler panic into a 500 response and keeps the server
// running. The boundary is per-request: one broken handler never takes the
// process down.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("request_id", chiMiddleware.GetReqID(r.Context())).
					Interface("panic", rec).
					Msg("handler panicked")

				common.RespondWithJSON(w, http.StatusInternalServerError, common.ServerErrorResponse{
					Success: false,
					Message: "Server error",
					Error:   fmt.Sprint(rec),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
