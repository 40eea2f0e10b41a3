package api

import (
	"net/http"
	"time"

	"algoarena/internal/api/handler"
	"algoarena/internal/api/middleware"
	"algoarena/internal/app/service"
	"algoarena/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	problemService *service.ProblemService,
	submissionService *service.SubmissionService,
	publicDir string,
) http.Handler {
	r := chi.NewRouter()

	// Base middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Deliberately permissive: the demo frontend may be served from
	// anywhere.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	// Parses a bearer token if present and puts claims in context. Routes
	// that require auth add middleware.Authenticator on top.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	r.Get("/health", handler.Health)

	r.Route("/api", func(api chi.Router) {
		authHandler := handler.NewAuthHandler(authService)
		api.Route("/auth", authHandler.RegisterRoutes)

		problemHandler := handler.NewProblemHandler(problemService)
		api.Route("/problems", problemHandler.RegisterRoutes)

		submissionHandler := handler.NewSubmissionHandler(submissionService)
		api.Route("/submissions", submissionHandler.RegisterRoutes)
	})

	// Everything else is a static asset path.
	r.Handle("/*", handler.StaticHandler(publicDir))

	return r
}
