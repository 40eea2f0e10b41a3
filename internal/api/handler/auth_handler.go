package handler

import (
	"errors"
	"net/http"

	"algoarena/internal/api/middleware"
	"algoarena/internal/app/service"
	"algoarena/internal/common"
	"algoarena/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.login)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)
		protected.Get("/me", h.me)
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		common.RespondWithFail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			common.RespondWithFail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		common.RespondServerError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

type MeResponse struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user"`
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithFail(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	username, _ := middleware.GetUsernameFromContext(r.Context())
	role, _ := middleware.GetUserRoleFromContext(r.Context())

	user := h.authService.UserFromClaims(userID, username, role)
	common.RespondWithJSON(w, http.StatusOK, MeResponse{Success: true, User: user})
}
