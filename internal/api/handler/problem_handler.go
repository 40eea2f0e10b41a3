package handler

import (
	"net/http"

	"algoarena/internal/app/service"
	"algoarena/internal/common"

	"github.com/go-chi/chi/v5"
)

type ProblemHandler struct {
	problemService *service.ProblemService
}

func NewProblemHandler(ps *service.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: ps}
}

func (h *ProblemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listProblems)                       // GET /api/problems
	r.Get("/slug/{problemSlug}", h.getProblemBySlug) // GET /api/problems/slug/two-sum
	r.Get("/{problemID}", h.getProblem)              // GET /api/problems/1
}

func (h *ProblemHandler) listProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := h.problemService.ListProblems(r.Context())
	if err != nil {
		common.RespondServerError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problems)
}

func (h *ProblemHandler) getProblem(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "problemID")

	problem, err := h.problemService.GetProblemByID(r.Context(), idParam)
	if err != nil {
		common.RespondWithError(w, err, "Problem not found")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problem)
}

func (h *ProblemHandler) getProblemBySlug(w http.ResponseWriter, r *http.Request) {
	problemSlug := chi.URLParam(r, "problemSlug")

	problem, err := h.problemService.GetProblemBySlug(r.Context(), problemSlug)
	if err != nil {
		common.RespondWithError(w, err, "Problem not found")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problem)
}
