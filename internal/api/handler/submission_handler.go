package handler

import (
	"context"
	"errors"
	"net/http"

	"algoarena/internal/app/service"
	"algoarena/internal/common"

	"github.com/go-chi/chi/v5"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(ss *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: ss}
}

func (h *SubmissionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.submitSolution) // POST /api/submissions
	r.Post("/test", h.testSubmission)
}

func (h *SubmissionHandler) testSubmission(w http.ResponseWriter, r *http.Request) {
	var req service.SubmissionRequest
	if err := decodeBody(r, &req); err != nil {
		common.RespondWithFail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.submissionService.TestSubmission(r.Context(), req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client went away during the simulated run; nobody is
			// listening for the response.
			return
		}
		common.RespondServerError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}

func (h *SubmissionHandler) submitSolution(w http.ResponseWriter, r *http.Request) {
	var req service.SubmissionRequest
	if err := decodeBody(r, &req); err != nil {
		common.RespondWithFail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.submissionService.SubmitSolution(r.Context(), req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		common.RespondServerError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}
