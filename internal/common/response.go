package common

import (
	"encoding/json"
	"net/http"
)

// FailResponse is the body for credential and validation failures.
type FailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NotFoundResponse is the body for missing resources.
type NotFoundResponse struct {
	Message string `json:"message"`
}

// ServerErrorResponse is the body produced by the panic recoverer and any
// other unhandled server-side failure.
type ServerErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"Server error","error":"failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithFail writes a {success:false, message} body with the given code.
func RespondWithFail(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, FailResponse{Success: false, Message: message})
}

// RespondNotFound writes the bare {message} body used for 404s.
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondWithJSON(w, http.StatusNotFound, NotFoundResponse{Message: message})
}

// RespondServerError writes the generic 500 body carrying the raw error text.
func RespondServerError(w http.ResponseWriter, err error) {
	RespondWithJSON(w, http.StatusInternalServerError, ServerErrorResponse{
		Success: false,
		Message: "Server error",
		Error:   err.Error(),
	})
}

// RespondWithError maps a domain error to its HTTP status and body shape.
// Not-found errors get the bare {message} body; everything else gets
// {success:false, message}.
func RespondWithError(w http.ResponseWriter, err error, message string) {
	code := HTTPStatusFromError(err)
	if code == http.StatusNotFound {
		RespondNotFound(w, message)
		return
	}
	RespondWithFail(w, code, message)
}
