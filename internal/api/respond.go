package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/frontforge/frontforge/ent"
	"github.com/frontforge/frontforge/internal/evaluation"
	"github.com/frontforge/frontforge/internal/scoring"
	"github.com/frontforge/frontforge/internal/store"
	"github.com/frontforge/frontforge/internal/submission"
)

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error:   &apiError{Code: code, Message: message},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode error response", zap.Error(err))
	}
}

// respondMappedError converts a service error into its HTTP shape.
// Upstream failures are distinguished from bad requests so the caller
// knows whether a retry can help.
func (s *Server) respondMappedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, submission.ErrInvalidSubmission):
		s.respondError(w, http.StatusBadRequest, "validation_error", err.Error())

	case errors.Is(err, evaluation.ErrUnsupportedLanguages):
		s.respondError(w, http.StatusBadRequest, "unsupported_languages", err.Error())

	// Field constraints enforced at the storage layer (empty reference
	// image URL, duplicate email) are caller mistakes, not server faults.
	case ent.IsValidationError(err), ent.IsConstraintError(err):
		s.respondError(w, http.StatusBadRequest, "validation_error", err.Error())

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, evaluation.ErrTaskNotFound):
		s.respondError(w, http.StatusNotFound, "not_found", err.Error())

	case errors.Is(err, evaluation.ErrNoReferenceSolution):
		s.respondError(w, http.StatusConflict, "no_reference_solution", err.Error())

	case errors.Is(err, scoring.ErrConflict):
		s.respondError(w, http.StatusConflict, "concurrency_conflict", "submission conflicted with a concurrent update, retry")

	case errors.Is(err, evaluation.ErrReferenceImageUnavailable),
		errors.Is(err, evaluation.ErrGraderUnavailable):
		s.respondError(w, http.StatusBadGateway, "upstream_unavailable", err.Error())

	case errors.Is(err, evaluation.ErrMalformedVerdict):
		// Distinct from a low score: the grader's answer was unusable.
		s.respondError(w, http.StatusBadGateway, "malformed_grader_response", err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		s.respondError(w, http.StatusGatewayTimeout, "timeout", "request timed out")

	case errors.Is(err, scoring.ErrInvalidTarget):
		s.logger.Error("accounting invariant violation", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "accounting_error", err.Error())

	default:
		s.logger.Error("unhandled request error", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
