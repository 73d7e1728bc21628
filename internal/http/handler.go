package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/davidbz/sixteen/internal/domain"
	"github.com/davidbz/sixteen/internal/monitoring"
	"github.com/davidbz/sixteen/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	solver *domain.SolverService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(solver *domain.SolverService) *Handler {
	return &Handler{
		solver: solver,
	}
}

// HandleSolve processes puzzle solve requests.
func (h *Handler) HandleSolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse request.
	var req domain.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Model == "" || req.Image == "" {
		http.Error(w, "model and image are required", http.StatusBadRequest)
		return
	}

	// Inject model into context for downstream logging.
	ctx = observability.WithModel(ctx, req.Model)

	logger := observability.FromContext(ctx)
	logger.Info("solve request received",
		zap.String("model", req.Model),
		zap.Int("image_bytes", len(req.Image)),
	)

	result, err := h.solver.Solve(ctx, &req)
	if err != nil {
		logger.Error("solve failed", zap.Error(err))
		monitoring.RecordSolve(req.Model, "error", 0)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	monitoring.RecordSolve(req.Model, "ok", result.ElapsedMs/1000)
	monitoring.RecordUsage(req.Model, result.Usage, result.Cost)

	logger.Info("solve succeeded",
		zap.Bool("grouped", result.IsGrouped()),
		zap.Bool("cached", result.Cached),
	)

	w.Header().Set("Content-Type", "application/json")
	if encodeErr := json.NewEncoder(w).Encode(result); encodeErr != nil {
		logger.Error("failed to encode response", zap.Error(encodeErr))
		http.Error(w, fmt.Sprintf("failed to encode response: %v", encodeErr), http.StatusInternalServerError)
		return
	}
}

// statusForError maps solve failures onto HTTP statuses. Upstream API
// failures and unusable completions are bad-gateway; everything else is an
// internal error.
func statusForError(err error) int {
	var apiErr *domain.APIError
	switch {
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrTruncatedResponse), errors.Is(err, domain.ErrEmptyResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}
