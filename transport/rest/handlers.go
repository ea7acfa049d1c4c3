package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/marble-mania/internal/apperror"
	"github.com/rocketscienceinc/marble-mania/internal/entity"
)

var (
	errMissingParam = errors.New("missing query parameter")
	errGameTooLarge = errors.New("last marble exceeds the server limit")
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	SimulateHandler(w http.ResponseWriter, r *http.Request)
}

type uSolver interface {
	Play(ctx context.Context, players, lastMarble int) (*entity.Result, error)
}

type handlers struct {
	logger *slog.Logger
	solver uSolver

	maxLastMarble int
}

// NewHandlers - games with a last marble above maxLastMarble are rejected.
func NewHandlers(logger *slog.Logger, solver uSolver, maxLastMarble int) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		solver: solver,

		maxLastMarble: maxLastMarble,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// SimulateHandler - GET /simulate?players=<n>&last=<n>.
func (that *handlers) SimulateHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "SimulateHandler")

	players, err := intParam(r, "players")
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	lastMarble, err := intParam(r, "last")
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if lastMarble > that.maxLastMarble {
		err = fmt.Errorf("%w: %d > %d", errGameTooLarge, lastMarble, that.maxLastMarble)
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := that.solver.Play(r.Context(), players, lastMarble)
	switch {
	case errors.Is(err, apperror.ErrInvalidPlayerCount), errors.Is(err, apperror.ErrInvalidLastMarble):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case err != nil:
		log.Error("failed to simulate game", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "simulation failed"})
		return
	}

	that.writeJSON(w, http.StatusOK, result)
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", errMissingParam, name)
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}

	return value, nil
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
