package api

import (
	"context"
	"net/http"

	"github.com/okian/lineup/internal/domain/types"
	"github.com/okian/lineup/pkg/logger"
)

// ActivitiesDependencies defines the interface for listing activities.
type ActivitiesDependencies interface {
	Activities(ctx context.Context) ([]types.ActivitySummary, error)
}

// ActivitiesHandler handles activity listing requests.
type ActivitiesHandler struct {
	deps   ActivitiesDependencies
	logger logger.Logger
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps ActivitiesDependencies, l logger.Logger) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps, logger: l}
}

// HandleListActivities handles GET /activities requests.
func (h *ActivitiesHandler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_activities"
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind(op, ErrMethodNotAllowed))
		return
	}
	list, err := h.deps.Activities(r.Context())
	if err != nil {
		fail(r.Context(), h.logger, w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
