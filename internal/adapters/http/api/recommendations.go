package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/okian/lineup/internal/domain/roster"
	"github.com/okian/lineup/internal/domain/types"
	"github.com/okian/lineup/pkg/logger"
)

// RecommendDependencies defines the interface for recommendation operations.
type RecommendDependencies interface {
	Recommend(ctx context.Context, activityID string, raws []roster.RawHero) (types.RecommendationResult, error)
	RecommendAll(ctx context.Context, raws []roster.RawHero) ([]types.RecommendationResult, error)
}

// recommendRequest mirrors the OpenAPI schema for POST /recommendations.
type recommendRequest struct {
	ActivityID string           `json:"activity_id" validate:"required,max=128"`
	Roster     []roster.RawHero `json:"roster"`
}

// recommendAllRequest mirrors the OpenAPI schema for POST /recommendations/all.
type recommendAllRequest struct {
	Roster []roster.RawHero `json:"roster"`
}

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	deps      RecommendDependencies
	validate  *validator.Validate
	rosterTag string
	logger    logger.Logger
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps RecommendDependencies, validate *validator.Validate, maxRoster int, l logger.Logger) *RecommendHandler {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}
	if maxRoster <= 0 {
		maxRoster = defaultMaxRosterSize
	}
	return &RecommendHandler{
		deps:      deps,
		validate:  validate,
		rosterTag: "max=" + strconv.Itoa(maxRoster),
		logger:    l,
	}
}

// HandleRecommend handles POST /recommendations requests.
func (h *RecommendHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_recommendation"
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind(op, ErrMethodNotAllowed))
		return
	}
	var req recommendRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.validateRoster(req.Roster); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	res, err := h.deps.Recommend(r.Context(), req.ActivityID, req.Roster)
	if err != nil {
		fail(r.Context(), h.logger, w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleRecommendAll handles POST /recommendations/all requests.
func (h *RecommendHandler) HandleRecommendAll(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_recommendation_all"
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind(op, ErrMethodNotAllowed))
		return
	}
	var req recommendAllRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.validateRoster(req.Roster); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	results, err := h.deps.RecommendAll(r.Context(), req.Roster)
	if err != nil {
		fail(r.Context(), h.logger, w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *RecommendHandler) validateRoster(raws []roster.RawHero) error {
	return h.validate.Var(raws, h.rosterTag)
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(v)
}
