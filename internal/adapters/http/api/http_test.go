package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/lineup/internal/adapters/http/api"
	"github.com/okian/lineup/internal/domain/activity"
	"github.com/okian/lineup/internal/domain/roster"
	"github.com/okian/lineup/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// mockDependencies records the last call and returns canned results.
type mockDependencies struct {
	result     types.RecommendationResult
	all        []types.RecommendationResult
	activities []types.ActivitySummary
	err        error

	gotActivity string
	gotRoster   []roster.RawHero
}

func (m *mockDependencies) Recommend(_ context.Context, activityID string, raws []roster.RawHero) (types.RecommendationResult, error) {
	m.gotActivity = activityID
	m.gotRoster = raws
	if m.err != nil {
		return types.RecommendationResult{}, m.err
	}
	return m.result, nil
}

func (m *mockDependencies) RecommendAll(_ context.Context, raws []roster.RawHero) ([]types.RecommendationResult, error) {
	m.gotRoster = raws
	if m.err != nil {
		return nil, m.err
	}
	return m.all, nil
}

func (m *mockDependencies) Activities(_ context.Context) ([]types.ActivitySummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.activities, nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func newMux(deps *mockDependencies, opts ...api.ServerOption) *http.ServeMux {
	server := api.NewServer(deps, &mockStatsProvider{stats: map[string]interface{}{"requests": 3}}, opts...)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func do(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func errorCode(w *httptest.ResponseRecorder) string {
	var body struct {
		Code string `json:"code"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body.Code
}

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		deps := &mockDependencies{
			activities: []types.ActivitySummary{{ID: "rally-boss", Name: "Rally boss", Rule: "total-skill"}},
		}
		mux := newMux(deps)

		Convey("Then the health endpoint serves metrics", func() {
			w := do(mux, http.MethodGet, "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Then the stats endpoint returns the provider's snapshot", func() {
			w := do(mux, http.MethodGet, "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var stats map[string]interface{}
			So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)
			So(stats["requests"], ShouldEqual, float64(3))
		})

		Convey("Then the activities endpoint lists registered activities", func() {
			w := do(mux, http.MethodGet, "/activities", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var list []types.ActivitySummary
			So(json.Unmarshal(w.Body.Bytes(), &list), ShouldBeNil)
			So(list, ShouldHaveLength, 1)
			So(list[0].ID, ShouldEqual, "rally-boss")
		})

		Convey("Then posting to the activities endpoint is rejected", func() {
			w := do(mux, http.MethodPost, "/activities", "{}")
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			So(w.Header().Get("Allow"), ShouldEqual, http.MethodGet)
		})

		Convey("Then unknown paths are not found", func() {
			w := do(mux, http.MethodGet, "/leaderboard", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestRecommendHandler(t *testing.T) {
	Convey("Given a server with a recommendation backend", t, func() {
		deps := &mockDependencies{
			result: types.RecommendationResult{
				ActivityID: "rally-boss",
				Rule:       "total-skill/expedition",
				BySlot: []types.SlotResult{
					{SlotIndex: 0, Role: "frontline", Weight: 2, HeroID: strPtr("aldric"), Score: floatPtr(10), Rationale: "best"},
					{SlotIndex: 1, Role: "ranged", Weight: 1, Rationale: "no unassigned ranged hero available"},
				},
				UnusedCandidates: []types.CandidateResult{},
			},
		}
		mux := newMux(deps, api.WithMaxRosterSize(2))

		Convey("When posting a valid request", func() {
			w := do(mux, http.MethodPost, "/recommendations", `{"activity_id":"rally-boss","roster":[{"id":"aldric","level":"20"}]}`)

			Convey("Then the result is returned as JSON", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "application/json")
				var res types.RecommendationResult
				So(json.Unmarshal(w.Body.Bytes(), &res), ShouldBeNil)
				So(res.BySlot, ShouldHaveLength, 2)
				So(*res.BySlot[0].HeroID, ShouldEqual, "aldric")
				So(res.BySlot[1].HeroID, ShouldBeNil)
			})

			Convey("Then the roster reaches the backend decoded", func() {
				So(deps.gotActivity, ShouldEqual, "rally-boss")
				So(deps.gotRoster, ShouldHaveLength, 1)
				So(*deps.gotRoster[0].Level, ShouldEqual, 20)
			})

			Convey("Then an unfilled slot serializes hero and score as null", func() {
				So(w.Body.String(), ShouldContainSubstring, `"hero_id":null`)
				So(w.Body.String(), ShouldContainSubstring, `"score":null`)
			})
		})

		Convey("When the body is not JSON", func() {
			w := do(mux, http.MethodPost, "/recommendations", `{not json`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(errorCode(w), ShouldEqual, "bad_request")
		})

		Convey("When the activity id is missing", func() {
			w := do(mux, http.MethodPost, "/recommendations", `{"roster":[]}`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the roster exceeds the cap", func() {
			w := do(mux, http.MethodPost, "/recommendations", `{"activity_id":"rally-boss","roster":[{"id":"a"},{"id":"b"},{"id":"c"}]}`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(deps.gotActivity, ShouldBeBlank)
		})

		Convey("When the method is not POST", func() {
			w := do(mux, http.MethodGet, "/recommendations", "")
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			So(errorCode(w), ShouldEqual, "method_not_allowed")
		})
	})
}

func TestRecommendHandlerErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unknown activity", &activity.UnknownActivityError{ActivityID: "nope"}, http.StatusNotFound, "unknown_activity"},
		{"duplicate hero", &roster.DuplicateHeroError{HeroID: "a", First: 0, Second: 1}, http.StatusUnprocessableEntity, "duplicate_hero"},
		{"invalid hero", &roster.InvalidHeroError{Index: 2}, http.StatusUnprocessableEntity, "invalid_hero"},
		{"cancelled", fmt.Errorf("recommend: %w", context.Canceled), http.StatusServiceUnavailable, "unavailable"},
		{"roster over the service cap", &roster.TooLargeError{Size: 3, Max: 2}, http.StatusBadRequest, "bad_request"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	Convey("Given a backend that fails", t, func() {
		for _, tc := range cases {
			Convey("When it fails with "+tc.name, func() {
				mux := newMux(&mockDependencies{err: tc.err})
				w := do(mux, http.MethodPost, "/recommendations", `{"activity_id":"x","roster":[]}`)

				Convey("Then the error maps to its status and code", func() {
					So(w.Code, ShouldEqual, tc.status)
					So(errorCode(w), ShouldEqual, tc.code)
				})
			})
		}
	})
}

func TestRecommendAllHandler(t *testing.T) {
	Convey("Given a server with results for every activity", t, func() {
		deps := &mockDependencies{all: []types.RecommendationResult{
			{ActivityID: "a", BySlot: []types.SlotResult{}, UnusedCandidates: []types.CandidateResult{}},
			{ActivityID: "b", BySlot: []types.SlotResult{}, UnusedCandidates: []types.CandidateResult{}},
		}}
		mux := newMux(deps)

		Convey("When posting a roster", func() {
			w := do(mux, http.MethodPost, "/recommendations/all", `{"roster":[{"hero_id":"ivo"}]}`)

			Convey("Then every result is returned in order", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var all []types.RecommendationResult
				So(json.Unmarshal(w.Body.Bytes(), &all), ShouldBeNil)
				So(all, ShouldHaveLength, 2)
				So(all[0].ActivityID, ShouldEqual, "a")
				So(all[1].ActivityID, ShouldEqual, "b")
				So(deps.gotRoster[0].ID, ShouldEqual, "ivo")
			})
		})

		Convey("When the backend rejects the roster", func() {
			deps.err = &roster.DuplicateHeroError{HeroID: "ivo", First: 0, Second: 1}
			w := do(mux, http.MethodPost, "/recommendations/all", `{"roster":[{"id":"ivo"},{"id":"IVO"}]}`)
			So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
		})
	})
}

func TestRequestID(t *testing.T) {
	Convey("Given a server", t, func() {
		mux := newMux(&mockDependencies{})

		Convey("When the caller supplies a request id", func() {
			req := httptest.NewRequest(http.MethodGet, "/activities", nil)
			req.Header.Set(api.RequestIDHeader, "req-123")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it is echoed on the response", func() {
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, "req-123")
			})
		})

		Convey("When the caller omits it", func() {
			w := do(mux, http.MethodGet, "/activities", "")

			Convey("Then a fresh id is assigned", func() {
				So(w.Header().Get(api.RequestIDHeader), ShouldHaveLength, 36)
			})
		})
	})
}

func TestOpError(t *testing.T) {
	Convey("Given a wrapped error", t, func() {
		cause := errors.New("cause")
		err := api.WrapKind("api.op", api.ErrBadRequest, cause)

		Convey("Then both the kind and the cause match", func() {
			So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "api.op")
		})

		Convey("Then Wrap defaults to an internal error", func() {
			So(errors.Is(api.Wrap("api.op", cause), api.ErrInternal), ShouldBeTrue)
		})
	})
}
