// internal/app/features/engagement/handler.go
package engagement

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/whopinsights/internal/app/store/members"
	eng "github.com/dalemusser/whopinsights/internal/app/system/engagement"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// failureMessage is the only error text a failed evaluation exposes.
const failureMessage = "Failed to fetch member engagement data"

// Handler serves the engagement API.
type Handler struct {
	Source    members.Source
	Evaluator *eng.Evaluator
	Strategy  eng.Strategy // default when ?strategy= is absent
	Log       *zap.Logger
}

// NewHandler constructs an engagement API handler.
func NewHandler(src members.Source, ev *eng.Evaluator, strategy eng.Strategy, logger *zap.Logger) *Handler {
	if strategy == "" {
		strategy = eng.StrategyScore
	}
	return &Handler{
		Source:    src,
		Evaluator: ev,
		Strategy:  strategy,
		Log:       logger,
	}
}

// envelope is the response shape of every engagement API call.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// strategyFor resolves the request's strategy override.
func (h *Handler) strategyFor(r *http.Request) (eng.Strategy, error) {
	if s := query.Get(r, "strategy"); s != "" {
		return eng.ParseStrategy(s)
	}
	return h.Strategy, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /api/members/engagement                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeEngagement evaluates every member and returns the report for the
// selected strategy.
//
// On success: 200 and
//
//	{ "success":true, "data":{ "all":[…], "top_engaged":[…], "at_risk":[…], "total_count":20 } }
//
// On failure: 500 and
//
//	{ "success":false, "error":"Failed to fetch member engagement data" }
func (h *Handler) ServeEngagement(w http.ResponseWriter, r *http.Request) {
	defer h.recoverJSON(w, r)

	strategy, err := h.strategyFor(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: err.Error()})
		return
	}

	list, err := h.Source.FetchAll(r.Context())
	if err != nil {
		h.Log.Error("error fetching member engagement", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Error: failureMessage})
		return
	}

	data, err := h.Evaluator.Evaluate(strategy, list)
	if err != nil {
		h.Log.Error("error evaluating member engagement", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Error: failureMessage})
		return
	}

	h.Log.Debug("member engagement evaluated",
		zap.String("strategy", string(strategy)),
		zap.Int("members", len(list)))

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// recoverJSON turns a panic during evaluation into the failure envelope.
func (h *Handler) recoverJSON(w http.ResponseWriter, r *http.Request) {
	if rec := recover(); rec != nil {
		h.Log.Error("panic while evaluating member engagement",
			zap.Any("panic", rec),
			zap.String("path", r.URL.Path))
		writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Error: failureMessage})
	}
}
