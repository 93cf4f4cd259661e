package assessment

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gutcheck/backend/internal/models"
	"github.com/gutcheck/backend/internal/scoring"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// getUserID extracts the authenticated user ID from the request context.
func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.CatalogResponse())
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if len(req.Responses) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "responses are required"})
		return
	}

	var userID *int64
	if uid, ok := getUserID(r); ok {
		userID = &uid
	}

	result, err := h.service.Submit(r.Context(), req, userID)
	if err != nil {
		log.Printf("[assessment] submit failed: %v", err)
		writeScoringError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req models.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.service.Preview(r.Context(), req)
	if err != nil {
		writeScoringError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	session, err := h.service.GetSession(vars["id"])
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Session not found"})
			return
		}
		log.Printf("[assessment] get session failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load session"})
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) TagOutcome(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		OutcomeTag string `json:"outcome_tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !ValidOutcomeTags[req.OutcomeTag] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "outcome_tag must be 'breakthrough', 'growth', or 'stagnation'"})
		return
	}

	if err := h.service.TagOutcome(vars["id"], req.OutcomeTag); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Session not found"})
			return
		}
		log.Printf("[assessment] tag outcome failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to record outcome"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	uid, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	limit := intQueryParam(r.URL.Query(), "limit", 20)
	sessions, err := h.service.History(uid, limit)
	if err != nil {
		log.Printf("[assessment] history failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load history"})
		return
	}

	if sessions == nil {
		sessions = []models.AssessmentSession{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *Handler) GetPilotMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.service.PilotMetrics()
	if err != nil {
		log.Printf("[assessment] pilot metrics failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to compute metrics"})
		return
	}

	writeJSON(w, http.StatusOK, metrics)
}

// writeScoringError maps the scoring error taxonomy onto HTTP statuses.
func writeScoringError(w http.ResponseWriter, err error) {
	var (
		unknownOption *scoring.UnknownOptionError
		incomplete    *scoring.IncompleteCategoryError
		invalidText   *scoring.InvalidOpenEndedResponseError
		unavailable   *scoring.ScoringUnavailableError
		invariant     *scoring.InvariantViolationError
	)

	switch {
	case errors.As(err, &unknownOption):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: unknownOption.Error()})
	case errors.As(err, &incomplete):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: incomplete.Error()})
	case errors.As(err, &invalidText):
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: invalidText.Error()})
	case errors.As(err, &unavailable):
		writeJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Scoring is temporarily unavailable, please retry"})
	case errors.As(err, &invariant):
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal scoring error"})
	default:
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, defaultVal int) int {
	s := query.Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
