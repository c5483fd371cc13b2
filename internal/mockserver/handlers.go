package mockserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/prepdeck/prepdeck/internal/api"
)

// ErrorResponse is the JSON body returned for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Handlers holds the HTTP handler methods for the interview API.
type Handlers struct {
	store InterviewStore
}

// NewHandlers creates Handlers backed by the given store.
func NewHandlers(store InterviewStore) *Handlers {
	return &Handlers{store: store}
}

// HandleCreate registers a new interview.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req api.CreateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.JobTitle == "" || req.JobDescription == "" {
		writeError(w, http.StatusBadRequest, "job_title and job_description are required")
		return
	}

	summary, err := h.store.Create(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// HandleStart begins an interview and returns the first question.
func (h *Handlers) HandleStart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.store.Start(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleRespond scores an answer to the current question.
func (h *Handlers) HandleRespond(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		QuestionID   int    `json:"question_id"`
		ResponseText string `json:"response_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ResponseText == "" {
		writeError(w, http.StatusBadRequest, "response_text is required")
		return
	}

	res, err := h.store.Respond(id, req.QuestionID, req.ResponseText)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleFeedback returns the terminal report for a completed interview.
func (h *Handlers) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	report, err := h.store.Feedback(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleHistory lists all interviews.
func (h *Handlers) HandleHistory(w http.ResponseWriter, _ *http.Request) {
	history, err := h.store.History()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// RegisterRoutes registers all interview API routes on mux.
func RegisterRoutes(mux *http.ServeMux, store InterviewStore) {
	h := NewHandlers(store)
	mux.HandleFunc("POST /interviews/create", h.HandleCreate)
	mux.HandleFunc("POST /interviews/{id}/start", h.HandleStart)
	mux.HandleFunc("POST /interviews/{id}/respond", h.HandleRespond)
	mux.HandleFunc("GET /interviews/{id}/feedback", h.HandleFeedback)
	mux.HandleFunc("GET /interviews/history", h.HandleHistory)
}

// CORSMiddleware wraps a handler with CORS headers so a browser
// frontend can talk to the mock server. If allowedOrigins is empty, no
// CORS header is set (same-origin only).
func CORSMiddleware(next http.Handler, allowedOrigins ...string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if len(allowedOrigins) > 0 && origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "interview id must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInterviewNotFound), errors.Is(err, ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotInProgress), errors.Is(err, ErrNotCompleted):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}
