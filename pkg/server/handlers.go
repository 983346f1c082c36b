package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"chargekit/ocpicheck/pkg/history"
	"chargekit/ocpicheck/pkg/ocpi"
)

// errorResponse is the body of non-2xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// handleValidate validates the request body as the object type named in
// the URL. Validation failures are a 200 with is_valid=false; only
// transport-level problems produce error statuses.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	objectType, err := ocpi.ParseObjectType(chi.URLParam(r, "type"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	payload, err := io.ReadAll(body)
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "payload too large"})
		return
	}

	start := time.Now()
	result := s.validator.Validate(objectType, payload)
	elapsed := time.Since(start)

	if s.collector != nil {
		s.collector.RecordValidation(result, len(payload), elapsed)
	}
	if s.store != nil {
		rec := history.NewRecord(result, "api", len(payload), elapsed)
		if err := s.store.Save(r.Context(), rec); err != nil {
			s.logger.Error("failed to record validation",
				"request_id", RequestIDFromContext(r.Context()),
				"error", err,
			)
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// handleHistoryList returns stored validation records, newest first.
// Query parameters: type, invalid_only, limit.
func (s *Server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "history is disabled"})
		return
	}

	filter := history.Filter{Limit: 100}
	if v := r.URL.Query().Get("type"); v != "" {
		objectType, err := ocpi.ParseObjectType(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		filter.ObjectType = string(objectType)
	}
	if v := r.URL.Query().Get("invalid_only"); v != "" {
		onlyInvalid, err := strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_only must be a boolean"})
			return
		}
		filter.OnlyInvalid = onlyInvalid
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		filter.Limit = limit
	}

	records, err := s.store.List(r.Context(), filter)
	if err != nil {
		s.logger.Error("failed to list history", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list history"})
		return
	}
	if records == nil {
		records = []*history.Record{}
	}

	writeJSON(w, http.StatusOK, records)
}

// handleHistoryGet returns one record by ID.
func (s *Server) handleHistoryGet(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "history is disabled"})
		return
	}

	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.logger.Error("failed to load history record", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load record"})
		return
	}
	if rec == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "record not found"})
		return
	}

	writeJSON(w, http.StatusOK, rec)
}
