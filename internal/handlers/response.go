package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/withme-travel/withme/internal/logging"
	"github.com/withme-travel/withme/internal/services"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// decodeBody reads an optional JSON body into dst. An empty body leaves dst
// untouched.
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// writeServiceError maps service sentinels to status codes. Anything
// unrecognized is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, services.ErrDestinationNotFound):
		writeError(w, http.StatusNotFound, "Destination not found")
	case errors.Is(err, services.ErrTemplateNotFound):
		writeError(w, http.StatusNotFound, "Itinerary template not found")
	case errors.Is(err, services.ErrIdeaNotFound):
		writeError(w, http.StatusNotFound, "Activity idea not found")
	case errors.Is(err, services.ErrInvalidCount):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEmptyDescription):
		writeError(w, http.StatusBadRequest, "Destination or description is required")
	default:
		logging.Error("Request failed", map[string]interface{}{
			"op":     op,
			"path":   r.URL.Path,
			"method": r.Method,
			"error":  err,
		})
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func queryInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
