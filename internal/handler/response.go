package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/yogastudio/yoga-api/internal/logging"
	"github.com/yogastudio/yoga-api/internal/middleware"
	"github.com/yogastudio/yoga-api/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

var errInvalidID = errors.New("invalid id")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// decodeJSON reads a size-limited JSON body into v. On failure it writes the
// 400 or 413 response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// pathID parses the named URL parameter as a numeric id.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// writeError maps a service error to its HTTP status by error kind.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrBadRequest):
		writeJSON(w, http.StatusBadRequest, errorResponse(service.Message(err)))
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(service.Message(err)))
	case errors.Is(err, service.ErrUnauthorized):
		middleware.WriteUnauthorized(w, r, service.Message(err))
	default:
		logging.FromContext(r.Context()).Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

func writeBadID(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, errorResponse(errInvalidID.Error()))
}
