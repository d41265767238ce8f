package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/piwi3910/RoomLayout/internal/engine"
	"github.com/piwi3910/RoomLayout/internal/logging"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

// writeEngineError maps engine failures onto status codes.
func writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().Err(err).Msg("placement failed")
	}
	writeError(w, r, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrInvalidRoom):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrCapacity), errors.Is(err, engine.ErrUnplaceable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, engine.ErrPredictor):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// decodeJSON reads a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
