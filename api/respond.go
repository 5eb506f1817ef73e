package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/eduproject/catalog/errs"
	"github.com/rs/zerolog"
)

const maxRequestBody = 1 << 20

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteJSONStatus(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal Server Error",
			Status:  "error",
			Details: err.Error(),
		})
		return
	}

	response := ErrorResponse{
		Error:   apiErr.Error(),
		Status:  "error",
		Field:   apiErr.Field,
		Details: apiErr.Details,
	}
	// Add full error chain for debugging (especially useful for database errors)
	if apiErr.Cause != nil {
		response.Cause = apiErr.GetFullError()
	}

	r.WriteJSONStatus(w, apiErr.StatusCode, response)
}

// decodeBody reads a JSON request body into dst.
func (r Responder) decodeBody(req *http.Request, dst any, payloadType string) error {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxRequestBody))
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to read request body")
		return errs.NewBadRequestError("failed to read request body")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		r.logger.Error().Err(err).Str("body", string(body)).Msgf("Failed to decode %s request body", payloadType)
		return errs.NewMalformedPayloadError(payloadType, err)
	}
	return nil
}

// wrapDatabaseError wraps a database error with context information. Errors
// the repositories already classified pass through unchanged.
func wrapDatabaseError(operation, entity string, cause error) error {
	var apiErr *errs.ApiErr
	if errors.As(cause, &apiErr) {
		return cause
	}
	return errs.NewDatabaseError(operation, entity, cause)
}
