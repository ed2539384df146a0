package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

type errorResponse struct {
	status int
	msg    string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{models.ErrEmptyPath, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{crypto.ErrEncoding, errorResponse{http.StatusBadRequest, app.MsgInvalidEncoding}},
	{crypto.ErrAuthentication, errorResponse{http.StatusUnauthorized, app.MsgWrongMasterPassword}},
	{vault.ErrNotFound, errorResponse{http.StatusNotFound, app.MsgEntryNotFound}},
	{models.ErrPathConflict, errorResponse{http.StatusConflict, app.MsgPathConflict}},
	{vault.ErrMissingSalt, errorResponse{http.StatusConflict, app.MsgMissingSalt}},
}

// responseFromError maps a service error to a status and message. Anything
// not listed, storage failures included, is a 500.
func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status == http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", resp.status).Msg(msg)
	}

	http.Error(w, resp.msg, resp.status)
}
