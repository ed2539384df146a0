package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	masterPassword := crypto.NewSecretString(request.MasterPassword)
	defer masterPassword.Destroy()

	credential := models.Credential{
		Path:     request.Path,
		Username: request.Username,
		Password: []byte(request.Password),
	}
	if err := h.services.VaultService.Add(ctx, credential, masterPassword); err != nil {
		h.writeError(w, r, err, "error adding credential")
		return
	}

	log.Debug().Str("path", request.Path).Msg("credential added")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.GetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	masterPassword := crypto.NewSecretString(request.MasterPassword)
	defer masterPassword.Destroy()

	secret, err := h.services.VaultService.Get(ctx, request.Path, masterPassword)
	if err != nil {
		h.writeError(w, r, err, "error getting credential")
		return
	}
	defer secret.Destroy()

	utils.WriteJSON(w, models.GetResponse{Password: secret.Reveal()}, http.StatusOK)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	paths, err := h.services.VaultService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err, "error listing credentials")
		return
	}
	if paths == nil {
		paths = []string{}
	}

	utils.WriteJSON(w, paths, http.StatusOK)
}
