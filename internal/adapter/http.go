package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type httpVaultClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPVaultClient returns a [VaultClient] for the server at
// cfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPVaultClient(cfg config.Adapter, logger *logger.Logger) (VaultClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &httpVaultClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpVaultClient) Add(ctx context.Context, credential models.Credential, masterPassword *crypto.Secret) error {
	defer crypto.Wipe(credential.Password)

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.AddRequest{
			Path:           credential.Path,
			Username:       credential.Username,
			Password:       string(credential.Password),
			MasterPassword: masterPassword.Reveal(),
		}).
		Post("/add")
	if err != nil {
		return fmt.Errorf("add request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpVaultClient) Get(ctx context.Context, path string, masterPassword *crypto.Secret) (*crypto.Secret, error) {
	var result models.GetResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.GetRequest{Path: path, MasterPassword: masterPassword.Reveal()}).
		SetResult(&result).
		Post("/get")
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return crypto.NewSecretString(result.Password), nil
}

func (h *httpVaultClient) List(ctx context.Context) ([]string, error) {
	var paths []string

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&paths).
		Get("/list")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Int("count", len(paths)).Msg("listed credentials")
	return paths, nil
}
