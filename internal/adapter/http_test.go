package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	vaulthttp "github.com/MKhiriev/go-pass-vault/internal/handler/http"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClient(t *testing.T, serverURL string) VaultClient {
	t.Helper()
	client, err := NewHTTPVaultClient(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return client
}

// newVaultServer serves the real router over a mocked vault service.
func newVaultServer(t *testing.T) (*httptest.Server, *mock.MockVaultService) {
	t.Helper()
	vaultService := mock.NewMockVaultService(gomock.NewController(t))
	h := vaulthttp.NewHandler(&service.Services{VaultService: vaultService}, config.Server{}, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv, vaultService
}

func master(t *testing.T) *crypto.Secret {
	t.Helper()
	s := crypto.NewSecretString("master")
	t.Cleanup(s.Destroy)
	return s
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://vault.local/ ", want: "https://vault.local"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewHTTPVaultClient_InvalidAddress(t *testing.T) {
	_, err := NewHTTPVaultClient(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestAdd(t *testing.T) {
	srv, vaultService := newVaultServer(t)

	vaultService.EXPECT().
		Add(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Credential, m *crypto.Secret) error {
			assert.Equal(t, "bank/bob", c.Path)
			assert.Equal(t, "bob", c.Username)
			assert.Equal(t, "pw", string(c.Password))
			assert.Equal(t, "master", m.Reveal())
			return nil
		})

	err := newTestClient(t, srv.URL).Add(context.Background(),
		models.Credential{Path: "bank/bob", Username: "bob", Password: []byte("pw")}, master(t))

	require.NoError(t, err)
}

func TestAdd_WipesPassword(t *testing.T) {
	srv, vaultService := newVaultServer(t)
	vaultService.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ErrPathConflict)

	password := []byte("pw")
	err := newTestClient(t, srv.URL).Add(context.Background(),
		models.Credential{Path: "a/b", Username: "u", Password: password}, master(t))

	assert.ErrorIs(t, err, models.ErrPathConflict)
	assert.Equal(t, []byte{0, 0}, password)
}

func TestAdd_Conflict(t *testing.T) {
	srv, vaultService := newVaultServer(t)
	vaultService.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ErrPathConflict)

	err := newTestClient(t, srv.URL).Add(context.Background(), models.Credential{Path: "a/b"}, master(t))

	assert.ErrorIs(t, err, models.ErrPathConflict)
}

func TestGet(t *testing.T) {
	srv, vaultService := newVaultServer(t)
	vaultService.EXPECT().
		Get(gomock.Any(), "bank/bob", gomock.Any()).
		Return(crypto.NewSecretString("pw"), nil)

	secret, err := newTestClient(t, srv.URL).Get(context.Background(), "bank/bob", master(t))

	require.NoError(t, err)
	defer secret.Destroy()
	assert.Equal(t, "pw", secret.Reveal())
}

func TestGet_MappedErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "not found", err: vault.ErrNotFound, want: vault.ErrNotFound},
		{name: "wrong password", err: crypto.ErrAuthentication, want: crypto.ErrAuthentication},
		{name: "invalid data", err: service.ErrInvalidDataProvided, want: service.ErrInvalidDataProvided},
		{name: "missing salt", err: vault.ErrMissingSalt, want: models.ErrPathConflict},
		{name: "internal", err: assert.AnError, want: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, vaultService := newVaultServer(t)
			vaultService.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			secret, err := newTestClient(t, srv.URL).Get(context.Background(), "x", master(t))

			assert.Nil(t, secret)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestList(t *testing.T) {
	srv, vaultService := newVaultServer(t)
	vaultService.EXPECT().List(gomock.Any()).Return([]string{"bank/bob", "mail"}, nil)

	paths, err := newTestClient(t, srv.URL).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"bank/bob", "mail"}, paths)
}

func TestList_Empty(t *testing.T) {
	srv, vaultService := newVaultServer(t)
	vaultService.EXPECT().List(gomock.Any()).Return(nil, nil)

	paths, err := newTestClient(t, srv.URL).List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestList_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(t, url).List(context.Background())

	assert.Error(t, err)
}

func TestList_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode("upstream")
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).List(context.Background())

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "502")
}
