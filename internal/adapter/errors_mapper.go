package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/go-resty/resty/v2"
)

// statusErrors is the inverse of the server's error mapping. A 409 can mean
// a path conflict or a missing salt on the server; both surface as
// [models.ErrPathConflict] here.
var statusErrors = map[int]error{
	http.StatusBadRequest:   service.ErrInvalidDataProvided,
	http.StatusUnauthorized: crypto.ErrAuthentication,
	http.StatusNotFound:     vault.ErrNotFound,
	http.StatusConflict:     models.ErrPathConflict,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if err, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", err, body)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
}
