package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultValidationService rejects malformed input before it reaches the
// wrapped VaultService. Every rejection wraps [ErrInvalidDataProvided].
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewCredentialValidator(),
	}
}

func (v *VaultValidationService) Add(ctx context.Context, credential models.Credential, masterPassword *crypto.Secret) error {
	if err := v.validate(ctx, credential); err != nil {
		crypto.Wipe(credential.Password)
		return err
	}
	if err := v.validate(ctx, masterPassword); err != nil {
		crypto.Wipe(credential.Password)
		return err
	}
	return v.inner.Add(ctx, credential, masterPassword)
}

func (v *VaultValidationService) AddMany(ctx context.Context, credentials []models.Credential, masterPassword *crypto.Secret) error {
	if err := v.validate(ctx, credentials); err != nil {
		wipeCredentials(credentials)
		return err
	}
	if err := v.validate(ctx, masterPassword); err != nil {
		wipeCredentials(credentials)
		return err
	}
	return v.inner.AddMany(ctx, credentials, masterPassword)
}

func (v *VaultValidationService) Get(ctx context.Context, path string, masterPassword *crypto.Secret) (*crypto.Secret, error) {
	if err := v.validate(ctx, path, validators.FieldPath); err != nil {
		return nil, err
	}
	if err := v.validate(ctx, masterPassword); err != nil {
		return nil, err
	}
	return v.inner.Get(ctx, path, masterPassword)
}

func (v *VaultValidationService) Hide(ctx context.Context, root string, masterPassword *crypto.Secret) error {
	if err := v.validateRootAndPassword(ctx, root, masterPassword); err != nil {
		return err
	}
	return v.inner.Hide(ctx, root, masterPassword)
}

func (v *VaultValidationService) Unhide(ctx context.Context, root string, masterPassword *crypto.Secret) error {
	if err := v.validateRootAndPassword(ctx, root, masterPassword); err != nil {
		return err
	}
	return v.inner.Unhide(ctx, root, masterPassword)
}

func (v *VaultValidationService) GetHidden(ctx context.Context, path string, unhidePassword, masterPassword *crypto.Secret) (*crypto.Secret, error) {
	if err := v.validate(ctx, path, validators.FieldPath); err != nil {
		return nil, err
	}
	if err := v.validate(ctx, unhidePassword); err != nil {
		return nil, err
	}
	if err := v.validate(ctx, masterPassword); err != nil {
		return nil, err
	}
	return v.inner.GetHidden(ctx, path, unhidePassword, masterPassword)
}

func (v *VaultValidationService) Import(ctx context.Context, rows []models.ImportRow, masterPassword *crypto.Secret) (int, error) {
	// incomplete rows are not an error: the vault skips them
	if err := v.validate(ctx, masterPassword); err != nil {
		return 0, err
	}
	return v.inner.Import(ctx, rows, masterPassword)
}

func (v *VaultValidationService) List(ctx context.Context) ([]string, error) {
	return v.inner.List(ctx)
}

func (v *VaultValidationService) Sync(ctx context.Context, root string, masterPassword *crypto.Secret) (int, error) {
	if err := v.validateRootAndPassword(ctx, root, masterPassword); err != nil {
		return 0, err
	}
	return v.inner.Sync(ctx, root, masterPassword)
}

func (v *VaultValidationService) Unlock(ctx context.Context, root string, masterPassword *crypto.Secret) (int, error) {
	if err := v.validateRootAndPassword(ctx, root, masterPassword); err != nil {
		return 0, err
	}
	return v.inner.Unlock(ctx, root, masterPassword)
}

func (v *VaultValidationService) Wrap(wrapped VaultService) VaultService {
	v.inner = wrapped
	return v
}

func (v *VaultValidationService) validateRootAndPassword(ctx context.Context, root string, masterPassword *crypto.Secret) error {
	if err := v.validate(ctx, root, validators.FieldRoot); err != nil {
		return err
	}
	return v.validate(ctx, masterPassword)
}

func (v *VaultValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func wipeCredentials(credentials []models.Credential) {
	for i := range credentials {
		crypto.Wipe(credentials[i].Password)
	}
}
