// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Add encrypts one credential and stores it. See [Vault.AddMany].
func (v *Vault) Add(credential models.Credential, password *crypto.Secret) error {
	return v.AddMany([]models.Credential{credential}, password)
}

// AddMany encrypts every credential under password, each with a salt of its
// own, and stores entry and salt record under the credential's path. An
// existing entry at the same path is replaced.
//
// The batch is all-or-nothing: it is staged on copies of the collections,
// which replace the live ones only when every credential went in. The
// plaintext passwords are wiped on return.
func (v *Vault) AddMany(credentials []models.Credential, password *crypto.Secret) error {
	defer func() {
		for i := range credentials {
			crypto.Wipe(credentials[i].Password)
		}
	}()

	entries := v.entries.Clone()
	salts := v.salts.Clone()

	for _, credential := range credentials {
		ciphertext, record, err := v.seal(credential.Password, password)
		if err != nil {
			return fmt.Errorf("encrypt %q: %w", credential.Path, err)
		}

		entry := models.Entry{
			Username: credential.Username,
			Password: ciphertext,
			Extra:    credential.Extra,
		}
		if err := entries.Set(credential.Path, entry); err != nil {
			return fmt.Errorf("add %q: %w", credential.Path, err)
		}
		salts.Set(credential.Path, record)
	}

	v.entries, v.salts = entries, salts
	v.logger.Debug().Int("count", len(credentials)).Msg("credentials added")
	return nil
}

// Get decrypts the password stored at path. The caller must Destroy the
// result.
//
// Fails with [ErrNotFound] unless path has both an entry and a salt record,
// and with [crypto.ErrAuthentication] for a wrong password.
func (v *Vault) Get(path string, password *crypto.Secret) (*crypto.Secret, error) {
	entry, ok := v.entries.Get(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	record, ok := v.salts.Get(path)
	if !ok {
		return nil, fmt.Errorf("%w: no salt record for %q", ErrNotFound, path)
	}

	secret, err := v.open(entry.Password, record, password)
	if err != nil {
		return nil, fmt.Errorf("decrypt %q: %w", path, err)
	}
	return secret, nil
}

// Import stores every complete row under "<site>/<username>", all encrypted
// under password. Rows missing a field are skipped. Returns the number of
// rows imported.
func (v *Vault) Import(rows []models.ImportRow, password *crypto.Secret) (int, error) {
	credentials := make([]models.Credential, 0, len(rows))
	for _, row := range rows {
		if !row.Complete() {
			continue
		}
		credentials = append(credentials, models.Credential{
			Path:     row.Path(),
			Username: row.Username,
			Password: []byte(row.Password),
		})
	}

	if err := v.AddMany(credentials, password); err != nil {
		return 0, err
	}
	return len(credentials), nil
}

// Sync drops salt records that have no entry, then encrypts every plaintext
// entry under root. Returns the number of entries encrypted.
func (v *Vault) Sync(root string, password *crypto.Secret) (int, error) {
	orphans := 0
	for _, path := range v.salts.Paths() {
		if !v.entries.Has(path) {
			v.salts.Delete(path)
			orphans++
		}
	}

	var plaintext []models.Credential
	for path, entry := range v.entries.All() {
		if v.salts.Has(path) || !utils.InSubtree(path, root) {
			continue
		}
		extra := entry.Clone().Extra
		plaintext = append(plaintext, models.Credential{
			Path:     path,
			Username: entry.Username,
			Password: []byte(entry.Password),
			Extra:    extra,
		})
	}

	if err := v.AddMany(plaintext, password); err != nil {
		return 0, err
	}

	v.logger.Debug().
		Str("root", root).
		Int("orphans", orphans).
		Int("encrypted", len(plaintext)).
		Msg("vault synced")
	return len(plaintext), nil
}

// Unlock decrypts every encrypted entry under root in place and drops its
// salt record. Entries that do not open under password are left as they
// are. Returns the number of entries decrypted.
func (v *Vault) Unlock(root string, password *crypto.Secret) (int, error) {
	unlocked := 0
	for _, path := range v.salts.Paths() {
		if !utils.InSubtree(path, root) {
			continue
		}

		secret, err := v.Get(path, password)
		if err != nil {
			v.logger.Debug().Err(err).Str("path", path).Msg("skipping entry that does not unlock")
			continue
		}

		entry, _ := v.entries.Get(path)
		entry.Password = secret.Reveal()
		secret.Destroy()

		if err := v.entries.Set(path, entry); err != nil {
			return unlocked, fmt.Errorf("unlock %q: %w", path, err)
		}
		v.salts.Delete(path)
		unlocked++
	}

	v.logger.Debug().Str("root", root).Int("unlocked", unlocked).Msg("vault unlocked")
	return unlocked, nil
}
