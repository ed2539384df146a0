// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Hide moves every entry under root, together with its salt record, into
// a blob encrypted under password and stores it as the hidden root at root,
// replacing any root already stored there.
//
// Only encrypted entries can be hidden: a plaintext entry under root fails
// the call with [ErrMissingSalt] and leaves the vault unchanged. So does an
// empty selection, with [ErrNotFound]. Roots hidden earlier are not folded
// into the new blob.
func (v *Vault) Hide(root string, password *crypto.Secret) error {
	selected, rest := v.entries.Partition(func(path string) bool {
		return utils.InSubtree(path, root)
	})
	if selected.Len() == 0 {
		return fmt.Errorf("%w: no entries under %q", ErrNotFound, root)
	}

	subtree := models.NewSubtree()
	for path, entry := range selected.All() {
		record, ok := v.salts.Get(path)
		if !ok {
			return fmt.Errorf("hide %q: %w: %q", root, ErrMissingSalt, path)
		}
		if err := subtree.Insert(path, entry, record); err != nil {
			return fmt.Errorf("hide %q: %w", root, err)
		}
	}

	plaintext, err := yaml.Marshal(subtree)
	if err != nil {
		return fmt.Errorf("hide %q: encode subtree: %w", root, err)
	}
	defer crypto.Wipe(plaintext)

	blob, record, err := v.seal(plaintext, password)
	if err != nil {
		return fmt.Errorf("hide %q: %w", root, err)
	}

	v.hidden.Set(root, models.HiddenRoot{Blob: blob, Salt: record})
	for path := range selected.All() {
		v.salts.Delete(path)
	}
	v.entries = rest

	v.logger.Debug().Str("root", root).Int("count", selected.Len()).Msg("subtree hidden")
	return nil
}

// Unhide restores the subtree hidden at exactly root. Restored entries
// and salt records overwrite the ones at the same paths.
//
// Fails with [ErrNotFound] when root is not hidden, with
// [crypto.ErrAuthentication] for a wrong password and with
// [models.ErrPathConflict] when a restored path would clash with the
// nesting of a visible one; the vault is unchanged in every case.
func (v *Vault) Unhide(root string, password *crypto.Secret) error {
	hidden, ok := v.hidden.Get(root)
	if !ok {
		return fmt.Errorf("%w: no hidden root %q", ErrNotFound, root)
	}

	subtree, err := v.openSubtree(hidden, password)
	if err != nil {
		return fmt.Errorf("unhide %q: %w", root, err)
	}

	entries := v.entries.Clone()
	for path, restored := range subtree.All() {
		if err := entries.Set(path, restored.Entry); err != nil {
			return fmt.Errorf("unhide %q: %w", root, err)
		}
	}
	for path, restored := range subtree.All() {
		v.salts.Set(path, restored.Salt)
	}
	v.entries = entries
	v.hidden.Delete(root)

	v.logger.Debug().Str("root", root).Int("count", subtree.Len()).Msg("subtree restored")
	return nil
}

// GetHidden decrypts the password of a hidden entry without unhiding it.
//
// The hidden roots containing path are tried in index order; the first
// one that opens under unhidePassword and holds path wins. Its password
// field is then decrypted under secretPassword. Fails with [ErrNotFound]
// when no root yields path and with [crypto.ErrAuthentication] when
// secretPassword is wrong.
func (v *Vault) GetHidden(path string, unhidePassword, secretPassword *crypto.Secret) (*crypto.Secret, error) {
	for root, hidden := range v.hidden.All() {
		if !utils.InSubtree(path, root) {
			continue
		}

		subtree, err := v.openSubtree(hidden, unhidePassword)
		if err != nil {
			v.logger.Debug().Err(err).Str("root", root).Msg("hidden root does not open, trying next")
			continue
		}

		entry, record, ok := subtree.Lookup(path)
		if !ok {
			continue
		}

		secret, err := v.open(entry.Password, record, secretPassword)
		if err != nil {
			return nil, fmt.Errorf("decrypt hidden %q: %w", path, err)
		}
		return secret, nil
	}

	return nil, fmt.Errorf("%w: %q is not in any hidden root", ErrNotFound, path)
}

// openSubtree decrypts and decodes the blob of a hidden root.
func (v *Vault) openSubtree(hidden models.HiddenRoot, password *crypto.Secret) (*models.Subtree, error) {
	plaintext, err := v.open(hidden.Blob, hidden.Salt, password)
	if err != nil {
		return nil, err
	}
	defer plaintext.Destroy()

	subtree := models.NewSubtree()
	if err := yaml.Unmarshal(plaintext.Bytes(), subtree); err != nil {
		return nil, fmt.Errorf("decode subtree: %w", err)
	}
	return subtree, nil
}
