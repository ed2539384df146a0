// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

var collectionNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func validateName(name string) error {
	if !collectionNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidCollectionName, name)
	}
	return nil
}

// encodeCollection serializes source as a YAML document indented by two
// spaces. yaml.v3 panics on values it cannot represent, such as funcs and
// channels; that panic is returned as ErrEncodeCollection.
func encodeCollection(name string, source any) (body []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			body, err = nil, fmt.Errorf("%w %q: %v", ErrEncodeCollection, name, r)
		}
	}()

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(source); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrEncodeCollection, name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrEncodeCollection, name, err)
	}

	return buf.Bytes(), nil
}

// decodeCollection parses body into target. A blank body leaves target
// untouched.
func decodeCollection(name string, body []byte, target any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w %q: %w", ErrDecodeCollection, name, err)
	}
	return nil
}
