// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AddRequest is the body of POST /add. Every field travels in cleartext;
// transport security is a deployment concern.
type AddRequest struct {
	Path           string `json:"path"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	MasterPassword string `json:"master_password"`
}

// GetRequest is the body of POST /get.
type GetRequest struct {
	Path           string `json:"path"`
	MasterPassword string `json:"master_password"`
}

// GetResponse is the body returned by POST /get.
type GetResponse struct {
	Password string `json:"password"`
}
