// Package utils holds small helpers shared across the vault: path subtree
// matching, JSON responses and the resty HTTP client.
package utils
