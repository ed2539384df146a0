// Package http implements the local HTTP API of the vault: add, get and
// list.
//
// Request bodies carry master passwords in cleartext, so the server is
// meant to listen on a loopback address; transport security is left to the
// deployment. Bodies are never logged and responses are marked
// non-cacheable.
package http
