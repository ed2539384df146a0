package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// masterPasswordEnv names the variable read before falling back to stdin.
const masterPasswordEnv = "VAULT_MASTER_PASSWORD"

const usage = `usage:
  client [flags] add <path> <username>   password read from stdin
  client [flags] get <path>
  client [flags] list`

var (
	errUsage      = errors.New(usage)
	errEmptyInput = errors.New("empty input line")
)

// runCommand executes one subcommand against client. Secrets not supplied
// through masterPassword are read from in, one per line: the master
// password first, then the credential password for add.
func runCommand(ctx context.Context, client adapter.VaultClient, args []string, masterPassword string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	lines := bufio.NewReader(in)

	switch cmd, rest := args[0], args[1:]; cmd {
	case "list":
		if len(rest) != 0 {
			return errUsage
		}
		paths, err := client.List(ctx)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(out, p)
		}
		return nil

	case "get":
		if len(rest) != 1 {
			return errUsage
		}
		master, err := readMaster(lines, masterPassword)
		if err != nil {
			return err
		}
		defer master.Destroy()

		password, err := client.Get(ctx, rest[0], master)
		if err != nil {
			return err
		}
		defer password.Destroy()

		fmt.Fprintln(out, password.Reveal())
		return nil

	case "add":
		if len(rest) != 2 {
			return errUsage
		}
		master, err := readMaster(lines, masterPassword)
		if err != nil {
			return err
		}
		defer master.Destroy()

		password, err := readLine(lines)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}

		return client.Add(ctx, models.Credential{
			Path:     rest[0],
			Username: rest[1],
			Password: []byte(password),
		}, master)

	default:
		return errUsage
	}
}

func readMaster(lines *bufio.Reader, fromEnv string) (*crypto.Secret, error) {
	if fromEnv != "" {
		return crypto.NewSecretString(fromEnv), nil
	}
	line, err := readLine(lines)
	if err != nil {
		return nil, fmt.Errorf("read master password: %w", err)
	}
	return crypto.NewSecretString(line), nil
}

func readLine(lines *bufio.Reader) (string, error) {
	line, err := lines.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errEmptyInput
	}
	return line, nil
}
