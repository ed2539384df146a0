package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	// collectionExt is appended to a collection name to form its file name.
	collectionExt = ".yml"

	dirPerm  fs.FileMode = 0o700
	filePerm fs.FileMode = 0o600
)

// fileCollectionStorage is the directory-backed implementation of
// [CollectionStorage]. Every collection lives in its own <dir>/<name>.yml
// file readable by the owner only.
type fileCollectionStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileCollectionStorage constructs a [CollectionStorage] over dir. The
// directory is created with 0700 permissions on the first save.
func NewFileCollectionStorage(dir string, logger *logger.Logger) CollectionStorage {
	return &fileCollectionStorage{
		dir:    dir,
		logger: logger,
	}
}

// Load implements [CollectionStorage].
func (f *fileCollectionStorage) Load(ctx context.Context, name string, target any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}

	path := f.path(name)
	body, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug().Str("collection", name).Msg("collection file not found, using empty collection")
		return nil
	}
	if err != nil {
		f.logger.Err(err).Str("func", "fileCollectionStorage.Load").Str("path", path).Msg("failed to read collection file")
		return fmt.Errorf("%w %q: %w", ErrReadCollection, name, err)
	}

	return decodeCollection(name, body, target)
}

// Save implements [CollectionStorage]. The file is replaced atomically.
func (f *fileCollectionStorage) Save(ctx context.Context, name string, source any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}

	body, err := encodeCollection(name, source)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, dirPerm); err != nil {
		f.logger.Err(err).Str("func", "fileCollectionStorage.Save").Str("dir", f.dir).Msg("failed to create store directory")
		return fmt.Errorf("%w %q: %w", ErrWriteCollection, name, err)
	}

	if err := writeFileAtomic(f.path(name), body, filePerm); err != nil {
		f.logger.Err(err).Str("func", "fileCollectionStorage.Save").Str("collection", name).Msg("failed to write collection file")
		return fmt.Errorf("%w %q: %w", ErrWriteCollection, name, err)
	}

	return nil
}

// Close implements [CollectionStorage]. Nothing is held open between calls.
func (f *fileCollectionStorage) Close() error {
	return nil
}

func (f *fileCollectionStorage) path(name string) string {
	return filepath.Join(f.dir, name+collectionExt)
}

// writeFileAtomic writes data to a temporary file next to path, flushes it
// to disk and renames it over path, so readers only ever see the old or
// the new content.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err = tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err = tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("set permissions: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
