// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 💾 FileStore handles file system access for operations
type FileStore interface {
	// ReadFile returns the content and permission bits of path
	ReadFile(ctx context.Context, path string) ([]byte, fs.FileMode, error)

	// WriteFileAtomic replaces path with content, creating parent directories
	WriteFileAtomic(ctx context.Context, path string, content []byte, perm fs.FileMode) error
}

// DiskStore implements FileStore on the local file system
type DiskStore struct{}

var _ FileStore = DiskStore{}

func (DiskStore) ReadFile(ctx context.Context, path string) ([]byte, fs.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, errors.Errorf("stat file: %w", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, errors.Errorf("reading file: %w", err)
	}
	return content, info.Mode().Perm(), nil
}

func (DiskStore) WriteFileAtomic(ctx context.Context, path string, content []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting permissions: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
