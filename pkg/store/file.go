// Copyright 2025 the enhanced-word-live authors
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

package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/ildunari/enhanced-word-live/pkg/docx"
)

// 📁 FileStore persists a document as a .docx file on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store for the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and parses the file.
func (s *FileStore) Load(ctx context.Context) (*docx.File, error) {
	zerolog.Ctx(ctx).Debug().Str("path", s.path).Msg("loading document")
	return docx.Open(s.path)
}

// Save writes the document atomically: the package is rendered to a
// temporary file in the same directory and renamed over the original, so a
// failed save never leaves a half-written document behind.
func (s *FileStore) Save(ctx context.Context, f *docx.File) error {
	zerolog.Ctx(ctx).Debug().Str("path", s.path).Msg("saving document")

	if err := s.checkWritable(); err != nil {
		return err
	}

	data, err := f.Bytes()
	if err != nil {
		return errors.Errorf("rendering document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".wordedit-*.docx")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// checkWritable preflights the destination so a long walk does not end in a
// permission surprise. A document open in Word typically fails this check.
func (s *FileStore) checkWritable() error {
	f, err := os.OpenFile(s.path, os.O_WRONLY, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Save will create it.
		}
		return errors.Errorf("%w: %s: %w", ErrDocumentUnwritable, s.path, err)
	}
	f.Close()
	return nil
}
