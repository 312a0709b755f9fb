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
	"sync"

	"gitlab.com/tozd/go/errors"

	"github.com/ildunari/enhanced-word-live/pkg/docx"
)

// 📸 SnapshotStore holds a document as a full-content snapshot in memory.
// It is the seam a live-editor relay plugs into: the relay exchanges whole
// package snapshots with the hosted editor and the engine reads and writes
// through the same Store interface it uses for files.
type SnapshotStore struct {
	mu      sync.Mutex
	content []byte
}

// NewSnapshotStore creates a store seeded with a .docx package.
func NewSnapshotStore(content []byte) *SnapshotStore {
	return &SnapshotStore{content: content}
}

// Load parses the current snapshot.
func (s *SnapshotStore) Load(ctx context.Context) (*docx.File, error) {
	s.mu.Lock()
	data := s.content
	s.mu.Unlock()
	if len(data) == 0 {
		return nil, errors.New("snapshot store is empty")
	}
	return docx.OpenBytes(data)
}

// Save replaces the snapshot with the rendered document.
func (s *SnapshotStore) Save(ctx context.Context, f *docx.File) error {
	data, err := f.Bytes()
	if err != nil {
		return errors.Errorf("rendering document: %w", err)
	}
	s.mu.Lock()
	s.content = data
	s.mu.Unlock()
	return nil
}

// CurrentContent returns the latest snapshot bytes.
func (s *SnapshotStore) CurrentContent() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.content))
	copy(out, s.content)
	return out
}

// SetCurrentContent replaces the snapshot wholesale, e.g. when the hosted
// editor pushes a newer revision.
func (s *SnapshotStore) SetCurrentContent(content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = make([]byte, len(content))
	copy(s.content, content)
}
