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

// Package status tracks per-document outcomes of a batch run.
package status

import (
	"sync"
)

// 📊 DocumentStatus represents the outcome of one document in a batch.
type DocumentStatus int

const (
	StatusUnknown   DocumentStatus = iota
	StatusModified                 // replacements were made and saved
	StatusUnchanged                // no matches anywhere in the document
	StatusFailed                   // the document could not be processed
)

// String returns a string representation of DocumentStatus.
func (s DocumentStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Entry is the recorded outcome for one document.
type Entry struct {
	Path         string
	Status       DocumentStatus
	Replacements int // total replacements across all rules
	Failures     int // paragraphs rolled back
	Err          error
}

// 🧮 Tracker aggregates entries from a batch run. It is safe for concurrent
// use; the batch command records from one goroutine per document.
type Tracker struct {
	mu      sync.Mutex
	entries []Entry
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record adds one document outcome.
func (t *Tracker) Record(e Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, e)
}

// Entries returns the recorded outcomes in recording order.
func (t *Tracker) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Summary totals the batch.
func (t *Tracker) Summary() (modified, unchanged, failed, replacements int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range t.entries {
		switch e.Status {
		case StatusModified:
			modified++
		case StatusUnchanged:
			unchanged++
		case StatusFailed:
			failed++
		}
		replacements += e.Replacements
	}
	return modified, unchanged, failed, replacements
}
