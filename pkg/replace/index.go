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

package replace

import (
	"sort"

	"github.com/ildunari/enhanced-word-live/pkg/docx"
)

// runSlice is the part of one run covered by an offset range: run is a
// position in the index's run list, start/end are local byte offsets.
type runSlice struct {
	run   int
	start int
	end   int
}

// 🗺 runIndex maps plain-text projection offsets back to the owning runs via
// a prefix sum over run lengths. It is a pure snapshot of one paragraph and
// never mutated.
type runIndex struct {
	runs []*docx.Run
	// child[i] is the paragraph child position of runs[i], so rebuilt runs
	// can be anchored between the paragraph's raw (non-run) children.
	child []int
	// cum[i] is the projection offset where runs[i] starts; cum has one
	// extra entry holding the total length.
	cum []int
}

func newRunIndex(p *docx.Paragraph) *runIndex {
	ri := &runIndex{}
	total := 0
	for pos, c := range p.Children {
		r, ok := c.(*docx.Run)
		if !ok {
			continue
		}
		ri.runs = append(ri.runs, r)
		ri.child = append(ri.child, pos)
		ri.cum = append(ri.cum, total)
		total += len(r.Text)
	}
	ri.cum = append(ri.cum, total)
	return ri
}

// length is the total projection length.
func (ri *runIndex) length() int {
	return ri.cum[len(ri.cum)-1]
}

// locate returns the run owning the given offset and the offset local to it.
// Boundary offsets belong to the following non-empty run.
func (ri *runIndex) locate(off int) (run, local int) {
	// First run whose end is past the offset.
	run = sort.Search(len(ri.runs), func(i int) bool {
		return ri.cum[i+1] > off
	})
	if run == len(ri.runs) {
		run = len(ri.runs) - 1
	}
	return run, off - ri.cum[run]
}

// slices covers exactly [start, end) with ordered per-run pieces. Runs whose
// overlap with the range is empty contribute nothing.
func (ri *runIndex) slices(start, end int) []runSlice {
	if start >= end {
		return nil
	}
	var out []runSlice
	first, _ := ri.locate(start)
	for i := first; i < len(ri.runs) && ri.cum[i] < end; i++ {
		s := max(start, ri.cum[i])
		e := min(end, ri.cum[i+1])
		if s >= e {
			continue
		}
		out = append(out, runSlice{run: i, start: s - ri.cum[i], end: e - ri.cum[i]})
	}
	return out
}
