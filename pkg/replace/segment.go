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
	"encoding/xml"
	"slices"

	"github.com/ildunari/enhanced-word-live/pkg/docx"
)

type segmentKind int

const (
	segmentUnmatched segmentKind = iota
	segmentReplacement
)

// 🧩 segment is one piece of the rebuilt paragraph: either an unmatched
// stretch of exactly one source run, carrying that run's formatting
// verbatim, or the replacement for exactly one match.
type segment struct {
	kind segmentKind
	text string

	// srcRun is the owning run for unmatched segments, or the first run
	// overlapping the match for replacements. It anchors the segment between
	// the paragraph's non-run children and supplies the base formatting.
	srcRun int

	// attrs carries the source run's w:r element attributes (revision ids
	// and the like) onto the output run, so untouched stretches stay
	// byte-identical after a rebuild.
	attrs []xml.Attr

	// rawProps is the realized w:rPr for the output run. For unmatched
	// segments it is the source run's verbatim properties; for replacements
	// it is either the base run's verbatim properties (no formatting
	// requested) or the rendered merge result.
	rawProps string

	// format is the parsed attribute set matching rawProps, kept on the
	// output run so a later pass over the same document has a merge base.
	format docx.Formatting
}

// buildSegments fuses the ordered match list with the run boundaries in one
// forward pass. Gaps before, between, and after matches yield one unmatched
// segment per source run; each match yields exactly one replacement segment.
// Output order is original left-to-right textual order by construction,
// regardless of match count or direction of anything else in the system.
func buildSegments(ri *runIndex, matches []Match, m *Matcher, req *Request, text string) []segment {
	overrides := req.overrides()
	var segs []segment

	emitGap := func(start, end int) {
		for _, sl := range ri.slices(start, end) {
			run := ri.runs[sl.run]
			segs = append(segs, segment{
				kind:     segmentUnmatched,
				text:     run.Text[sl.start:sl.end],
				srcRun:   sl.run,
				attrs:    run.Attrs,
				rawProps: run.RawProps,
				format:   run.Format,
			})
		}
	}

	pos := 0
	for _, match := range matches {
		emitGap(pos, match.Start)

		// The first run overlapping the match, by source order, seeds the
		// merge base.
		baseRun, _ := ri.locate(match.Start)
		base := ri.runs[baseRun]
		rawProps, format := base.RawProps, base.Format
		if req.ApplyFormatting {
			format = MergeFormatting(base.Format, overrides)
			rawProps = format.RenderRunProps()
		}
		// An empty expansion is an explicit deletion: the segment stays in
		// the sequence but realizes to no run.
		segs = append(segs, segment{
			kind:     segmentReplacement,
			text:     m.Expand(text, req.Replacement, match),
			srcRun:   baseRun,
			attrs:    base.Attrs,
			rawProps: rawProps,
			format:   format,
		})
		pos = match.End
	}
	emitGap(pos, ri.length())

	return segs
}

// transformedText applies the find/replace semantics directly to the
// plain-text projection. The rebuilt runs must concatenate to exactly this
// string; the rebuilder checks that before swapping anything.
func transformedText(text string, matches []Match, m *Matcher, req *Request) string {
	var out []byte
	pos := 0
	for _, match := range matches {
		out = append(out, text[pos:match.Start]...)
		out = append(out, m.Expand(text, req.Replacement, match)...)
		pos = match.End
	}
	out = append(out, text[pos:]...)
	return string(out)
}

// realize converts the segment list into the paragraph's new child list. Raw
// (non-run) children keep their original relative positions: each output run
// is anchored to its source run's child slot. Adjacent runs with identical
// realized properties are coalesced.
func realize(p *docx.Paragraph, ri *runIndex, segs []segment) []docx.ParagraphChild {
	// Group realized runs by source run position.
	bySrc := make([][]*docx.Run, len(ri.runs))
	for _, seg := range segs {
		if seg.text == "" {
			continue
		}
		bySrc[seg.srcRun] = append(bySrc[seg.srcRun], &docx.Run{
			Attrs:    seg.attrs,
			Text:     seg.text,
			RawProps: seg.rawProps,
			Format:   seg.format,
		})
	}

	// Reassemble children in original order, replacing each source run slot
	// with the runs realized from it. A run that was empty to begin with
	// yields no segments; it passes through unchanged, like a raw child.
	var children []docx.ParagraphChild
	runPos := 0
	for _, c := range p.Children {
		r, ok := c.(*docx.Run)
		if !ok {
			children = append(children, c)
			continue
		}
		if len(bySrc[runPos]) == 0 && r.Text == "" {
			children = append(children, c)
		}
		for _, out := range bySrc[runPos] {
			children = append(children, out)
		}
		runPos++
	}

	return coalesce(children)
}

// coalesce merges adjacent runs whose realized properties and element
// attributes are identical. A raw child between two runs breaks adjacency,
// so text never migrates across hyperlinks or bookmarks; empty runs are
// never merge candidates, so a passed-through empty run survives intact.
func coalesce(children []docx.ParagraphChild) []docx.ParagraphChild {
	var out []docx.ParagraphChild
	for _, c := range children {
		r, ok := c.(*docx.Run)
		if !ok {
			out = append(out, c)
			continue
		}
		if len(out) > 0 && r.Text != "" {
			if prev, ok := out[len(out)-1].(*docx.Run); ok &&
				prev.Text != "" &&
				prev.RawProps == r.RawProps &&
				slices.Equal(prev.Attrs, r.Attrs) {
				prev.Text += r.Text
				continue
			}
		}
		out = append(out, &docx.Run{Attrs: r.Attrs, Text: r.Text, RawProps: r.RawProps, Format: r.Format})
	}
	return out
}
