// Package replace implements the run-level search-and-replace engine. Given
// a paragraph's formatted runs, a search pattern, and optional formatting
// overrides, it rewrites the paragraph's run sequence so that replaced text
// lands exactly where the match was, in original left-to-right order, with
// unmatched text and formatting preserved.
//
// The pipeline per paragraph is a single forward pass: project the runs to
// plain text, find ordered non-overlapping matches, merge the match list
// with the run boundaries into a segment list, then atomically swap the
// paragraph's runs for the segment list's realization. Processing is never
// reversed and segments are never appended out of position; ordering falls
// out of the walk, which removes the corruption class where multiple matches
// in one paragraph ended up reordered, duplicated, or appended to the
// paragraph end.
//
// No state is carried between paragraphs or between calls. Callers must
// serialize replace passes per document; concurrent rebuilds of the same
// paragraph are destructive.
package replace
