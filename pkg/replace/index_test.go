package replace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ildunari/enhanced-word-live/pkg/docx"
)

func indexParagraph(texts ...string) *docx.Paragraph {
	p := &docx.Paragraph{}
	for _, text := range texts {
		p.Children = append(p.Children, &docx.Run{Text: text})
	}
	return p
}

func TestRunIndex_Locate(t *testing.T) {
	// "Hel" + "lo wor" + "ld!"
	ri := newRunIndex(indexParagraph("Hel", "lo wor", "ld!"))
	require.Equal(t, 12, ri.length())

	tests := []struct {
		name      string
		off       int
		wantRun   int
		wantLocal int
	}{
		{name: "start", off: 0, wantRun: 0, wantLocal: 0},
		{name: "inside_first", off: 2, wantRun: 0, wantLocal: 2},
		{name: "boundary_belongs_to_next", off: 3, wantRun: 1, wantLocal: 0},
		{name: "inside_second", off: 5, wantRun: 1, wantLocal: 2},
		{name: "last_boundary", off: 9, wantRun: 2, wantLocal: 0},
		{name: "inside_last", off: 11, wantRun: 2, wantLocal: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, local := ri.locate(tt.off)
			assert.Equal(t, tt.wantRun, run)
			assert.Equal(t, tt.wantLocal, local)
		})
	}
}

func TestRunIndex_Slices(t *testing.T) {
	ri := newRunIndex(indexParagraph("Hel", "lo wor", "ld!"))

	tests := []struct {
		name       string
		start, end int
		want       []runSlice
	}{
		{
			name:  "empty_range",
			start: 4, end: 4,
			want: nil,
		},
		{
			name:  "within_one_run",
			start: 4, end: 6,
			want: []runSlice{{run: 1, start: 1, end: 3}},
		},
		{
			name:  "spanning_two_runs",
			start: 2, end: 5,
			want: []runSlice{{run: 0, start: 2, end: 3}, {run: 1, start: 0, end: 2}},
		},
		{
			name:  "whole_projection",
			start: 0, end: 12,
			want: []runSlice{
				{run: 0, start: 0, end: 3},
				{run: 1, start: 0, end: 6},
				{run: 2, start: 0, end: 3},
			},
		},
		{
			name:  "aligned_to_run_boundaries",
			start: 3, end: 9,
			want: []runSlice{{run: 1, start: 0, end: 6}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ri.slices(tt.start, tt.end))
		})
	}
}

func TestRunIndex_SkipsNonRunChildren(t *testing.T) {
	p := &docx.Paragraph{Children: []docx.ParagraphChild{
		&docx.RawXML{Content: `<w:bookmarkStart w:id="0" w:name="top"></w:bookmarkStart>`},
		&docx.Run{Text: "abc"},
		&docx.RawXML{Content: `<w:bookmarkEnd w:id="0"></w:bookmarkEnd>`},
		&docx.Run{Text: "def"},
	}}
	ri := newRunIndex(p)

	require.Len(t, ri.runs, 2)
	assert.Equal(t, 6, ri.length())
	assert.Equal(t, []int{1, 3}, ri.child)
}
