package docx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prolog = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\r\n"

// wrapDoc builds a word/document.xml part around the given body content.
func wrapDoc(body string) string {
	return prolog +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`
}

func TestParseDocument_Projection(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "single_run",
			body: `<w:p><w:r><w:t xml:space="preserve">Hello World</w:t></w:r></w:p>`,
			want: "Hello World",
		},
		{
			name: "multiple_runs_concatenate",
			body: `<w:p><w:r><w:t xml:space="preserve">Hel</w:t></w:r>` +
				`<w:r><w:t xml:space="preserve">lo</w:t></w:r></w:p>`,
			want: "Hello",
		},
		{
			name: "tab_and_break_fold_into_text",
			body: `<w:p><w:r><w:t xml:space="preserve">a</w:t><w:tab></w:tab>` +
				`<w:t xml:space="preserve">b</w:t><w:br></w:br>` +
				`<w:t xml:space="preserve">c</w:t></w:r></w:p>`,
			want: "a\tb\nc",
		},
		{
			name: "raw_children_contribute_nothing",
			body: `<w:p><w:bookmarkStart w:id="0" w:name="top"></w:bookmarkStart>` +
				`<w:r><w:t xml:space="preserve">text</w:t></w:r>` +
				`<w:bookmarkEnd w:id="0"></w:bookmarkEnd></w:p>`,
			want: "text",
		},
		{
			name: "opaque_run_excluded",
			body: `<w:p><w:r><w:drawing><w:inline>pic</w:inline></w:drawing></w:r>` +
				`<w:r><w:t xml:space="preserve">caption</w:t></w:r></w:p>`,
			want: "caption",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(wrapDoc(tt.body)))
			require.NoError(t, err)
			require.Len(t, doc.Paragraphs(), 1)
			assert.Equal(t, tt.want, doc.Paragraphs()[0].Text())
		})
	}
}

func TestParseDocument_RunFormatting(t *testing.T) {
	body := `<w:p><w:r><w:rPr>` +
		`<w:rFonts w:ascii="Courier New" w:hAnsi="Courier New"></w:rFonts>` +
		`<w:b></w:b><w:i w:val="0"></w:i>` +
		`<w:color w:val="FF0000"></w:color>` +
		`<w:sz w:val="28"></w:sz>` +
		`<w:u w:val="single"></w:u>` +
		`</w:rPr><w:t xml:space="preserve">styled</w:t></w:r></w:p>`

	doc, err := ParseDocument([]byte(wrapDoc(body)))
	require.NoError(t, err)

	runs := doc.Paragraphs()[0].Runs()
	require.Len(t, runs, 1)

	f := runs[0].Format
	require.NotNil(t, f.Bold)
	assert.True(t, *f.Bold, "bare w:b means on")
	require.NotNil(t, f.Italic)
	assert.False(t, *f.Italic, `w:val="0" means off`)
	require.NotNil(t, f.Underline)
	assert.True(t, *f.Underline)
	assert.Equal(t, "FF0000", f.Color)
	assert.Equal(t, "Courier New", f.FontName)
	assert.Equal(t, 28, f.Size)
	assert.Contains(t, runs[0].RawProps, `<w:color w:val="FF0000">`)
}

func TestParseDocument_MissingRoot(t *testing.T) {
	_, err := ParseDocument([]byte(prolog + `<other></other>`))
	require.Error(t, err)
}

// Round-trip inputs are written in the serializer's normalized form (expanded
// end tags, xml:space="preserve" on text). Parsing and re-serializing such a
// document must reproduce it byte for byte; that is the guarantee untouched
// paragraphs rely on.
func TestSerialize_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "plain_paragraph",
			body: `<w:p><w:r><w:t xml:space="preserve">Hello World</w:t></w:r></w:p>`,
		},
		{
			name: "paragraph_and_run_attributes_survive",
			body: `<w:p w:rsidR="00AB12CD"><w:r w:rsidRPr="00FF00AA">` +
				`<w:t xml:space="preserve">x</w:t></w:r></w:p>`,
		},
		{
			name: "paragraph_properties_and_formatting",
			body: `<w:p><w:pPr><w:jc w:val="center"></w:jc></w:pPr>` +
				`<w:r><w:rPr><w:b></w:b><w:highlight w:val="yellow"></w:highlight></w:rPr>` +
				`<w:t xml:space="preserve">bold</w:t></w:r></w:p>`,
		},
		{
			name: "escaped_characters",
			body: `<w:p><w:r><w:t xml:space="preserve">a &amp; b &lt; c</w:t></w:r></w:p>`,
		},
		{
			name: "hyperlink_between_runs",
			body: `<w:p><w:r><w:t xml:space="preserve">see </w:t></w:r>` +
				`<w:hyperlink w:anchor="ref"><w:r><w:t xml:space="preserve">here</w:t></w:r></w:hyperlink>` +
				`<w:r><w:t xml:space="preserve">.</w:t></w:r></w:p>`,
		},
		{
			name: "opaque_run_kept_verbatim",
			body: `<w:p><w:r><w:rPr><w:b></w:b></w:rPr>` +
				`<w:drawing><w:inline>pic</w:inline></w:drawing></w:r></w:p>`,
		},
		{
			name: "table_with_nested_table",
			body: `<w:tbl w:rsidR="001"><w:tblPr><w:tblW w:w="0"></w:tblW></w:tblPr>` +
				`<w:tblGrid><w:gridCol w:w="4788"></w:gridCol></w:tblGrid>` +
				`<w:tr><w:trPr><w:trHeight w:val="300"></w:trHeight></w:trPr>` +
				`<w:tc><w:tcPr><w:tcW w:w="4788"></w:tcW></w:tcPr>` +
				`<w:p><w:r><w:t xml:space="preserve">cell</w:t></w:r></w:p>` +
				`<w:tbl><w:tr><w:tc>` +
				`<w:p><w:r><w:t xml:space="preserve">nested</w:t></w:r></w:p>` +
				`</w:tc></w:tr></w:tbl>` +
				`</w:tc></w:tr></w:tbl>`,
		},
		{
			name: "section_properties_block",
			body: `<w:p><w:r><w:t xml:space="preserve">x</w:t></w:r></w:p>` +
				`<w:sectPr><w:pgSz w:w="12240" w:h="15840"></w:pgSz></w:sectPr>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := wrapDoc(tt.body)
			doc, err := ParseDocument([]byte(in))
			require.NoError(t, err)
			assert.Equal(t, in, string(doc.Serialize()))
		})
	}
}

func TestSerialize_TabAndBreakNormalize(t *testing.T) {
	// Folded tabs and breaks come back as self-closing elements; text around
	// them keeps its own w:t element.
	in := wrapDoc(`<w:p><w:r><w:t xml:space="preserve">a</w:t><w:tab></w:tab>` +
		`<w:t xml:space="preserve">b</w:t></w:r></w:p>`)
	doc, err := ParseDocument([]byte(in))
	require.NoError(t, err)

	want := wrapDoc(`<w:p><w:r><w:t xml:space="preserve">a</w:t><w:tab/>` +
		`<w:t xml:space="preserve">b</w:t></w:r></w:p>`)
	assert.Equal(t, want, string(doc.Serialize()))
}

func TestDocument_Paragraphs_Order(t *testing.T) {
	body := `<w:p><w:r><w:t xml:space="preserve">first</w:t></w:r></w:p>` +
		`<w:tbl><w:tr>` +
		`<w:tc><w:p><w:r><w:t xml:space="preserve">cell one</w:t></w:r></w:p>` +
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t xml:space="preserve">nested</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
		`</w:tc>` +
		`<w:tc><w:p><w:r><w:t xml:space="preserve">cell two</w:t></w:r></w:p></w:tc>` +
		`</w:tr></w:tbl>` +
		`<w:p><w:r><w:t xml:space="preserve">last</w:t></w:r></w:p>`

	doc, err := ParseDocument([]byte(wrapDoc(body)))
	require.NoError(t, err)

	var got []string
	for _, p := range doc.Paragraphs() {
		got = append(got, p.Text())
	}
	assert.Equal(t, []string{"first", "cell one", "nested", "cell two", "last"}, got)
}
