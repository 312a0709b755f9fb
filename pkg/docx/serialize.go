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

package docx

import (
	"encoding/xml"
	"strings"
)

const xmlProlog = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\r\n"

// Serialize renders the document back to word/document.xml form. Raw-captured
// children are emitted verbatim; runs are rendered from their text and
// properties.
func (doc *Document) Serialize() []byte {
	var sb strings.Builder
	sb.WriteString(xmlProlog)

	sb.WriteString("<w:document")
	writeAttrs(&sb, doc.Attrs)
	sb.WriteString("><w:body>")
	writeBlocks(&sb, doc.Body.Blocks)
	sb.WriteString("</w:body></w:document>")
	return []byte(sb.String())
}

// attrName restores the prefixed form of a decoded attribute name. The
// decoder reports xmlns:w as {Space: "xmlns", Local: "w"} and resolves other
// prefixes to their namespace URIs.
func attrName(name xml.Name) string {
	switch name.Space {
	case "":
		return name.Local
	case "xmlns":
		return "xmlns:" + name.Local
	default:
		return nsPrefix(name.Space) + ":" + name.Local
	}
}

func writeAttrs(sb *strings.Builder, attrs []xml.Attr) {
	for _, attr := range attrs {
		sb.WriteString(" ")
		sb.WriteString(attrName(attr.Name))
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(attr.Value))
		sb.WriteString(`"`)
	}
}

func writeBlocks(sb *strings.Builder, blocks []Block) {
	for _, b := range blocks {
		switch block := b.(type) {
		case *Paragraph:
			writeParagraph(sb, block)
		case *Table:
			writeTable(sb, block)
		case *RawXML:
			sb.WriteString(block.Content)
		}
	}
}

func writeParagraph(sb *strings.Builder, p *Paragraph) {
	sb.WriteString("<w:p")
	writeAttrs(sb, p.Attrs)
	sb.WriteString(">")
	sb.WriteString(p.Props)
	for _, c := range p.Children {
		switch child := c.(type) {
		case *Run:
			writeRun(sb, child)
		case *RawXML:
			sb.WriteString(child.Content)
		}
	}
	sb.WriteString("</w:p>")
}

// writeRun renders a run, splitting folded tabs and breaks back into their
// elements. Text nodes always carry xml:space="preserve" so leading and
// trailing spaces created by a run split survive.
func writeRun(sb *strings.Builder, r *Run) {
	sb.WriteString("<w:r")
	writeAttrs(sb, r.Attrs)
	sb.WriteString(">")
	sb.WriteString(r.RawProps)
	rest := r.Text
	for len(rest) > 0 {
		i := strings.IndexAny(rest, "\t\n")
		if i < 0 {
			writeTextElement(sb, rest)
			break
		}
		if i > 0 {
			writeTextElement(sb, rest[:i])
		}
		if rest[i] == '\t' {
			sb.WriteString("<w:tab/>")
		} else {
			sb.WriteString("<w:br/>")
		}
		rest = rest[i+1:]
	}
	sb.WriteString("</w:r>")
}

func writeTextElement(sb *strings.Builder, text string) {
	sb.WriteString(`<w:t xml:space="preserve">`)
	sb.WriteString(escapeText(text))
	sb.WriteString("</w:t>")
}

func writeTable(sb *strings.Builder, t *Table) {
	sb.WriteString("<w:tbl")
	writeAttrs(sb, t.Attrs)
	sb.WriteString(">")
	sb.WriteString(t.Props)
	sb.WriteString(t.Grid)
	for _, row := range t.Rows {
		sb.WriteString("<w:tr")
		writeAttrs(sb, row.Attrs)
		sb.WriteString(">")
		sb.WriteString(row.Props)
		for _, extra := range row.Extra {
			sb.WriteString(extra)
		}
		for _, cell := range row.Cells {
			sb.WriteString("<w:tc")
			writeAttrs(sb, cell.Attrs)
			sb.WriteString(">")
			sb.WriteString(cell.Props)
			writeBlocks(sb, cell.Blocks)
			sb.WriteString("</w:tc>")
		}
		sb.WriteString("</w:tr>")
	}
	sb.WriteString("</w:tbl>")
}
