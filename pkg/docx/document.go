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
	"bytes"
	"encoding/xml"
	"io"

	"gitlab.com/tozd/go/errors"
)

// 📄 Document is the parsed word/document.xml part.
type Document struct {
	// Attrs preserves the root element attributes (namespace declarations).
	Attrs []xml.Attr
	Body  *Body
}

// 📦 Body is the ordered sequence of top-level blocks.
type Body struct {
	Blocks []Block
}

// Block is a body-level element: *Paragraph, *Table, or *RawXML.
type Block interface {
	isBlock()
}

// RawXML is any element the model does not interpret, held verbatim. It can
// appear at body level (sectPr), inside paragraphs (hyperlinks, bookmarks),
// or inside table cells.
type RawXML struct {
	Content string
}

func (*RawXML) isBlock()          {}
func (*RawXML) isParagraphChild() {}

// ParseDocument parses the contents of a word/document.xml part.
func ParseDocument(data []byte) (*Document, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	doc := &Document{Body: &Body{}}

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Errorf("reading document xml: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "document":
			doc.Attrs = start.Attr
		case "body":
			if err := parseBody(d, doc.Body); err != nil {
				return nil, errors.Errorf("parsing body: %w", err)
			}
		default:
			// Skip anything outside w:document/w:body.
			if err := d.Skip(); err != nil {
				return nil, errors.Errorf("skipping %s: %w", start.Name.Local, err)
			}
		}
	}

	if doc.Body == nil || doc.Attrs == nil {
		return nil, errors.New("missing w:document root element")
	}
	return doc, nil
}

// parseBody consumes the children of w:body.
func parseBody(d *xml.Decoder, body *Body) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			block, err := parseBlock(d, t)
			if err != nil {
				return err
			}
			body.Blocks = append(body.Blocks, block)
		case xml.EndElement:
			if t.Name.Local == "body" {
				return nil
			}
		}
	}
}

// parseBlock handles one block-level element (paragraph, table, or raw).
func parseBlock(d *xml.Decoder, start xml.StartElement) (Block, error) {
	switch start.Name.Local {
	case "p":
		return parseParagraph(d, start)
	case "tbl":
		return parseTable(d, start)
	default:
		raw, err := captureRaw(d, start)
		if err != nil {
			return nil, errors.Errorf("capturing %s: %w", start.Name.Local, err)
		}
		return &RawXML{Content: raw}, nil
	}
}

// Paragraphs returns the document's body paragraphs followed by table cell
// paragraphs, in document order, recursing into nested tables. This is the
// iteration order the replace walker uses.
func (doc *Document) Paragraphs() []*Paragraph {
	return blockParagraphs(doc.Body.Blocks)
}

func blockParagraphs(blocks []Block) []*Paragraph {
	var out []*Paragraph
	for _, b := range blocks {
		switch block := b.(type) {
		case *Paragraph:
			out = append(out, block)
		case *Table:
			for _, row := range block.Rows {
				for _, cell := range row.Cells {
					out = append(out, blockParagraphs(cell.Blocks)...)
				}
			}
		}
	}
	return out
}
