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

	"gitlab.com/tozd/go/errors"
)

// 🗂 Table is a w:tbl block. Cells hold blocks recursively, so nested tables
// parse the same way the body does.
type Table struct {
	// Attrs preserves the w:tbl element attributes.
	Attrs []xml.Attr
	// Props and Grid are the verbatim w:tblPr and w:tblGrid elements.
	Props string
	Grid  string
	Rows  []*TableRow
}

func (*Table) isBlock() {}

// TableRow is a w:tr element.
type TableRow struct {
	Attrs []xml.Attr
	Props string // verbatim w:trPr
	Cells []*TableCell
	// Extra preserves any other w:tr children (e.g. tblPrEx) verbatim.
	Extra []string
}

// TableCell is a w:tc element.
type TableCell struct {
	Attrs  []xml.Attr
	Props  string // verbatim w:tcPr
	Blocks []Block
}

// parseTable consumes a w:tbl element.
func parseTable(d *xml.Decoder, start xml.StartElement) (*Table, error) {
	tbl := &Table{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tblPr":
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, errors.Errorf("capturing tblPr: %w", err)
				}
				tbl.Props = raw
			case "tblGrid":
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, errors.Errorf("capturing tblGrid: %w", err)
				}
				tbl.Grid = raw
			case "tr":
				row, err := parseTableRow(d, t)
				if err != nil {
					return nil, errors.Errorf("parsing table row: %w", err)
				}
				tbl.Rows = append(tbl.Rows, row)
			default:
				// tbl children other than tblPr/tblGrid/tr are rare; keep
				// them with the table properties so they are not lost.
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, errors.Errorf("capturing %s: %w", t.Name.Local, err)
				}
				tbl.Props += raw
			}
		case xml.EndElement:
			if t.Name.Local == "tbl" {
				return tbl, nil
			}
		}
	}
}

// parseTableRow consumes a w:tr element.
func parseTableRow(d *xml.Decoder, start xml.StartElement) (*TableRow, error) {
	row := &TableRow{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "trPr":
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				row.Props = raw
			case "tc":
				cell, err := parseTableCell(d, t)
				if err != nil {
					return nil, err
				}
				row.Cells = append(row.Cells, cell)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				row.Extra = append(row.Extra, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "tr" {
				return row, nil
			}
		}
	}
}

// parseTableCell consumes a w:tc element.
func parseTableCell(d *xml.Decoder, start xml.StartElement) (*TableCell, error) {
	cell := &TableCell{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "tcPr" {
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				cell.Props = raw
				continue
			}
			block, err := parseBlock(d, t)
			if err != nil {
				return nil, err
			}
			cell.Blocks = append(cell.Blocks, block)
		case xml.EndElement:
			if t.Name.Local == "tc" {
				return cell, nil
			}
		}
	}
}
