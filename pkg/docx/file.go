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
	"archive/zip"
	"bytes"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
)

const documentPart = "word/document.xml"

// 📦 File is a parsed .docx package: the document model plus the original
// archive bytes, kept so that every part other than word/document.xml can be
// written back untouched.
type File struct {
	Document *Document
	source   []byte
}

// Open reads a .docx file from disk.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}
	f, err := OpenBytes(data)
	if err != nil {
		return nil, errors.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

// OpenBytes parses a .docx package held in memory.
func OpenBytes(data []byte) (*File, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Errorf("reading docx archive: %w", err)
	}

	var docXML []byte
	for _, part := range zr.File {
		if part.Name != documentPart {
			continue
		}
		rc, err := part.Open()
		if err != nil {
			return nil, errors.Errorf("opening %s: %w", documentPart, err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errors.Errorf("reading %s: %w", documentPart, err)
		}
		break
	}
	if docXML == nil {
		return nil, errors.Errorf("not a valid docx file: missing %s", documentPart)
	}

	doc, err := ParseDocument(docXML)
	if err != nil {
		return nil, errors.Errorf("parsing %s: %w", documentPart, err)
	}
	return &File{Document: doc, source: data}, nil
}

// Write re-emits the package: every part is copied from the source archive
// verbatim except word/document.xml, which is serialized from the model.
func (f *File) Write(w io.Writer) error {
	zr, err := zip.NewReader(bytes.NewReader(f.source), int64(len(f.source)))
	if err != nil {
		return errors.Errorf("reading source archive: %w", err)
	}

	zw := zip.NewWriter(w)
	for _, part := range zr.File {
		pw, err := zw.Create(part.Name)
		if err != nil {
			return errors.Errorf("creating part %s: %w", part.Name, err)
		}
		if part.Name == documentPart {
			if _, err := pw.Write(f.Document.Serialize()); err != nil {
				return errors.Errorf("writing %s: %w", documentPart, err)
			}
			continue
		}
		rc, err := part.Open()
		if err != nil {
			return errors.Errorf("opening part %s: %w", part.Name, err)
		}
		_, err = io.Copy(pw, rc)
		rc.Close()
		if err != nil {
			return errors.Errorf("copying part %s: %w", part.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return errors.Errorf("finalizing archive: %w", err)
	}
	return nil
}

// Bytes renders the whole package into memory.
func (f *File) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
