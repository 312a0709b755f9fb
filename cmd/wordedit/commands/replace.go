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

package commands

import (
	"context"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/ildunari/enhanced-word-live/cmd/wordedit/opts"
	"github.com/ildunari/enhanced-word-live/pkg/log"
	"github.com/ildunari/enhanced-word-live/pkg/replace"
	"github.com/ildunari/enhanced-word-live/pkg/status"
	"github.com/ildunari/enhanced-word-live/pkg/store"
)

// formatFlags are the formatting override flags shared by replace and
// format-words.
type formatFlags struct {
	bold      bool
	noBold    bool
	italic    bool
	underline bool
	color     string
	fontName  string
	fontSize  int
}

func (f *formatFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.bold, "bold", false, "make replaced text bold")
	cmd.Flags().BoolVar(&f.noBold, "no-bold", false, "make replaced text explicitly not bold")
	cmd.Flags().BoolVar(&f.italic, "italic", false, "make replaced text italic")
	cmd.Flags().BoolVar(&f.underline, "underline", false, "underline replaced text")
	cmd.Flags().StringVar(&f.color, "color", "", "replaced text color (name or #RRGGBB)")
	cmd.Flags().StringVar(&f.fontName, "font-name", "", "replaced text font family")
	cmd.Flags().IntVar(&f.fontSize, "font-size", 0, "replaced text font size in points")
}

// apply copies the set flags onto the request.
func (f *formatFlags) apply(req *replace.Request) {
	on := true
	off := false
	if f.bold {
		req.Bold = &on
	}
	if f.noBold {
		req.Bold = &off
	}
	if f.italic {
		req.Italic = &on
	}
	if f.underline {
		req.Underline = &on
	}
	req.Color = f.color
	req.FontName = f.fontName
	req.FontSize = f.fontSize
	req.ApplyFormatting = req.Bold != nil || req.Italic != nil || req.Underline != nil ||
		req.Color != "" || req.FontName != "" || req.FontSize != 0
}

// NewReplaceCmd creates the replace command.
func NewReplaceCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		file       string
		find       string
		replaceArg string
		regex      bool
		ignoreCase bool
		wholeWords bool
		format     formatFlags
	)

	cmd := &cobra.Command{
		Use:   "replace",
		Short: "Find and replace text in one document",
		Long: `Replace finds every occurrence of a pattern in a document's paragraphs
and table cells and replaces it in place, preserving all surrounding
formatting. With formatting flags set, exactly the replaced spans are
reformatted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &replace.Request{
				Pattern:        find,
				IsRegex:        regex,
				Replacement:    replaceArg,
				MatchCase:      !ignoreCase,
				WholeWordsOnly: wholeWords,
			}
			format.apply(req)

			entry, err := processDocument(cmd.Context(), file, []*replace.Request{req})
			rootOpts.Console.LogDocumentOperation(cmd.Context(), entryOperation(entry))
			if err != nil {
				return err
			}
			rootOpts.Console.Successf("replaced %d occurrence(s) of %q", entry.Replacements, find)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the .docx document")
	cmd.Flags().StringVar(&find, "find", "", "text or regex pattern to search for")
	cmd.Flags().StringVar(&replaceArg, "replace", "", "replacement text ($1-style refs with --regex)")
	cmd.Flags().BoolVar(&regex, "regex", false, "treat the pattern as a regular expression")
	cmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "match case-insensitively")
	cmd.Flags().BoolVar(&wholeWords, "whole-words", false, "match whole words only")
	format.register(cmd)

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("find")

	return cmd
}

// processDocument loads one document, applies the requests in order, and
// saves it when anything changed.
func processDocument(ctx context.Context, path string, reqs []*replace.Request) (status.Entry, error) {
	entry := status.Entry{Path: path, Status: status.StatusUnchanged}

	st := store.NewFileStore(path)
	f, err := st.Load(ctx)
	if err != nil {
		entry.Status = status.StatusFailed
		entry.Err = err
		return entry, errors.Errorf("loading document: %w", err)
	}

	for _, req := range reqs {
		res, err := replace.Execute(ctx, f.Document, req)
		if err != nil {
			entry.Status = status.StatusFailed
			entry.Err = err
			return entry, errors.Errorf("replacing in %s: %w", path, err)
		}
		entry.Replacements += res.Replacements
		entry.Failures += len(res.Failures)
	}

	if entry.Replacements == 0 {
		return entry, nil
	}

	if err := st.Save(ctx, f); err != nil {
		entry.Status = status.StatusFailed
		entry.Err = err
		return entry, errors.Errorf("saving document: %w", err)
	}
	entry.Status = status.StatusModified
	return entry, nil
}

// entryOperation adapts a status entry for console logging.
func entryOperation(e status.Entry) log.DocumentOperation {
	return log.DocumentOperation{
		Path:         e.Path,
		Status:       e.Status,
		Replacements: e.Replacements,
		Failures:     e.Failures,
	}
}
