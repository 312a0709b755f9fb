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
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/ildunari/enhanced-word-live/cmd/wordedit/opts"
	"github.com/ildunari/enhanced-word-live/pkg/replace"
)

// NewFormatWordsCmd creates the format-words command: reformat every
// occurrence of specific words without changing the text. Each word becomes
// a replace request with itself as the replacement, whole-word matching on
// by default.
func NewFormatWordsCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		file       string
		words      []string
		ignoreCase bool
		anywhere   bool
		format     formatFlags
	)

	cmd := &cobra.Command{
		Use:   "format-words",
		Short: "Apply formatting to specific words throughout a document",
		Long: `Format-words reformats every occurrence of the given words in place:
the text is untouched, only the matched spans get the requested formatting.
Useful for highlighting a vocabulary (drug names, defined terms, statistical
markers) across a whole document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(words) == 0 {
				return errors.New("at least one --word is required")
			}

			reqs := make([]*replace.Request, 0, len(words))
			for _, word := range words {
				req := &replace.Request{
					Pattern:        word,
					Replacement:    word,
					MatchCase:      !ignoreCase,
					WholeWordsOnly: !anywhere,
				}
				format.apply(req)
				if !req.ApplyFormatting {
					return errors.New("format-words needs at least one formatting flag")
				}
				reqs = append(reqs, req)
			}

			entry, err := processDocument(cmd.Context(), file, reqs)
			rootOpts.Console.LogDocumentOperation(cmd.Context(), entryOperation(entry))
			if err != nil {
				return err
			}
			rootOpts.Console.Successf("formatted %d occurrence(s) across %d word(s)",
				entry.Replacements, len(words))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the .docx document")
	cmd.Flags().StringSliceVarP(&words, "word", "w", nil, "word to format (repeatable)")
	cmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "match case-insensitively")
	cmd.Flags().BoolVar(&anywhere, "anywhere", false, "match inside larger words too")
	format.register(cmd)

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("word")

	return cmd
}
