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
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ildunari/enhanced-word-live/cmd/wordedit/opts"
	"github.com/ildunari/enhanced-word-live/pkg/replace"
	"github.com/ildunari/enhanced-word-live/pkg/rules"
	"github.com/ildunari/enhanced-word-live/pkg/status"
)

// NewApplyCmd creates the apply command: run a rule file against every
// document matching a glob. Documents are processed concurrently — each file
// is owned by exactly one goroutine, so per-document writes stay serialized.
func NewApplyCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		rulesPath string
		glob      string
		parallel  int
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a rule file to every matching document",
		Long: `Apply loads a rule file (YAML, JSON, or HCL) and runs every rule against
each document matched by the glob. All rules are validated before any
document is touched; a rebuild failure in one paragraph never aborts the
rest of a document, and a failure in one document never aborts the batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ruleSet, err := rules.Load(ctx, rulesPath)
			if err != nil {
				return errors.Errorf("loading rules: %w", err)
			}

			paths, err := doublestar.FilepathGlob(glob)
			if err != nil {
				return errors.Errorf("expanding glob %q: %w", glob, err)
			}
			if len(paths) == 0 {
				rootOpts.Console.Warningf("no documents match %q", glob)
				return nil
			}

			reqs := make([]*replace.Request, len(ruleSet.Rules))
			for i, rule := range ruleSet.Rules {
				reqs[i] = rule.Request()
			}

			rootOpts.Console.Header("applying rules")
			tracker := status.NewTracker()

			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(parallel)
			for _, path := range paths {
				path := path
				g.Go(func() error {
					entry, err := processDocument(gctx, path, reqs)
					tracker.Record(entry)
					rootOpts.Console.LogDocumentOperation(gctx, entryOperation(entry))
					// Per-document failures are recorded, not fatal.
					_ = err
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			modified, unchanged, failed, replacements := tracker.Summary()
			rootOpts.Console.Infof("%d modified, %d unchanged, %d failed, %d replacement(s)",
				modified, unchanged, failed, replacements)
			if failed > 0 {
				return errors.Errorf("%d document(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "path to the rule file")
	cmd.Flags().StringVarP(&glob, "glob", "g", "**/*.docx", "glob selecting documents")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "documents processed concurrently")

	_ = cmd.MarkFlagRequired("rules")

	return cmd
}
