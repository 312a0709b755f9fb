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

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ildunari/enhanced-word-live/cmd/wordedit/commands"
	"github.com/ildunari/enhanced-word-live/cmd/wordedit/opts"
	"github.com/ildunari/enhanced-word-live/pkg/log"
)

var debug bool

// NewRootCmd builds the wordedit command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wordedit",
		Short: "Search-and-replace engine for Word documents",
		Long: `wordedit rewrites the formatted runs of .docx documents: find text or
regex patterns, replace them in place, and optionally reformat exactly the
replaced spans while leaving everything else byte-identical.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	rootOpts := &opts.RootOpts{
		Console: log.New(os.Stdout, zerolog.InfoLevel),
	}

	root.AddCommand(commands.NewReplaceCmd(rootOpts))
	root.AddCommand(commands.NewFormatWordsCmd(rootOpts))
	root.AddCommand(commands.NewApplyCmd(rootOpts))

	return root
}

// setupLogging configures zerolog based on flags.
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}
