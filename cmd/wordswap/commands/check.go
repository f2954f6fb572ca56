// Copyright 2025 walteh LLC
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
	"fmt"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/wordswap/cmd/wordswap/opts"
	"github.com/walteh/wordswap/pkg/log"
	"github.com/walteh/wordswap/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates the check command
func NewCheckCmd(o *opts.RootOpts) *cobra.Command {
	var diff bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show what patch would change without writing",
		Long: `Check runs the same scan as patch but never writes a file.
With --diff the decoded text of every changed file is printed as a diff.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "check").Logger().WithContext(cmd.Context())

			job, err := o.Load(ctx)
			if err != nil {
				return err
			}

			logger := o.Logger(cmd.ErrOrStderr())
			ctx = log.NewContext(ctx, logger)
			logger.Header(job.Config.String())

			op, err := operation.NewCheckOperation(operation.Options{
				Config:     job.Config,
				Dictionary: job.Dictionary,
				Logger:     logger,
				Diff:       diff,
			})
			if err != nil {
				return errors.Errorf("creating check operation: %w", err)
			}

			if err := runOperation(ctx, "check", op, job.Config.Async); err != nil {
				return errors.Errorf("checking files: %w", err)
			}

			out := cmd.OutOrStdout()
			results := op.Results()
			for _, r := range results {
				if r.Diff == "" {
					continue
				}
				fmt.Fprintf(out, "%s\n%s\n\n", color.New(color.Bold).Sprint("--- "+r.Path), r.Diff)
			}

			table, err := renderSummary(results, checkStatus)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, table)

			if s := operation.Summarize(results); s.Modified > 0 {
				logger.Warningf("%d of %d files would change", s.Modified, s.Files)
				if !diff {
					logger.Info("run with --diff to see the changes")
				}
			} else {
				logger.Success("all files are up to date")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&diff, "diff", false, "print a text diff for every changed file")

	return cmd
}
