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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/wordswap/cmd/wordswap/opts"
	"github.com/walteh/wordswap/pkg/log"
	"github.com/walteh/wordswap/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewPatchCmd creates the patch command
func NewPatchCmd(o *opts.RootOpts) *cobra.Command {
	var async bool

	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Replace dictionary words in the target files",
		Long: `Patch rewrites every file selected by the config targets.
It will:
1. Load the config and merge the dictionary files
2. Scan each file in its declared encoding
3. Write changed files in place, or every file into the destination
4. Print a summary table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "patch").Logger().WithContext(cmd.Context())

			job, err := o.Load(ctx)
			if err != nil {
				return err
			}
			if async {
				job.Config.Async = true
			}

			logger := o.Logger(cmd.ErrOrStderr())
			ctx = log.NewContext(ctx, logger)
			logger.Header(job.Config.String())
			if job.Config.Destination != "" {
				logger.Infof("writing into %s", job.Config.Destination)
			}

			op, err := operation.NewPatchOperation(operation.Options{
				Config:     job.Config,
				Dictionary: job.Dictionary,
				Logger:     logger,
			})
			if err != nil {
				return errors.Errorf("creating patch operation: %w", err)
			}

			if err := runOperation(ctx, "patch", op, job.Config.Async); err != nil {
				return errors.Errorf("patching files: %w", err)
			}

			results := op.Results()
			table, err := renderSummary(results, patchStatus)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)

			s := operation.Summarize(results)
			logger.Successf("%d replacements across %d of %d files", s.Replacements, s.Modified, s.Files)
			return nil
		},
	}

	cmd.Flags().BoolVar(&async, "async", false, "patch files in parallel")

	return cmd
}
