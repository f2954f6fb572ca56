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

package operation

import (
	"context"
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/walteh/wordswap/pkg/config"
	"github.com/walteh/wordswap/pkg/text"
)

// 🔍 CheckOperation reports what a patch would do without writing anything
type CheckOperation struct {
	*baseOperation
}

var _ Operation = (*CheckOperation)(nil)

// 🏭 NewCheckOperation creates a new check operation
func NewCheckOperation(opts Options) (*CheckOperation, error) {
	base, err := newBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &CheckOperation{baseOperation: base}, nil
}

// 🏃 Execute runs the check operation
func (op *CheckOperation) Execute(ctx context.Context) error {
	return op.each(ctx, op.checkFile)
}

func (op *CheckOperation) checkFile(ctx context.Context, t config.Target, rel string) error {
	result, _, err := op.replaceFile(ctx, t, rel)
	if err != nil {
		return err
	}

	r := FileResult{
		Path:         rel,
		Destination:  op.destinationPath(rel),
		Encoding:     result.Encoding,
		Replacements: result.ReplacementCount,
		Modified:     result.WasModified,
	}
	if op.opts.Diff && result.WasModified {
		r.Diff = textDiff(result)
	}

	status := "unchanged"
	if result.WasModified {
		status = fmt.Sprintf("%d to replace", result.ReplacementCount)
	}
	op.record(ctx, r, status)

	return nil
}

// textDiff renders the decoded before and after text as a colored diff
func textDiff(result *text.ReplacementResult) string {
	before := text.Decode(result.Encoding, result.OriginalContent)
	after := text.Decode(result.Encoding, result.ModifiedContent)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
