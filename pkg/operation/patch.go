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

	"github.com/walteh/wordswap/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🩹 PatchOperation rewrites every selected file with its replacements
type PatchOperation struct {
	*baseOperation
}

var _ Operation = (*PatchOperation)(nil)

// 🏭 NewPatchOperation creates a new patch operation
func NewPatchOperation(opts Options) (*PatchOperation, error) {
	base, err := newBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &PatchOperation{baseOperation: base}, nil
}

// 🏃 Execute runs the patch operation
func (op *PatchOperation) Execute(ctx context.Context) error {
	return op.each(ctx, op.patchFile)
}

// 📄 patchFile patches a single file. Unchanged files are only written when
// a destination directory is set, so the output tree is complete.
func (op *PatchOperation) patchFile(ctx context.Context, t config.Target, rel string) error {
	result, perm, err := op.replaceFile(ctx, t, rel)
	if err != nil {
		return err
	}

	dest := op.destinationPath(rel)
	write := result.WasModified || op.opts.Config.Destination != ""
	if write {
		if err := op.store.WriteFileAtomic(ctx, dest, result.ModifiedContent, perm); err != nil {
			return errors.Errorf("writing %s: %w", dest, err)
		}
	}

	status := ""
	if !write {
		status = "unchanged"
	}

	op.record(ctx, FileResult{
		Path:         rel,
		Destination:  dest,
		Encoding:     result.Encoding,
		Replacements: result.ReplacementCount,
		Modified:     result.WasModified,
		Written:      write,
	}, status)

	return nil
}
