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
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/wordswap/pkg/log"
	"github.com/walteh/wordswap/pkg/operation"
)

// runOperation runs op with the console logger carried in ctx and prints a
// failure line before handing the error back to cobra
func runOperation(ctx context.Context, name string, op operation.Operation, async bool) error {
	logger := log.FromContext(ctx)

	if err := operation.NewRunner(zerolog.Ctx(ctx), async).Run(ctx, op); err != nil {
		logger.Errorf("%s failed: %v", name, err)
		return err
	}

	logger.LogNewline()
	return nil
}
