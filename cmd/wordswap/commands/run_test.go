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
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/wordswap/pkg/log"
)

type funcOperation func(ctx context.Context) error

func (f funcOperation) Execute(ctx context.Context) error {
	return f(ctx)
}

func TestRunOperation(t *testing.T) {
	tests := []struct {
		name    string
		async   bool
		err     error
		wantOut string
	}{
		{name: "sync_success", wantOut: "\n"},
		{name: "async_success", async: true, wantOut: "\n"},
		{name: "sync_failure", err: assert.AnError, wantOut: "patch failed: executing operation"},
		{name: "async_failure", async: true, err: assert.AnError, wantOut: "patch failed: executing operation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := &bytes.Buffer{}
			ctx := log.NewContext(context.Background(), log.New(console, zerolog.Disabled))

			called := false
			op := funcOperation(func(ctx context.Context) error {
				called = true
				return tt.err
			})

			err := runOperation(ctx, "patch", op, tt.async)
			assert.True(t, called)
			assert.Contains(t, console.String(), tt.wantOut)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Contains(t, console.String(), "❌")
				return
			}
			require.NoError(t, err)
		})
	}
}
