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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcOperation func(ctx context.Context) error

func (f funcOperation) Execute(ctx context.Context) error {
	return f(ctx)
}

func TestRunner(t *testing.T) {
	tests := []struct {
		name    string
		async   bool
		op      funcOperation
		cancel  bool
		wantErr string
	}{
		{
			name: "sync_success",
			op:   func(ctx context.Context) error { return nil },
		},
		{
			name:    "sync_error",
			op:      func(ctx context.Context) error { return assert.AnError },
			wantErr: "executing operation",
		},
		{
			name:  "async_success",
			async: true,
			op:    func(ctx context.Context) error { return nil },
		},
		{
			name:    "async_error",
			async:   true,
			op:      func(ctx context.Context) error { return assert.AnError },
			wantErr: "executing operation",
		},
		{
			name:   "async_cancelled",
			async:  true,
			cancel: true,
			op: func(ctx context.Context) error {
				time.Sleep(time.Second)
				return nil
			},
			wantErr: "operation cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(testContext())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			err := NewRunner(nil, tt.async).Run(ctx, tt.op)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
