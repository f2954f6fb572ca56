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

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDictionary(t *testing.T) {
	tests := []struct {
		name      string
		entries   map[string]string
		want      Dictionary
		wantError string
	}{
		{
			name:    "lowercases_keys",
			entries: map[string]string{"First": "changed", "ANOTHER": "Something"},
			want:    Dictionary{"first": "changed", "another": "Something"},
		},
		{
			name:    "empty_dictionary",
			entries: map[string]string{},
			want:    Dictionary{},
		},
		{
			name:      "colliding_keys",
			entries:   map[string]string{"first": "a", "FIRST": "b"},
			wantError: `dictionary keys "FIRST" and "first" collide as "first"`,
		},
		{
			name:      "empty_key",
			entries:   map[string]string{"": "nothing"},
			wantError: "dictionary key is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDictionary(tt.entries)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDictionaryLookup(t *testing.T) {
	dict := Dictionary{"first": "changed"}

	for _, word := range []string{"first", "First", "FIRST", "fIrSt"} {
		value, ok := dict.Lookup(word)
		assert.True(t, ok, "%q should be found", word)
		assert.Equal(t, "changed", value)
	}

	_, ok := dict.Lookup("firsts")
	assert.False(t, ok)
}

func TestDictionaryMerge(t *testing.T) {
	base := Dictionary{"first": "changed", "small": "big"}
	merged := base.Merge(Dictionary{"SMALL": "huge", "other": "thing"})

	assert.Equal(t, Dictionary{"first": "changed", "small": "huge", "other": "thing"}, merged)
	assert.Equal(t, "big", base["small"], "merge should not touch the receiver")
}
