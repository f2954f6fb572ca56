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
	"maps"
	"slices"

	"github.com/walteh/wordswap/pkg/casematch"
	"gitlab.com/tozd/go/errors"
)

// 📖 Dictionary maps a lowercase source word to its replacement.
//
// Build one with NewDictionary so keys are normalized. A Dictionary is never
// written to by the replacers and can be shared between goroutines.
type Dictionary map[string]string

// 🏭 NewDictionary lowercases the keys of entries and rejects empty keys and
// keys that collide once lowercased.
func NewDictionary(entries map[string]string) (Dictionary, error) {
	dict := make(Dictionary, len(entries))
	seen := make(map[string]string, len(entries))
	for _, key := range slices.Sorted(maps.Keys(entries)) {
		if key == "" {
			return nil, errors.New("dictionary key is empty")
		}
		norm := normalize(key)
		if prev, ok := seen[norm]; ok {
			return nil, errors.Errorf("dictionary keys %q and %q collide as %q", prev, key, norm)
		}
		seen[norm] = key
		dict[norm] = entries[key]
	}
	return dict, nil
}

// Lookup returns the replacement for word, ignoring ASCII case.
func (d Dictionary) Lookup(word string) (string, bool) {
	value, ok := d[normalize(word)]
	return value, ok
}

// Merge returns a new Dictionary holding d overlaid with other.
func (d Dictionary) Merge(other Dictionary) Dictionary {
	merged := make(Dictionary, len(d)+len(other))
	maps.Copy(merged, d)
	for key, value := range other {
		merged[normalize(key)] = value
	}
	return merged
}

func normalize(word string) string {
	return casematch.Apply(casematch.Lowercase, word)
}
