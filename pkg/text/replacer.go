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
	"bytes"
	"context"
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ReplacementResult contains the results of a replacement pass
type ReplacementResult struct {
	// Encoding is the encoding the content was scanned with, never Auto
	Encoding Encoding

	// WasModified indicates if the content changed
	WasModified bool

	// ReplacementCount is the number of words found in the dictionary,
	// including those whose replacement equals the original
	ReplacementCount uint64

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for dictionary replacement
type TextReplacer interface {
	// ReplaceContent reads all of content and swaps dictionary words in it
	ReplaceContent(ctx context.Context, content io.Reader, enc Encoding) (*ReplacementResult, error)
}

// DictionaryReplacer implements TextReplacer on top of a Dictionary
type DictionaryReplacer struct {
	dict Dictionary
}

var _ TextReplacer = (*DictionaryReplacer)(nil)

// NewDictionaryReplacer creates a new DictionaryReplacer
func NewDictionaryReplacer(dict Dictionary) *DictionaryReplacer {
	return &DictionaryReplacer{dict: dict}
}

// ReplaceContent implements TextReplacer.ReplaceContent
func (r *DictionaryReplacer) ReplaceContent(ctx context.Context, content io.Reader, enc Encoding) (*ReplacementResult, error) {
	original, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	return r.ReplaceBytes(ctx, original, enc)
}

// ReplaceBytes is ReplaceContent for content already in memory
func (r *DictionaryReplacer) ReplaceBytes(ctx context.Context, original []byte, enc Encoding) (*ReplacementResult, error) {
	resolved := enc.resolve(original)
	count, modified, err := Replace(r.dict, resolved, original)
	if err != nil {
		return nil, errors.Errorf("replacing content: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Stringer("encoding", resolved).
		Int("size", len(original)).
		Int("new_size", len(modified)).
		Uint64("replacements", count).
		Msg("replaced content")

	return &ReplacementResult{
		Encoding:         resolved,
		WasModified:      !bytes.Equal(original, modified),
		ReplacementCount: count,
		OriginalContent:  original,
		ModifiedContent:  modified,
	}, nil
}
