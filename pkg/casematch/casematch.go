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

// Package casematch detects the casing pattern of a word and reapplies it to
// another word. Only ASCII letters take part; every other byte is left alone.
package casematch

// 🔠 Pattern is the casing pattern of a source word
type Pattern int

const (
	Lowercase   Pattern = iota // first letter lowercase, or empty word
	Uppercase                  // no lowercase letter anywhere
	Capitalized                // uppercase first letter, at least one lowercase letter later
)

// String returns a string representation of Pattern
func (p Pattern) String() string {
	switch p {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Capitalized:
		return "capitalized"
	default:
		return "unknown"
	}
}

// 🔍 Classify returns the casing pattern of word.
//
// A word whose first byte is not an ASCII lowercase letter is Capitalized as
// soon as any later byte is lowercase, so "ThIs" is Capitalized. A single
// character word is never Capitalized.
func Classify(word string) Pattern {
	if word == "" || isLower(word[0]) {
		return Lowercase
	}
	for i := 1; i < len(word); i++ {
		if isLower(word[i]) {
			return Capitalized
		}
	}
	return Uppercase
}

// 🎨 Apply rewrites replacement so it follows p
func Apply(p Pattern, replacement string) string {
	switch p {
	case Uppercase:
		return toUpper(replacement)
	case Capitalized:
		if replacement == "" {
			return ""
		}
		buf := []byte(toLower(replacement))
		buf[0] = upper(buf[0])
		return string(buf)
	default:
		return toLower(replacement)
	}
}

// Match applies the casing pattern of word to replacement
func Match(word, replacement string) string {
	return Apply(Classify(word), replacement)
}

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

func upper(c byte) byte {
	if isLower(c) {
		return c - ('a' - 'A')
	}
	return c
}

func lower(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

func toUpper(s string) string {
	buf := []byte(s)
	for i, c := range buf {
		buf[i] = upper(c)
	}
	return string(buf)
}

func toLower(s string) string {
	buf := []byte(s)
	for i, c := range buf {
		buf[i] = lower(c)
	}
	return string(buf)
}
