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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/wordswap/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes, filename is used in diagnostics
	Parse(ctx context.Context, filename string, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🎯 Target selects files to patch and says how their text is encoded
type Target struct {
	Include  string   `json:"include" yaml:"include"`                       // Glob relative to the root
	Encoding string   `json:"encoding,omitempty" yaml:"encoding,omitempty"` // ascii, utf16le, utf16be or auto
	Ignore   []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`     // Globs excluded from Include
}

// TextEncoding returns the parsed encoding. Call after Validate.
func (t Target) TextEncoding() text.Encoding {
	enc, err := text.ParseEncoding(t.Encoding)
	if err != nil {
		return text.Auto
	}
	return enc
}

// Ignored reports whether rel matches one of the ignore globs
func (t Target) Ignored(rel string) bool {
	for _, pattern := range t.Ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// 📚 Config represents a patch job
type Config struct {
	Root            string            `json:"root,omitempty" yaml:"root,omitempty"`                         // Base directory for target globs
	Destination     string            `json:"destination,omitempty" yaml:"destination,omitempty"`           // Output directory, empty patches in place
	Async           bool              `json:"async,omitempty" yaml:"async,omitempty"`                       // Patch files in parallel
	Dictionary      map[string]string `json:"dictionary,omitempty" yaml:"dictionary,omitempty"`             // Inline word replacements
	DictionaryFiles []string          `json:"dictionary_files,omitempty" yaml:"dictionary_files,omitempty"` // Extra flat dictionary files
	Targets         []Target          `json:"targets" yaml:"targets"`                                       // Files to patch

	location string
}

// 🎯 Load loads the configuration from a file and resolves relative paths
// against the directory holding it.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, path, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg.location = path
	cfg.resolvePaths(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Str("root", cfg.Root).
		Int("targets", len(cfg.Targets)).
		Int("dictionary_files", len(cfg.DictionaryFiles)).
		Msg("configuration loaded")

	return cfg, nil
}

// Location returns the path the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

func (cfg *Config) resolvePaths(base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	if cfg.Root == "" {
		cfg.Root = base
	} else {
		cfg.Root = abs(cfg.Root)
	}
	cfg.Destination = abs(cfg.Destination)
	for i, f := range cfg.DictionaryFiles {
		cfg.DictionaryFiles[i] = abs(f)
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if len(cfg.Targets) == 0 {
		return errors.Errorf("at least one target is required")
	}

	for i, t := range cfg.Targets {
		if t.Include == "" {
			return errors.Errorf("targets[%d].include is required", i)
		}
		if !doublestar.ValidatePattern(t.Include) {
			return errors.Errorf("targets[%d].include: invalid glob %q", i, t.Include)
		}
		if _, err := text.ParseEncoding(t.Encoding); err != nil {
			return errors.Errorf("targets[%d].encoding: %w", i, err)
		}
		for _, pattern := range t.Ignore {
			if !doublestar.ValidatePattern(pattern) {
				return errors.Errorf("targets[%d].ignore: invalid glob %q", i, pattern)
			}
		}
	}

	if len(cfg.Dictionary) == 0 && len(cfg.DictionaryFiles) == 0 {
		return errors.Errorf("dictionary or dictionary_files is required")
	}

	if _, err := text.NewDictionary(cfg.Dictionary); err != nil {
		return errors.Errorf("dictionary: %w", err)
	}

	// Set defaults
	if cfg.Root == "" {
		cfg.Root = "."
	}
	cfg.Root = filepath.Clean(cfg.Root)
	if cfg.Destination != "" {
		cfg.Destination = filepath.Clean(cfg.Destination)
	}

	return nil
}

// 📖 BuildDictionary loads the dictionary files in order and overlays the
// inline dictionary on top of them.
func (cfg *Config) BuildDictionary(ctx context.Context) (text.Dictionary, error) {
	dict := text.Dictionary{}
	for _, path := range cfg.DictionaryFiles {
		entries, err := LoadDictionaryFile(ctx, path)
		if err != nil {
			return nil, errors.Errorf("loading dictionary file %s: %w", path, err)
		}
		dict = dict.Merge(entries)
	}

	inline, err := text.NewDictionary(cfg.Dictionary)
	if err != nil {
		return nil, errors.Errorf("dictionary: %w", err)
	}
	dict = dict.Merge(inline)

	if len(dict) == 0 {
		return nil, errors.Errorf("dictionary is empty")
	}

	zerolog.Ctx(ctx).Debug().Int("entries", len(dict)).Msg("dictionary ready")

	return dict, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	includes := make([]string, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		includes = append(includes, t.Include)
	}
	dest := cfg.Destination
	if dest == "" {
		dest = "in place"
	}
	return fmt.Sprintf("%s[%s] -> %s", cfg.Root, strings.Join(includes, ","), dest)
}
