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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/wordswap/pkg/text"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, dir string, cfg *Config)
	}{
		{
			name:     "valid_yaml",
			filename: "job.yaml",
			config: `
root: assets
destination: out
async: true
dictionary:
  first: changed
  Another: something
dictionary_files:
  - words.yaml
targets:
  - include: "**/*.bytes"
    encoding: utf16le
    ignore:
      - "skip/**"
  - include: "*.txt"
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(dir, "assets"), cfg.Root, "root should be anchored to the config dir")
				assert.Equal(t, filepath.Join(dir, "out"), cfg.Destination, "destination should be anchored to the config dir")
				assert.True(t, cfg.Async, "async should be true")
				assert.Equal(t, map[string]string{"first": "changed", "Another": "something"}, cfg.Dictionary)
				assert.Equal(t, []string{filepath.Join(dir, "words.yaml")}, cfg.DictionaryFiles)
				require.Len(t, cfg.Targets, 2, "should have 2 targets")
				assert.Equal(t, "**/*.bytes", cfg.Targets[0].Include)
				assert.Equal(t, text.UTF16LE, cfg.Targets[0].TextEncoding())
				assert.Equal(t, []string{"skip/**"}, cfg.Targets[0].Ignore)
				assert.Equal(t, text.Auto, cfg.Targets[1].TextEncoding(), "missing encoding should mean auto")
			},
		},
		{
			name:     "valid_json",
			filename: "job.json",
			config: `{
				"dictionary": {"first": "changed"},
				"targets": [{"include": "data/*.bin", "encoding": "utf-16be"}]
			}`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, dir, cfg.Root, "root should default to the config dir")
				assert.Empty(t, cfg.Destination, "destination should be empty")
				require.Len(t, cfg.Targets, 1)
				assert.Equal(t, text.UTF16BE, cfg.Targets[0].TextEncoding())
			},
		},
		{
			name:     "valid_hcl",
			filename: "job.hcl",
			config: `
root  = "/abs/root"
async = true
dictionary = {
  first   = "changed"
  another = "something"
}

target "**/*.bytes" {
  encoding = "utf16le"
  ignore   = ["skip/**"]
}

target "*.txt" {}
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, "/abs/root", cfg.Root, "absolute root should be kept")
				assert.True(t, cfg.Async)
				assert.Equal(t, map[string]string{"first": "changed", "another": "something"}, cfg.Dictionary)
				require.Len(t, cfg.Targets, 2)
				assert.Equal(t, "**/*.bytes", cfg.Targets[0].Include)
				assert.Equal(t, text.UTF16LE, cfg.Targets[0].TextEncoding())
				assert.Equal(t, []string{"skip/**"}, cfg.Targets[0].Ignore)
				assert.Equal(t, "*.txt", cfg.Targets[1].Include)
			},
		},
		{
			name:     "unknown_yaml_field",
			filename: "job.yaml",
			config: `
dictionary: {first: changed}
targets: [{include: "*.txt"}]
provider: github
`,
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "missing_targets",
			filename:    "job.yaml",
			config:      "dictionary: {first: changed}\n",
			wantErr:     true,
			errContains: "at least one target is required",
		},
		{
			name:     "missing_include",
			filename: "job.yaml",
			config: `
dictionary: {first: changed}
targets: [{encoding: ascii}]
`,
			wantErr:     true,
			errContains: "targets[0].include is required",
		},
		{
			name:     "bad_encoding",
			filename: "job.yaml",
			config: `
dictionary: {first: changed}
targets: [{include: "*.txt", encoding: ebcdic}]
`,
			wantErr:     true,
			errContains: `targets[0].encoding: unknown encoding "ebcdic"`,
		},
		{
			name:     "bad_ignore_glob",
			filename: "job.yaml",
			config: `
dictionary: {first: changed}
targets: [{include: "*.txt", ignore: ["[oops"]}]
`,
			wantErr:     true,
			errContains: "targets[0].ignore: invalid glob",
		},
		{
			name:        "missing_dictionary",
			filename:    "job.yaml",
			config:      "targets: [{include: \"*.txt\"}]\n",
			wantErr:     true,
			errContains: "dictionary or dictionary_files is required",
		},
		{
			name:     "colliding_dictionary_keys",
			filename: "job.yaml",
			config: `
dictionary: {first: a, FIRST: b}
targets: [{include: "*.txt"}]
`,
			wantErr:     true,
			errContains: "collide",
		},
		{
			name:        "unsupported_extension",
			filename:    "job.toml",
			config:      "",
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	ctx := zerolog.New(os.Stderr).Level(zerolog.Disabled).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, tt.filename)
			err := os.WriteFile(configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file should succeed")

			cfg, err := Load(ctx, configPath)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			assert.Equal(t, configPath, cfg.Location())
			if tt.check != nil {
				tt.check(t, tmpDir, cfg)
			}
		})
	}
}

func TestLoadErrorsNameTheFile(t *testing.T) {
	tests := []struct {
		filename    string
		config      string
		errContains string
	}{
		{filename: "broken.hcl", config: "target \"*.txt\" {\n", errContains: "parsing HCL"},
		{filename: "broken.json", config: "{", errContains: "parsing JSON"},
		{filename: "broken.yaml", config: "targets: [", errContains: "parsing YAML"},
	}

	ctx := zerolog.New(os.Stderr).Level(zerolog.Disabled).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(configPath, []byte(tt.config), 0644))

			_, err := Load(ctx, configPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Contains(t, err.Error(), configPath, "diagnostics should point at the config file")
		})
	}
}

func TestParserSelection(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{filename: "job.yaml", want: &YAMLParser{}},
		{filename: "job.YML", want: &YAMLParser{}},
		{filename: "job.json", want: &JSONParser{}},
		{filename: "job.hcl", want: &HCLParser{}},
		{filename: "job.txt", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestBuildDictionary(t *testing.T) {
	tmpDir := t.TempDir()
	files := map[string]string{
		"base.yaml": "first: changed\nsmall: big\n",
		"more.json": `{"Another": "something", "small": "bigger"}`,
		"last.hcl":  "capital = \"toonice\"\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644))
	}

	cfg := &Config{
		Dictionary: map[string]string{"SMALL": "largest"},
		DictionaryFiles: []string{
			filepath.Join(tmpDir, "base.yaml"),
			filepath.Join(tmpDir, "more.json"),
			filepath.Join(tmpDir, "last.hcl"),
		},
	}

	dict, err := cfg.BuildDictionary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, text.Dictionary{
		"first":   "changed",
		"another": "something",
		"capital": "toonice",
		"small":   "largest",
	}, dict, "later sources should win and inline entries should win last")
}

func TestBuildDictionaryErrors(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "words.txt"), []byte("first=changed"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "bad.hcl"), []byte("first = [1, 2]\n"), 0644))

	tests := []struct {
		name        string
		cfg         *Config
		errContains string
	}{
		{
			name:        "missing_file",
			cfg:         &Config{DictionaryFiles: []string{filepath.Join(tmpDir, "nope.yaml")}},
			errContains: "reading dictionary file",
		},
		{
			name:        "unsupported_extension",
			cfg:         &Config{DictionaryFiles: []string{filepath.Join(tmpDir, "words.txt")}},
			errContains: "unsupported dictionary extension",
		},
		{
			name:        "non_string_hcl_value",
			cfg:         &Config{DictionaryFiles: []string{filepath.Join(tmpDir, "bad.hcl")}},
			errContains: "replacement must be a string",
		},
		{
			name:        "empty",
			cfg:         &Config{},
			errContains: "dictionary is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.BuildDictionary(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestTargetIgnored(t *testing.T) {
	target := Target{Include: "**/*.bytes", Ignore: []string{"skip/**", "*.tmp.bytes"}}

	assert.True(t, target.Ignored("skip/a/b.bytes"))
	assert.True(t, target.Ignored("x.tmp.bytes"))
	assert.False(t, target.Ignored("keep/a.bytes"))
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		Root:    "/data",
		Targets: []Target{{Include: "*.bin"}, {Include: "**/*.txt"}},
	}
	assert.Equal(t, "/data[*.bin,**/*.txt] -> in place", cfg.String())

	cfg.Destination = "/out"
	assert.Equal(t, "/data[*.bin,**/*.txt] -> /out", cfg.String())
}
