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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/walteh/wordswap/pkg/text"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📖 LoadDictionaryFile reads a flat word -> replacement file. The format
// follows the extension: .yaml/.yml, .json or .hcl (one attribute per word).
func LoadDictionaryFile(ctx context.Context, path string) (text.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading dictionary file: %w", err)
	}

	var entries map[string]string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		entries, err = parseYAMLDictionary(data)
	case ".json":
		entries, err = parseJSONDictionary(data)
	case ".hcl":
		entries, err = parseHCLDictionary(data, path)
	default:
		return nil, errors.Errorf("unsupported dictionary extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	dict, err := text.NewDictionary(entries)
	if err != nil {
		return nil, errors.Errorf("building dictionary: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("entries", len(dict)).Msg("loaded dictionary file")

	return dict, nil
}

func parseYAMLDictionary(data []byte) (map[string]string, error) {
	entries := map[string]string{}
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&entries); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return entries, nil
}

func parseJSONDictionary(data []byte) (map[string]string, error) {
	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return entries, nil
}

func parseHCLDictionary(data []byte, filename string) (map[string]string, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	entries := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.Errorf("evaluating %s: %s", name, diags.Error())
		}
		str, err := convert.Convert(val, cty.String)
		if err != nil || str.IsNull() {
			return nil, errors.Errorf("%s: replacement must be a string", name)
		}
		entries[name] = str.AsString()
	}
	return entries, nil
}
