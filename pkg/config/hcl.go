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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL.
//
//	root        = "assets"
//	destination = "out"
//	dictionary = {
//	  first = "changed"
//	}
//	target "**/*.bytes" {
//	  encoding = "utf16le"
//	  ignore   = ["skip/**"]
//	}
func (p *HCLParser) Parse(ctx context.Context, filename string, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclConfig struct {
		Root            string            `hcl:"root,optional"`
		Destination     string            `hcl:"destination,optional"`
		Async           bool              `hcl:"async,optional"`
		Dictionary      map[string]string `hcl:"dictionary,optional"`
		DictionaryFiles []string          `hcl:"dictionary_files,optional"`
		Targets         []struct {
			Include  string   `hcl:"include,label"`
			Encoding string   `hcl:"encoding,optional"`
			Ignore   []string `hcl:"ignore,optional"`
		} `hcl:"target,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Root:            hclCfg.Root,
		Destination:     hclCfg.Destination,
		Async:           hclCfg.Async,
		Dictionary:      hclCfg.Dictionary,
		DictionaryFiles: hclCfg.DictionaryFiles,
	}
	for _, t := range hclCfg.Targets {
		cfg.Targets = append(cfg.Targets, Target{
			Include:  t.Include,
			Encoding: t.Encoding,
			Ignore:   t.Ignore,
		})
	}

	return cfg, nil
}
