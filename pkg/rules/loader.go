// Copyright 2025 the enhanced-word-live authors
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

package rules

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a rule file from the given path. The format is determined by
// the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
// The rule set is validated before it is returned.
func Load(ctx context.Context, path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading rule file: %w", err)
	}

	var rs *RuleSet
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		rs, err = loadJSON(data)
	case ".yaml", ".yml":
		rs, err = loadYAML(data)
	case ".hcl":
		rs, err = loadHCL(data, path)
	default:
		return nil, errors.Errorf("unsupported rule file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := rs.Validate(ctx); err != nil {
		return nil, errors.Errorf("validating rule file %s: %w", path, err)
	}
	return rs, nil
}

// loadJSON parses a rule set from JSON data.
func loadJSON(data []byte) (*RuleSet, error) {
	var rs RuleSet
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&rs); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &rs, nil
}

// loadYAML parses a rule set from YAML data.
func loadYAML(data []byte) (*RuleSet, error) {
	var rs RuleSet
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&rs); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &rs, nil
}

// loadHCL parses a rule set from HCL data.
func loadHCL(data []byte, filename string) (*RuleSet, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var rs RuleSet
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &rs)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}
	return &rs, nil
}
