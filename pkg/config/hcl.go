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

type hclReplacement struct {
	Old string `hcl:"old"`
	New string `hcl:"new"`
}

type hclTextures struct {
	Root           *string          `hcl:"root,optional"`
	Extension      *string          `hcl:"extension,optional"`
	Marker         *string          `hcl:"marker,optional"`
	Replacements   []hclReplacement `hcl:"replacement,block"`
	IgnorePatterns []string         `hcl:"ignore_patterns,optional"`
}

type hclStripping struct {
	File      *string  `hcl:"file,optional"`
	Key       *string  `hcl:"key,optional"`
	Level     *int     `hcl:"level,optional"`
	Platforms []string `hcl:"platforms,optional"`
}

type hclConfig struct {
	Project         *string       `hcl:"project,optional"`
	Textures        *hclTextures  `hcl:"textures,block"`
	Stripping       *hclStripping `hcl:"stripping,block"`
	ContinueOnError *bool         `hcl:"continue_on_error,optional"`
	DryRun          *bool         `hcl:"dry_run,optional"`
	Backup          *bool         `hcl:"backup,optional"`
	Async           *bool         `hcl:"async,optional"`
	Diff            *bool         `hcl:"diff,optional"`
	Summary         *bool         `hcl:"summary,optional"`
}

// 📝 Parse decodes HCL over cfg
func (p *HCLParser) Parse(ctx context.Context, data []byte, cfg *Config) error {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return errors.Errorf("decoding HCL: %s", diags.Error())
	}

	setString(&cfg.Project, hclCfg.Project)
	setBool(&cfg.ContinueOnError, hclCfg.ContinueOnError)
	setBool(&cfg.DryRun, hclCfg.DryRun)
	setBool(&cfg.Backup, hclCfg.Backup)
	setBool(&cfg.Async, hclCfg.Async)
	setBool(&cfg.Diff, hclCfg.Diff)
	setBool(&cfg.Summary, hclCfg.Summary)

	if t := hclCfg.Textures; t != nil {
		setString(&cfg.Textures.Root, t.Root)
		setString(&cfg.Textures.Extension, t.Extension)
		setString(&cfg.Textures.Marker, t.Marker)
		if len(t.Replacements) > 0 {
			cfg.Textures.Replacements = make([]Replacement, 0, len(t.Replacements))
			for _, r := range t.Replacements {
				cfg.Textures.Replacements = append(cfg.Textures.Replacements, Replacement{Old: r.Old, New: r.New})
			}
		}
		if t.IgnorePatterns != nil {
			cfg.Textures.IgnorePatterns = t.IgnorePatterns
		}
	}

	if s := hclCfg.Stripping; s != nil {
		setString(&cfg.Stripping.File, s.File)
		setString(&cfg.Stripping.Key, s.Key)
		if s.Level != nil {
			cfg.Stripping.Level = *s.Level
		}
		if s.Platforms != nil {
			cfg.Stripping.Platforms = s.Platforms
		}
	}

	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
