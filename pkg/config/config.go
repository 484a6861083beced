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
	"github.com/walteh/unitytweak/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// Defaults target the standard project layout.
const (
	DefaultTexturesRoot      = "Assets/Asset game"
	DefaultTextureExtension  = ".meta"
	DefaultTextureMarker     = "TextureImporter:"
	DefaultStrippingFile     = "ProjectSettings/ProjectSettings.asset"
	DefaultStrippingKey      = "managedStrippingLevel"
	DefaultStrippingLevel    = 3
	strippingPlatformIndent  = "    "
	strippingEmptyMapLiteral = "{}"
)

// DefaultStrippingPlatforms are the platform keys written under the stripping key.
var DefaultStrippingPlatforms = []string{"Android", "Standalone"}

// strippingLevelNames follows Unity's ManagedStrippingLevel enum.
var strippingLevelNames = []string{"Disabled", "Low", "Medium", "High", "Minimal"}

// 🔄 Replacement is a literal rewrite applied to matching texture meta files
type Replacement struct {
	Old string `json:"old" yaml:"old" validate:"required"`
	New string `json:"new" yaml:"new"`
}

// 🖼️ TexturesArgs configures the texture compression toggle
type TexturesArgs struct {
	Root           string        `json:"root" yaml:"root" validate:"required"`
	Extension      string        `json:"extension" yaml:"extension" validate:"required,startswith=."`
	Marker         string        `json:"marker" yaml:"marker" validate:"required"`
	Replacements   []Replacement `json:"replacements" yaml:"replacements" validate:"min=1,dive"`
	IgnorePatterns []string      `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" validate:"dive,required"`
}

// ✂️ StrippingArgs configures the managed stripping level updater
type StrippingArgs struct {
	File      string   `json:"file" yaml:"file" validate:"required"`
	Key       string   `json:"key" yaml:"key" validate:"required"`
	Level     int      `json:"level" yaml:"level" validate:"min=0,max=4"`
	Platforms []string `json:"platforms" yaml:"platforms" validate:"min=1,dive,required"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Project         string        `json:"project,omitempty" yaml:"project,omitempty"`
	Textures        TexturesArgs  `json:"textures" yaml:"textures"`
	Stripping       StrippingArgs `json:"stripping" yaml:"stripping"`
	ContinueOnError bool          `json:"continue_on_error,omitempty" yaml:"continue_on_error,omitempty"`
	DryRun          bool          `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Backup          bool          `json:"backup,omitempty" yaml:"backup,omitempty"`
	Async           bool          `json:"async,omitempty" yaml:"async,omitempty"`
	Diff            bool          `json:"diff,omitempty" yaml:"diff,omitempty"`
	Summary         bool          `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// 🏭 Default returns the configuration the tool runs with when no file is given
func Default() *Config {
	return &Config{
		Textures: TexturesArgs{
			Root:      DefaultTexturesRoot,
			Extension: DefaultTextureExtension,
			Marker:    DefaultTextureMarker,
			Replacements: []Replacement{
				{Old: "crunchedCompression: 0", New: "crunchedCompression: 1"},
			},
		},
		Stripping: StrippingArgs{
			File:      DefaultStrippingFile,
			Key:       DefaultStrippingKey,
			Level:     DefaultStrippingLevel,
			Platforms: append([]string(nil), DefaultStrippingPlatforms...),
		},
	}
}

// 🎯 Load reads the configuration at path over the defaults.
// An empty path skips the file and only applies environment overrides.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	cfg := Default()

	if path != "" {
		logger.Debug().Str("path", path).Msg("loading configuration")

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Errorf("reading config file: %w", err)
		}

		p := GetParser(path)
		if p == nil {
			return nil, errors.Errorf("no parser found for file: %s", path)
		}

		if err := p.Parse(ctx, data, cfg); err != nil {
			return nil, errors.Errorf("parsing config: %w", err)
		}
	}

	if err := ApplyEnv(ctx, cfg); err != nil {
		return nil, errors.Errorf("applying environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and normalizes its paths
func (cfg *Config) Validate() error {
	if err := validateStruct(cfg); err != nil {
		return err
	}

	if err := text.ValidateRules(cfg.Textures.Rewrite().Rules); err != nil {
		return errors.Errorf("textures.replacements: %w", err)
	}

	for i, pattern := range cfg.Textures.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("textures.ignore_patterns[%d]: invalid pattern %q", i, pattern)
		}
	}

	if cfg.Project != "" {
		cfg.Project = filepath.Clean(cfg.Project)
	}
	cfg.Textures.Root = filepath.Clean(cfg.Textures.Root)
	cfg.Stripping.File = filepath.Clean(cfg.Stripping.File)

	return nil
}

// Resolve joins a relative path onto the project directory.
func (cfg *Config) Resolve(path string) string {
	if cfg.Project == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.Project, path)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	project := cfg.Project
	if project == "" {
		project = "."
	}
	return fmt.Sprintf("%s: textures=%s%s stripping=%s@%d", project, cfg.Textures.Root, cfg.Textures.Extension, cfg.Stripping.File, cfg.Stripping.Level)
}

// Rewrite builds the gated rewrite for texture meta files.
func (t TexturesArgs) Rewrite() text.Rewrite {
	rules := make([]text.ReplacementRule, 0, len(t.Replacements))
	for _, r := range t.Replacements {
		rules = append(rules, text.ReplacementRule{FromText: r.Old, ToText: r.New})
	}
	return text.Rewrite{Marker: t.Marker, Rules: rules}
}

// Marker is the empty-map placeholder that gets replaced, e.g. "managedStrippingLevel: {}".
func (s StrippingArgs) Marker() string {
	return s.Key + ": " + strippingEmptyMapLiteral
}

// Block is the per-platform mapping written in place of the marker.
func (s StrippingArgs) Block() string {
	var b strings.Builder
	b.WriteString(s.Key)
	b.WriteString(":")
	for _, platform := range s.Platforms {
		fmt.Fprintf(&b, "\n%s%s: %d", strippingPlatformIndent, platform, s.Level)
	}
	return b.String()
}

// LevelName is the editor-facing name of the configured level.
func (s StrippingArgs) LevelName() string {
	if s.Level < 0 || s.Level >= len(strippingLevelNames) {
		return fmt.Sprintf("%d", s.Level)
	}
	return strippingLevelNames[s.Level]
}

// Rewrite builds the gated rewrite for the project settings file.
func (s StrippingArgs) Rewrite() text.Rewrite {
	marker := s.Marker()
	return text.Rewrite{
		Marker: marker,
		Rules:  []text.ReplacementRule{{FromText: marker, ToText: s.Block()}},
	}
}
