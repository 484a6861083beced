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

package operation

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/unitytweak/pkg/status"
	"github.com/walteh/unitytweak/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🖼️ NewTextureOperation creates the texture compression toggle
func NewTextureOperation(opts Options) Operation {
	return &textureOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 🖼️ textureOperation rewrites every texture importer meta file under the root
type textureOperation struct {
	BaseOperation
}

func (op *textureOperation) Name() string {
	return "textures"
}

// 🏃 Execute walks the root in lexical order and rewrites matching files
func (op *textureOperation) Execute(ctx context.Context) error {
	op.reset()

	args := op.Config.Textures
	root := op.Config.Resolve(args.Root)
	rewrite := args.Rewrite()
	logger := zerolog.Ctx(ctx).With().Str("operation", op.Name()).Str("root", root).Logger()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			// A missing root is an empty scan, not a failure.
			if path == root && errors.Is(walkErr, fs.ErrNotExist) {
				logger.Warn().Msg("texture root does not exist, nothing to scan")
				return nil
			}
			return op.fail(ctx, path, errors.Errorf("walking: %w", walkErr))
		}

		rel := op.relative(root, path)

		if d.IsDir() {
			if path != root && op.shouldIgnore(logger, rel) {
				return fs.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), args.Extension) {
			return nil
		}

		if op.shouldIgnore(logger, rel) {
			op.Files.Track(ctx, status.FileInfo{Path: path, Status: status.StatusSkipped, Reason: "ignored by pattern"})
			return nil
		}

		if err := op.processFile(ctx, path, rewrite); err != nil {
			return op.fail(ctx, path, err)
		}
		return nil
	})
	if err != nil {
		return errors.Errorf("scanning %s: %w", root, err)
	}

	return op.result()
}

// 📄 processFile reads, rewrites and writes back a single meta file
func (op *textureOperation) processFile(ctx context.Context, path string, rewrite text.Rewrite) error {
	content, err := op.Files.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	result := rewrite.Apply(content)
	if !result.WasModified {
		reason := "nothing to replace"
		if !result.MarkerFound {
			reason = "marker not found"
		}
		op.Files.Track(ctx, status.FileInfo{Path: path, Status: status.StatusUnchanged, Reason: reason})
		return nil
	}

	op.Logger.Optimizing(path)
	if op.Config.Diff {
		op.Logger.Diff(path, result.Diff())
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Str("delta", result.Delta()).Int("replacements", result.ReplacementCount).Msg("rewriting texture meta")

	if err := op.Files.WriteFile(ctx, path, result.ModifiedContent); err != nil {
		return err
	}

	op.Files.Track(ctx, status.FileInfo{Path: path, Status: status.StatusModified, Replacements: result.ReplacementCount})
	return nil
}

// relative returns path relative to root with forward slashes, for pattern matching.
func (op *textureOperation) relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// 🔍 shouldIgnore checks if a path relative to the root should be ignored
func (op *textureOperation) shouldIgnore(logger zerolog.Logger, rel string) bool {
	for _, pattern := range op.Config.Textures.IgnorePatterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("path", rel).Str("pattern", pattern).Msg("ignored by pattern")
			return true
		}
	}
	return false
}
