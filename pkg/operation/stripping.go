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

	"github.com/rs/zerolog"
	"github.com/walteh/unitytweak/pkg/status"
)

// ✂️ NewStrippingOperation creates the managed stripping level updater
func NewStrippingOperation(opts Options) Operation {
	return &strippingOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// ✂️ strippingOperation fills the empty stripping level map in the project settings
type strippingOperation struct {
	BaseOperation
}

func (op *strippingOperation) Name() string {
	return "stripping"
}

// 🏃 Execute replaces the placeholder once; a second run finds nothing to do
func (op *strippingOperation) Execute(ctx context.Context) error {
	op.reset()

	args := op.Config.Stripping
	path := op.Config.Resolve(args.File)

	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := op.Files.ReadFile(ctx, path)
	if err != nil {
		if ferr := op.fail(ctx, path, err); ferr != nil {
			return ferr
		}
		return op.result()
	}

	result := args.Rewrite().Apply(content)
	if !result.MarkerFound {
		op.Logger.StrippingNotFound(args.Marker())
		op.Files.Track(ctx, status.FileInfo{Path: path, Status: status.StatusUnchanged, Reason: "marker not found"})
		return nil
	}

	if op.Config.Diff {
		op.Logger.Diff(path, result.Diff())
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Str("delta", result.Delta()).Int("replacements", result.ReplacementCount).Msg("rewriting stripping level")

	if err := op.Files.WriteFile(ctx, path, result.ModifiedContent); err != nil {
		if ferr := op.fail(ctx, path, err); ferr != nil {
			return ferr
		}
		return op.result()
	}

	op.Logger.StrippingUpdated(args.LevelName())
	op.Files.Track(ctx, status.FileInfo{Path: path, Status: status.StatusModified, Replacements: result.ReplacementCount})

	return nil
}
