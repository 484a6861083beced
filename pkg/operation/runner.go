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
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 OperationRunner executes operations
type OperationRunner struct {
	logger *zerolog.Logger
	async  bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger, async bool) *OperationRunner {
	return &OperationRunner{
		logger: logger,
		async:  async,
	}
}

// 🏃 Run executes the operations, stopping at the first error
func (r *OperationRunner) Run(ctx context.Context, ops ...Operation) error {
	if r.async && len(ops) > 1 {
		return r.runAsync(ctx, ops)
	}
	return r.runSync(ctx, ops)
}

// 🔄 runSync runs operations one after another
func (r *OperationRunner) runSync(ctx context.Context, ops []Operation) error {
	for _, op := range ops {
		if err := r.execute(ctx, op); err != nil {
			return err
		}
	}
	return nil
}

// ⚡ runAsync runs operations concurrently; the first failure cancels the rest.
// Files within one operation are still processed sequentially.
func (r *OperationRunner) runAsync(ctx context.Context, ops []Operation) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, op := range ops {
		g.Go(func() error {
			return r.execute(gctx, op)
		})
	}
	return g.Wait()
}

func (r *OperationRunner) execute(ctx context.Context, op Operation) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("operation %s cancelled: %w", op.Name(), err)
	}

	r.logger.Debug().Str("operation", op.Name()).Msg("running operation")
	if err := op.Execute(ctx); err != nil {
		return errors.Errorf("running %s: %w", op.Name(), err)
	}
	r.logger.Debug().Str("operation", op.Name()).Msg("operation complete")

	return nil
}
