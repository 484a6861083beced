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

	"github.com/walteh/unitytweak/pkg/config"
	"github.com/walteh/unitytweak/pkg/log"
	"github.com/walteh/unitytweak/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is one self-contained rewrite over the project
type Operation interface {
	// Name identifies the operation in logs and errors
	Name() string
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains what every operation needs
type Options struct {
	Config *config.Config
	Files  status.Store
	Logger *log.Logger
}

// 🧱 BaseOperation carries the options and the per-file failure policy
type BaseOperation struct {
	Options
	failures []error
}

// 🏭 NewBaseOperation creates the shared part of an operation
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{Options: opts}
}

// fail records a per-file error. It returns the error to abort with, or nil
// when ContinueOnError lets the run go on.
func (op *BaseOperation) fail(ctx context.Context, path string, err error) error {
	op.Files.Track(ctx, status.FileInfo{Path: path, Status: status.StatusFailed, Error: err})

	if !op.Config.ContinueOnError {
		return errors.Errorf("processing %s: %w", path, err)
	}

	op.Logger.Failed(path, err)
	op.failures = append(op.failures, errors.Errorf("%s: %w", path, err))
	return nil
}

// result folds collected failures into the error Execute returns.
func (op *BaseOperation) result() error {
	if len(op.failures) == 0 {
		return nil
	}
	return errors.Errorf("%d file(s) failed: %w", len(op.failures), errors.Join(op.failures...))
}

func (op *BaseOperation) reset() {
	op.failures = nil
}
