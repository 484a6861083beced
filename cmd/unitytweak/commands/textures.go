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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/unitytweak/cmd/unitytweak/opts"
	"github.com/walteh/unitytweak/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewTexturesCmd creates the texture compression command
func NewTexturesCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textures",
		Short: "Enable crunched compression on texture meta files",
		Long: `Textures walks the texture root and rewrites every meta file that
describes a texture importer, turning crunchedCompression on.
Files that are already compressed are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "textures").Logger().WithContext(cmd.Context())

			if err := opts.Run(ctx, operation.NewTextureOperation(opts.Operation())); err != nil {
				return errors.Errorf("optimizing textures: %w", err)
			}

			return nil
		},
	}

	return cmd
}
