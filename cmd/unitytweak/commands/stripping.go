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

// NewStrippingCmd creates the managed stripping level command
func NewStrippingCmd(opts *opts.RootOpts) *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "stripping",
		Short: "Set the managed stripping level in the project settings",
		Long: `Stripping replaces the empty managedStrippingLevel map in the project
settings with one entry per configured platform. Once set, running it again
reports that there is nothing to replace.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "stripping").Logger().WithContext(cmd.Context())

			if cmd.Flags().Changed("level") {
				opts.Config.Stripping.Level = level
				if err := opts.Config.Validate(); err != nil {
					return errors.Errorf("validating level: %w", err)
				}
			}

			if err := opts.Run(ctx, operation.NewStrippingOperation(opts.Operation())); err != nil {
				return errors.Errorf("updating stripping level: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 3, "stripping level (0 disabled, 1 low, 2 medium, 3 high, 4 minimal)")

	return cmd
}
