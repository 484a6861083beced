package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/unitytweak/cmd/unitytweak/opts"
	"github.com/walteh/unitytweak/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewAllCmd creates a command running every optimization
func NewAllCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run the texture and stripping optimizations",
		Long: `All runs the texture compression toggle followed by the stripping level
update. With --async both run at the same time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "all").Logger().WithContext(cmd.Context())

			ops := []operation.Operation{
				operation.NewTextureOperation(opts.Operation()),
				operation.NewStrippingOperation(opts.Operation()),
			}

			if err := opts.Run(ctx, ops...); err != nil {
				return errors.Errorf("optimizing project: %w", err)
			}

			return nil
		},
	}

	return cmd
}
