// Package commands implements the querystyle CLI commands.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Apply adds the encode and build commands to root.
func Apply(root *cobra.Command) {
	root.AddCommand(NewEncodeCmd())
	root.AddCommand(NewBuildCmd())
}

// Logger returns a development logger when the inherited --verbose flag is set, and a
// no-op logger otherwise.
func Logger(cmd *cobra.Command) *zap.Logger {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil || !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
