package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

var errInvalidRecipeName = zerr.New("Invalid recipe name")

func (c *CLI) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Clean up a handwritten recipe name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleaned, ok := c.app.CleanName(strings.Join(args, " "))
			if !ok {
				return zerr.With(errInvalidRecipeName, "input", strings.Join(args, " "))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cleaned)
			return err
		},
	}
}
