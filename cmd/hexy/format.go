package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.codycody31.dev/hexcons"
)

func (a *app) formatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <hex>",
		Short: "Re-render hex with the formatting flags",
		Long:  "Decode hex, with or without a 0x prefix, and render it again using --case, --prefix, --width and the other formatting flags.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := hexcons.DecodeMaybePrefixed(args[0])
			if err != nil {
				return fmt.Errorf("failed to decode input: %w", err)
			}
			opts, err := a.options()
			if err != nil {
				return err
			}
			if a.v.GetBool("quote") {
				debug := hexcons.DebugOptions()
				debug.Width, debug.Fill, debug.Align = opts.Width, opts.Fill, opts.Align
				debug.Reverse = opts.Reverse
				debug.Precision, debug.HasPrecision = opts.Precision, opts.HasPrecision
				opts = debug
			}
			return a.render(b, opts)
		},
	}
	cmd.Flags().Bool("quote", false, "print the quoted lower case debug form")
	return cmd
}
