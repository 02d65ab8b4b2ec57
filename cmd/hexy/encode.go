package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go.codycody31.dev/hexcons"
)

func (a *app) encodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text as hex",
		Long:  "Encode the arguments, joined by single spaces, or standard input when there are none.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}

			var src []byte
			if len(args) > 0 {
				src = []byte(strings.Join(args, " "))
			} else {
				src, err = io.ReadAll(a.in)
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
			}
			return a.render(src, opts)
		},
	}
}

// render writes src as hex followed by a newline.
func (a *app) render(src []byte, opts hexcons.Options) error {
	a.logger.Debug("rendering",
		zap.Int("bytes", len(src)),
		zap.Stringer("case", opts.Case),
		zap.Stringer("align", opts.Align),
		zap.Int("width", opts.Width),
	)
	if _, err := hexcons.WriteHex(a.out, src, opts); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := io.WriteString(a.out, "\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
