package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"go.codycody31.dev/hexcons"
)

// record is the structured form of a decoded value.
type record struct {
	Hex   hexcons.Bytes `json:"hex" yaml:"hex"`
	Bytes int           `json:"bytes" yaml:"bytes"`
}

func (a *app) decodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode hex into bytes",
		Long: `Decode hex into bytes. With the default text output the raw bytes are
written as they are; json and yaml print the normalized hex and the byte count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.decode(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("decoded", zap.Int("bytes", len(b)))
			return a.writeDecoded(b)
		},
	}

	f := cmd.Flags()
	f.Bool("strip-prefix", false, "accept an optional 0x or 0X prefix")
	f.Int("fixed", 0, "require exactly this many bytes")
	f.StringP("output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func (a *app) decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	strip := a.v.GetBool("strip-prefix")

	if n := a.v.GetInt("fixed"); n != 0 {
		if n < 0 {
			return nil, fmt.Errorf("fixed must be positive, got %d", n)
		}
		if strip {
			s = trimPrefix(s)
		}
		dst := make([]byte, n)
		if err := hexcons.DecodeFixed(dst, s); err != nil {
			return nil, fmt.Errorf("failed to decode input: %w", err)
		}
		return dst, nil
	}

	decode := hexcons.DecodeString
	if strip {
		decode = hexcons.DecodeMaybePrefixed
	}
	b, err := decode(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	return b, nil
}

func trimPrefix(s string) string {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return rest
	}
	rest, _ := strings.CutPrefix(s, "0X")
	return rest
}

func (a *app) writeDecoded(b []byte) error {
	rec := record{Hex: b, Bytes: len(b)}
	switch format := a.v.GetString("output"); format {
	case "text":
		_, err := a.out.Write(b)
		return err
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q, want text, json or yaml", format)
	}
}
