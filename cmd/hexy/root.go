package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.codycody31.dev/hexcons"
)

const envPrefix = "HEXY"

type app struct {
	v      *viper.Viper
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	logger *zap.Logger
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	logger, err := newLogger(errOut, "warn")
	if err != nil {
		logger = zap.NewNop()
	}
	return &app{
		v:      viper.New(),
		in:     in,
		out:    out,
		errOut: errOut,
		logger: logger,
	}
}

// newLogger writes human readable logs to w at the given level.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core).Named("hexy"), nil
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "hexy",
		Short: "Encode, decode and format hex",
		Long: `hexy converts between bytes and hex text.

Every flag can also be set through the environment, prefixed with HEXY_ and
with dashes turned into underscores (HEXY_CASE=upper, HEXY_LOG_LEVEL=debug),
or through a config file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, json or toml)")
	pf.String("log-level", "warn", "logging level")
	pf.BoolP("verbose", "v", false, "log at debug level")

	// rendering
	pf.Var(new(caseValue), "case", "letter case of the digits: lower or upper")
	pf.Bool("prefix", false, "prepend 0x, or 0X in upper case")
	pf.Int("width", 0, "minimum width of the output in characters")
	pf.String("fill", " ", "character used to pad to --width")
	pf.Var(new(alignValue), "align", "position within --width: left, right or center")
	pf.Int("precision", -1, "maximum number of hex digits, negative for all")
	pf.Bool("reverse", false, "render the bytes in reverse order")

	root.AddCommand(a.encodeCommand(), a.decodeCommand(), a.formatCommand())
	return root
}

// setup merges flags, environment and config file, then builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	level := a.v.GetString("log-level")
	if a.v.GetBool("verbose") {
		level = "debug"
	}
	logger, err := newLogger(a.errOut, level)
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))
	a.logger.Debug("configuration loaded", zap.String("config", a.v.ConfigFileUsed()))
	return nil
}

// options builds the rendering options from the merged configuration.
func (a *app) options() (hexcons.Options, error) {
	c, err := hexcons.ParseCase(a.v.GetString("case"))
	if err != nil {
		return hexcons.Options{}, err
	}
	align, err := hexcons.ParseAlign(a.v.GetString("align"))
	if err != nil {
		return hexcons.Options{}, err
	}
	fill, err := parseFill(a.v.GetString("fill"))
	if err != nil {
		return hexcons.Options{}, err
	}
	width := a.v.GetInt("width")
	if width < 0 {
		return hexcons.Options{}, fmt.Errorf("width must not be negative, got %d", width)
	}

	o := hexcons.Options{
		Case:    c,
		Prefix:  a.v.GetBool("prefix"),
		Width:   width,
		Fill:    fill,
		Align:   align,
		Reverse: a.v.GetBool("reverse"),
	}
	if p := a.v.GetInt("precision"); p >= 0 {
		o.Precision, o.HasPrecision = p, true
	}
	return o, nil
}
