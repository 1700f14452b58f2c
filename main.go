// novafetch prints facts about the host beside a distribution logo.
//
// Usage:
//
//	novafetch [flags]
//
// Flags:
//
//	--logo string     Logo to draw instead of the detected distribution
//	--no-color        Disable all colour output (also honours NO_COLOR)
//	--config string   Path to configuration file (default: $XDG_CONFIG_HOME/novafetch/config.toml)
//	--json            Print the collected facts as JSON
//	-v, --verbose     Log probe failures to stderr
//	--version         Print version and exit
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/novafetch/novafetch/pkg/banner"
	"github.com/novafetch/novafetch/pkg/collectors"
	"github.com/novafetch/novafetch/pkg/config"
	"github.com/novafetch/novafetch/pkg/image"
	"github.com/novafetch/novafetch/pkg/layout"
	"github.com/novafetch/novafetch/pkg/logo"
	"github.com/novafetch/novafetch/pkg/sysinfo"
	"github.com/novafetch/novafetch/pkg/terminal"
	"github.com/novafetch/novafetch/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// errNotTerminal is returned when an image logo is requested but stdout
// is not a terminal.
var errNotTerminal = errors.New("stdout is not a terminal")

type options struct {
	logo       string
	noColor    bool
	configPath string
	json       bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "novafetch",
		Short: "Show system information beside a distribution logo",
		Long: `novafetch collects facts about this machine (OS, kernel, CPU, GPU,
memory, disks, uptime, packages, ...) and prints them next to a coloured
logo. Modules and their order come from the "layout" list of the config file.

Logos: ` + strings.Join(logo.Names(), ", "),
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
			run(cmd.Context(), cmd.OutOrStdout(), opts)
			return nil
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("novafetch %s (commit: %s, built: %s)\n", version, commit, date))

	f := cmd.Flags()
	f.StringVar(&opts.logo, "logo", "", "logo to draw instead of the detected distribution")
	f.BoolVar(&opts.noColor, "no-color", false, "disable all colour output")
	f.StringVar(&opts.configPath, "config", "", "path to configuration file")
	f.BoolVar(&opts.json, "json", false, "print the collected facts as JSON")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log probe failures to stderr")
	return cmd
}

// setupLogging installs a text handler on w: warnings by default, debug
// with verbose.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// run produces the report. Every failure past argument parsing is logged
// and degrades the output instead of failing the command.
func run(ctx context.Context, out io.Writer, opts options) {
	if ctx == nil {
		ctx = context.Background()
	}
	noColor := opts.noColor || termenv.EnvNoColor()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		slog.Warn("could not write default config", "err", err)
	}

	res := layout.New(collectors.Builtin(), cfg, noColor).Collect(ctx)

	if opts.json {
		data, err := layout.JSON(res, cfg)
		if err != nil {
			slog.Warn("json output failed", "err", err)
			return
		}
		fmt.Fprintln(out, string(data))
		return
	}

	caps := terminal.DetectCapabilities()
	tm := theme.New(cfg, noColor, colorDepth(caps))
	info := layout.Render(res.Rows, cfg, tm)

	if path := strings.TrimSpace(cfg.General.ImagePath); path != "" {
		err := printImage(out, path, cfg, caps)
		if err == nil {
			fmt.Fprintln(out)
			report(banner.WriteInfo(out, info))
			return
		}
		slog.Warn("image logo failed, using ASCII logo", "path", path, "err", err)
	}

	if !cfg.ASCII.PrintASCII {
		report(banner.WriteInfo(out, info))
		return
	}
	lg := logo.Get(logoSlug(opts.logo, cfg.ASCII.DistroOverride, func() string {
		return sysinfo.DistroID(ctx)
	}))
	report(banner.Compose(out, tm.Logo(lg.Lines, lg.Color), info, cfg.MarginCells()))
}

func report(err error) {
	if err != nil {
		slog.Warn("writing report", "err", err)
	}
}

// printImage draws the image logo when stdout is a terminal.
func printImage(out io.Writer, path string, cfg *config.Config, caps terminal.Capabilities) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errNotTerminal
	}
	s, err := image.NewRenderer(caps).RenderFile(path, caps.Size.ClampWidth(cfg.ImageCells()))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

// logoSlug picks the logo: the flag, then the configured override, then the
// detected distribution, then the fallback art.
func logoSlug(flag, override string, detect func() string) string {
	for _, s := range []string{flag, override} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	if s := strings.TrimSpace(detect()); s != "" {
		return s
	}
	return logo.FallbackName
}

// colorDepth drops to the 256-colour palette only when the terminal is
// known to lack true colour; unknown or redirected output keeps 24-bit.
func colorDepth(caps terminal.Capabilities) int {
	if caps.TrueColor {
		return theme.DepthTrueColor
	}
	switch termenv.EnvColorProfile() {
	case termenv.ANSI256, termenv.ANSI:
		return theme.Depth256
	}
	return theme.DepthTrueColor
}
