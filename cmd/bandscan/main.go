// Command bandscan applies frequency-domain filters to grayscale images and
// locates bands of high intensity along an image axis.
//
// Usage:
//
//	bandscan filter --mode high --cutoff 8 --in scan.png --out edges.png
//	bandscan bands --axis rows --level 128 --in scan.png
//	bandscan bands --prefilter low --cutoff 4 --max-gap 5 --in scan.png
//
// Every flag can also be set in a YAML file passed with --config or through
// BANDSCAN_* environment variables (for example BANDSCAN_MAX_GAP=5).
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands.
type app struct {
	v      *viper.Viper
	logger *log.Logger
}

// newRootCmd builds the command tree around v. Tests pass a fresh viper
// instance per invocation.
func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v, logger: log.New(io.Discard, "", 0)}

	cmd := &cobra.Command{
		Use:   "bandscan",
		Short: "Frequency-domain image filtering and band detection.",
		Long: `bandscan filters grayscale images in the frequency domain with a
centred rectangular high-pass or low-pass mask, and finds contiguous bands of
bright rows or columns from an image's intensity profile.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}
	cmd.Version = version

	cmd.PersistentFlags().String("config", "", "YAML config file")
	cmd.PersistentFlags().String("backend", "auto", `FFT backend ("auto", "algofft", "gonum")`)
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(a.newFilterCmd())
	cmd.AddCommand(a.newBandsCmd())

	return cmd
}

// initConfig binds flags and environment variables to viper and reads the
// optional config file. Flags set on the command line take precedence.
func (a *app) initConfig(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	a.v.SetEnvPrefix("BANDSCAN")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	if a.v.GetBool("verbose") {
		a.logger = log.New(cmd.ErrOrStderr(), "bandscan: ", 0)
	}
	if f := a.v.ConfigFileUsed(); f != "" {
		a.logger.Printf("using config file %s", f)
	}
	return nil
}
