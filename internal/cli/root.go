// Package cli implements the billsplit command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mmynk/billsplit/internal/config"
	"github.com/mmynk/billsplit/internal/render"
	"github.com/mmynk/billsplit/pkg/logging"
)

// Execute runs the root command with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// app carries state shared by the subcommands.
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "billsplit",
		Short:         "Split a shared bill and fix individual shares",
		Long:          "billsplit divides a bill evenly among a group, lets you fix any one person's share, and spreads the remainder over everyone else.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyConfigFile, "", "config file (yaml, toml or json)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String(config.KeyRedistribution, "", "how fixed shares affect the rest: remainder or original-total")
	flags.String(config.KeyLocale, "", "locale used to format amounts (e.g. en, pt-BR)")
	flags.String("currency-symbol", "", "symbol printed before amounts")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(a),
		newSplitCmd(a),
		newShellCmd(a),
	)

	return rootCmd
}

// load binds the flags that were set to viper, reads the configuration and
// configures logging.
func (a *app) load(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := configFlags[f.Name]
		if bindErr != nil || !ok || !f.Changed {
			return
		}
		bindErr = a.v.BindPFlag(key, f)
	})
	if bindErr != nil {
		return fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.SetupWriter(cmd.ErrOrStderr(), cfg.Level())
	return nil
}

func (a *app) formatter() (*render.Formatter, error) {
	return render.NewFormatter(a.cfg.Locale, a.cfg.CurrencySymbol)
}

// configFlags maps flag names to config keys. Other flags are command
// arguments and stay out of viper.
var configFlags = map[string]string{
	config.KeyConfigFile:     config.KeyConfigFile,
	"log-level":              config.KeyLogLevel,
	config.KeyRedistribution: config.KeyRedistribution,
	config.KeyLocale:         config.KeyLocale,
	"currency-symbol":        config.KeyCurrencySymbol,
	config.KeyAddr:           config.KeyAddr,
	"jwt-secret":             config.KeyJWTSecret,
	"token-ttl":              config.KeyTokenTTL,
	"shutdown-timeout":       config.KeyShutdownTimeout,
}
