package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/mobile-audit/cmd/audit"
	"github.com/scan-io-git/mobile-audit/cmd/rules"
	"github.com/scan-io-git/mobile-audit/cmd/version"
	"github.com/scan-io-git/mobile-audit/internal/config"
	"github.com/scan-io-git/mobile-audit/pkg/shared/errors"
)

var (
	cfgFile     string
	AppConfig   *config.Config
	rootOptions audit.RunOptionsAudit
	rootCmd     = &cobra.Command{
		Use:                   "mobileaudit [command] | mobileaudit PATH [--json]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Mobileaudit is a static linter for React Native and Flutter sources.",
		Long: `Mobileaudit scans mobile application sources for violations of touch, performance,
navigation, typography, color, platform, security, testing and debugging conventions.
Running it with a PATH is equivalent to "mobileaudit audit PATH".`,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: initConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return audit.Run(cmd, &rootOptions, args)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./mobileaudit.yml)")
	audit.RegisterFlags(rootCmd.Flags(), &rootOptions)
	rootCmd.AddCommand(audit.AuditCmd)
	rootCmd.AddCommand(rules.RulesCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	err := rootCmd.Execute()
	if err != nil && !errors.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
	}
	return errors.ExitCode(err)
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return errors.NewCommandError(fmt.Errorf("initializing config file failed: %w", err), errors.ExitCodeFailure)
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return errors.NewCommandError(err, errors.ExitCodeFailure)
	}

	AppConfig = cfg
	audit.Init(AppConfig)
	return nil
}
