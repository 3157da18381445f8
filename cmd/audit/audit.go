package audit

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/scan-io-git/mobile-audit/cmd/version"
	"github.com/scan-io-git/mobile-audit/internal/auditor"
	"github.com/scan-io-git/mobile-audit/internal/config"
	"github.com/scan-io-git/mobile-audit/internal/logger"
	"github.com/scan-io-git/mobile-audit/internal/report"
	"github.com/scan-io-git/mobile-audit/pkg/shared/errors"
	"github.com/scan-io-git/mobile-audit/pkg/shared/files"
)

// RunOptionsAudit holds the arguments for the audit command.
type RunOptionsAudit struct {
	Format     string
	JSON       bool
	OutputPath string
	Threads    int
}

// Global variables for configuration and command arguments
var (
	AppConfig         *config.Config
	auditOptions      RunOptionsAudit
	exampleAuditUsage = `  # Auditing a React Native project
  mobileaudit audit /path/to/my_app

  # Auditing a single file and printing the JSON report
  mobileaudit audit --json /path/to/my_app/src/App.tsx

  # Auditing with 4 concurrent threads and writing a SARIF report to a folder
  mobileaudit audit -j 4 --format sarif --output /path/to/results /path/to/my_app

  # Auditing with the short form of the root command
  mobileaudit /path/to/my_app --json`
)

// AuditCmd represents the audit command.
var AuditCmd = &cobra.Command{
	Use:                   "audit [--format/-f text|json|sarif] [--json] [--output/-o PATH] [-j THREADS_NUMBER] PATH",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleAuditUsage,
	Short:                 "Audit mobile sources for UX, performance and platform convention violations",
	Long: `Audits React Native and Flutter sources against the built-in rule catalog.

Directories are walked recursively, skipping node_modules, .git, dist, build,
.next, ios, android and .idea, and auditing .tsx, .ts, .jsx, .js and .dart files.
The command exits with status 1 when at least one blocking issue is found.`,
	RunE: runAuditCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// RegisterFlags binds the audit flags to options on flags.
func RegisterFlags(flags *pflag.FlagSet, options *RunOptionsAudit) {
	flags.StringVarP(&options.Format, "format", "f", "", "Report format: text, json or sarif (default from config, then text).")
	flags.BoolVar(&options.JSON, "json", false, "Shorthand for --format json.")
	flags.StringVarP(&options.OutputPath, "output", "o", "", "Path to the output file or directory where the report will be saved.")
	flags.IntVarP(&options.Threads, "threads", "j", 0, "Number of concurrent threads to use (default from config, then 1).")
}

// runAuditCommand executes the audit command.
func runAuditCommand(cmd *cobra.Command, args []string) error {
	return Run(cmd, &auditOptions, args)
}

// Run audits the target in args and writes the report. A non-compliant
// result is returned as a reported CommandError.
func Run(cmd *cobra.Command, options *RunOptionsAudit, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-audit")

	target, err := validateAuditArgs(options, args)
	if err != nil {
		if len(args) == 0 {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		}
		logger.Error("invalid audit arguments", "error", err)
		return errors.NewCommandError(err, errors.ExitCodeFailure)
	}

	format, threads := resolveSettings(AppConfig, options)
	a := auditor.New(threads, logger.Named("walker"))

	result, err := a.AuditPath(target)
	if err != nil {
		logger.Error("audit failed", "target", target, "error", err)
		return errors.NewCommandError(err, errors.ExitCodeFailure)
	}

	opts := report.Options{
		Target:      target,
		ToolVersion: version.CoreVersion,
		Logger:      logger,
	}
	if err := writeReport(cmd.OutOrStdout(), options.OutputPath, format, result, opts, logger); err != nil {
		logger.Error("failed to write report", "error", err)
		return errors.NewCommandError(err, errors.ExitCodeFailure)
	}

	if !result.Compliant() {
		logger.Debug("audit finished with blocking issues", "issues", len(result.Issues))
		return errors.NewNonCompliantError(len(result.Issues))
	}

	logger.Debug("audit command completed successfully")
	return nil
}

// resolveSettings merges flags over configuration. Flags win when set.
func resolveSettings(cfg *config.Config, options *RunOptionsAudit) (string, int) {
	format, threads := config.DefaultFormat, config.DefaultThreads
	if cfg != nil {
		format = config.SetThen(cfg.Audit.Format, format)
		threads = config.SetThen(cfg.Audit.Threads, threads)
	}

	switch {
	case options.JSON:
		format = report.FormatJSON
	case options.Format != "":
		format = options.Format
	}
	threads = config.SetThen(options.Threads, threads)

	return format, threads
}

// writeReport renders result to stdout or, when outputPath is set, to a file.
func writeReport(stdout io.Writer, outputPath, format string, result *auditor.Result, opts report.Options, logger hclog.Logger) error {
	render := func(w io.Writer) error {
		return report.Write(w, format, result, opts)
	}
	if outputPath == "" {
		return render(stdout)
	}

	nameTemplate := fmt.Sprintf("mobileaudit-report.%s", report.Extension(format))
	reportPath, folder, err := files.DetermineFileFullPath(outputPath, nameTemplate)
	if err != nil {
		return err
	}
	if err := files.CreateFolderIfNotExists(folder); err != nil {
		return err
	}
	if err := files.WriteReportFile(reportPath, render); err != nil {
		return err
	}

	logger.Info("report saved to file", "path", reportPath, "format", format)
	return nil
}

// Initialize flags for the audit command.
func init() {
	RegisterFlags(AuditCmd.Flags(), &auditOptions)
	AuditCmd.Flags().BoolP("help", "h", false, "Show help for the audit command.")
}
