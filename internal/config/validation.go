package config

import (
	"fmt"
	"strings"
)

// MaxThreads bounds the audit.threads setting and the --threads flag.
const MaxThreads = 64

// LogLevels are the accepted logger.level values, upper-cased.
var LogLevels = []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

// ReportFormats are the accepted report format names.
var ReportFormats = []string{"text", "json", "sarif"}

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML global config: logger directive is invalid: %w", err)
	}
	if err := ValidateAuditConfig(&cfg.Audit); err != nil {
		return fmt.Errorf("YAML global config: audit directive is invalid: %w", err)
	}
	return nil
}

// ValidateLoggerConfig checks if the logger configurations have valid values.
func ValidateLoggerConfig(loggerConfig *Logger) error {
	if loggerConfig == nil {
		return fmt.Errorf("logger configuration is nil")
	}
	if !contains(LogLevels, strings.ToUpper(loggerConfig.Level)) {
		return fmt.Errorf("level must be one of %s: %q", strings.Join(LogLevels, ", "), loggerConfig.Level)
	}
	return nil
}

// ValidateAuditConfig checks if the audit configurations have valid values.
func ValidateAuditConfig(auditConfig *Audit) error {
	if auditConfig == nil {
		return fmt.Errorf("audit configuration is nil")
	}
	if err := ValidateThreads(auditConfig.Threads); err != nil {
		return err
	}
	if err := ValidateFormat(auditConfig.Format); err != nil {
		return err
	}
	return nil
}

// ValidateThreads checks that a worker count is within 1..MaxThreads.
func ValidateThreads(threads int) error {
	if threads < 1 || threads > MaxThreads {
		return fmt.Errorf("threads must be between 1 and %d: %d", MaxThreads, threads)
	}
	return nil
}

// ValidateFormat checks that format names a supported report renderer.
func ValidateFormat(format string) error {
	if !contains(ReportFormats, format) {
		return fmt.Errorf("format must be one of %s: %q", strings.Join(ReportFormats, ", "), format)
	}
	return nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
