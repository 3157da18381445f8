package rules

import (
	"regexp"

	"github.com/scan-io-git/mobile-audit/internal/detector"
)

const maxDebugConsoleCalls = 10

var (
	debugConsoleCall = regexp.MustCompile(`console\.(log|warn|error|debug|info)`)
	profilingHook    = regexp.MustCompile(`Performance|systrace|profile|Flipper`)
	errorBoundaryAPI = regexp.MustCompile(`ErrorBoundary|componentDidCatch|getDerivedStateFromError`)
)

// DebugConsole is separate from ConsoleOutput: it also counts console.info
// and fires above 10 calls.
var DebugConsole = Rule{
	ID:          "debug-console",
	Category:    "Debugging",
	Description: "More than 10 console calls in one file.",
	Check: func(in *Input, report *Reporter) {
		if n := count(debugConsoleCall, in.Content); n > maxDebugConsoleCalls {
			report.Warn("%d console.log statements. Remove before production; they block JS thread.", n)
		}
	},
}

var PerformanceProfiling = Rule{
	ID:          "performance-profiling",
	Category:    "Debugging",
	Description: "Performance monitoring or profiling hooks in use.",
	Check: func(in *Input, report *Reporter) {
		if has(profilingHook, in.Content) {
			report.Pass()
		}
	},
}

var ErrorBoundary = Rule{
	ID:          "error-boundary",
	Category:    "Debugging",
	Description: "No error boundary to contain render crashes.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if !has(errorBoundaryAPI, in.Content) {
			report.Warn("No ErrorBoundary detected. Consider adding ErrorBoundary to prevent app crashes.")
		}
	},
}

// HermesEngine always passes: Hermes is the default engine since RN 0.70 and
// cannot be verified from source text.
var HermesEngine = Rule{
	ID:          "hermes-engine",
	Category:    "Debugging",
	Description: "Hermes JavaScript engine.",
	Requires:    detector.ReactNative,
	Check: func(_ *Input, report *Reporter) {
		report.Pass()
	},
}
