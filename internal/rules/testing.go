package rules

import (
	"regexp"
	"strings"

	"github.com/scan-io-git/mobile-audit/internal/detector"
)

var (
	testingLibrary = regexp.MustCompile(`react-native-testing-library|@testing-library`)
	detoxTests     = regexp.MustCompile(`detox|element\(|by\.text|by\.id`)
	maestroFlows   = regexp.MustCompile(`maestro|\.yaml\n?\z`)
	jestTests      = regexp.MustCompile(`jest|describe\(|test\(|it\(`)

	unitTestReference = regexp.MustCompile(`\.test\.(tsx|ts|js|jsx)|\.spec\.`)
	e2eTestReference  = regexp.MustCompile(`detox|maestro|e2e|spec\.e2e`)

	accessibleTouchable = regexp.MustCompile(`Pressable|TouchableOpacity|TouchableHighlight`)
	accessibilityLabel  = regexp.MustCompile(`accessibilityLabel|aria-label|testID`)
)

var TestingTools = Rule{
	ID:          "testing-tools",
	Category:    "Testing",
	Description: "No unit or E2E testing framework referenced.",
	Check: func(in *Input, report *Reporter) {
		for _, p := range []*regexp.Regexp{jestTests, testingLibrary, detoxTests, maestroFlows} {
			if has(p, in.Content) {
				return
			}
		}
		report.Warn("No testing framework detected. Consider Jest (unit) + Detox/Maestro (E2E) for mobile.")
	},
}

var TestPyramid = Rule{
	ID:          "test-pyramid",
	Category:    "Testing",
	Description: "Unit tests referenced without any E2E coverage.",
	Check: func(in *Input, report *Reporter) {
		if count(unitTestReference, in.Content) > 0 && count(e2eTestReference, strings.ToLower(in.Content)) == 0 {
			report.Warn("Unit tests found but no E2E tests. Mobile needs E2E on real devices for complete coverage.")
		}
	},
}

var AccessibilityLabels = Rule{
	ID:          "a11y-labels",
	Category:    "A11y Mobile",
	Description: "Touchable elements need accessibility labels.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(accessibleTouchable, in.Content) && !has(accessibilityLabel, in.Content) {
			report.Warn("Touchable element without accessibilityLabel. Screen readers need labels for all interactive elements.")
		}
	},
}
