package rules

import (
	"regexp"

	"github.com/scan-io-git/mobile-audit/internal/detector"
)

var (
	vectorIcons = regexp.MustCompile(`@expo/vector-icons|ionicons`)
	sfSymbols   = regexp.MustCompile(`sf-symbol|SF Symbols`)

	hapticLibrary = regexp.MustCompile(`expo-haptics|react-native-haptic-feedback`)
	typedHaptics  = regexp.MustCompile(`ImpactFeedback|NotificationFeedback|SelectionFeedback`)

	safeArea = regexp.MustCompile(`SafeAreaView|useSafeAreaInsets|safeArea`)

	sfProFont = regexp.MustCompile(`SF Pro|SFPro|fontFamily:\s*["']?[-\s]*SF`)

	semanticLabel   = regexp.MustCompile(`color:\s*["']?label|\.label`)
	secondaryLabel  = regexp.MustCompile(`secondaryLabel|\.secondaryLabel`)
	hardcodedGray   = regexp.MustCompile(`#[78]0{4}`)
	iosSystemColor  = regexp.MustCompile(`#007AFF|#0A84FF|systemBlue|#34C759|#30D158|systemGreen|#FF3B30|#FF453A|systemRed`)
	customPrimary   = regexp.MustCompile(`primaryColor|theme.*primary|colors\.primary`)
	navigationBar   = regexp.MustCompile(`navigationOptions|headerStyle|cardStyle`)
	navigationTitle = regexp.MustCompile(`title:\s*["']|headerTitle|navigation\.setOptions`)

	iosComponent = regexp.MustCompile(`Alert\.alert|showAlert|ActionSheet|ActionSheetIOS|showActionSheetWithOptions|ActivityIndicator|ActivityIndic`)
)

var IOSIcons = Rule{
	ID:          "ios-icons",
	Category:    "iOS",
	Description: "Vector icon sets in use.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(vectorIcons, in.Content) && !has(sfSymbols, in.Content) {
			report.Pass()
		}
	},
}

var IOSHapticTypes = Rule{
	ID:          "ios-haptic-types",
	Category:    "iOS Haptics",
	Description: "Haptic libraries should be used through typed feedback styles.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(hapticLibrary, in.Content) && !has(typedHaptics, in.Content) {
			report.Warn("Haptic library imported but not using typed haptics (Impact/Notification/Selection).")
		}
	},
}

var IOSSafeArea = Rule{
	ID:          "ios-safe-area",
	Category:    "iOS",
	Description: "Screens should respect safe area insets.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if !has(safeArea, in.Content) {
			report.Warn("No SafeArea detected. Content may be hidden by notch/home indicator.")
		}
	},
}

var IOSSFPro = Rule{
	ID:          "ios-sf-pro",
	Category:    "iOS",
	Description: "Custom fonts should fall back to SF Pro.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(customFontFamily, in.Content) && !has(sfProFont, in.Content) {
			report.Warn("Custom font without SF Pro fallback. Consider SF Pro Text for body, SF Pro Display for headings.")
		}
	},
}

var IOSSemanticColors = Rule{
	ID:          "ios-semantic-colors",
	Category:    "iOS",
	Description: "Hard-coded grays instead of semantic label colors.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		semantic := has(semanticLabel, in.Content) || has(secondaryLabel, in.Content)
		if has(hardcodedGray, in.Content) && !semantic {
			report.Warn("Hardcoded gray colors detected. Consider iOS semantic colors (label, secondaryLabel) for automatic dark mode.")
		}
	},
}

var IOSAccentColors = Rule{
	ID:          "ios-accent-colors",
	Category:    "iOS",
	Description: "Custom primary colors without an iOS system color fallback.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(customPrimary, in.Content) && !has(iosSystemColor, in.Content) {
			report.Warn("Custom primary color without iOS system color fallback. Consider systemBlue for consistent iOS feel.")
		}
	},
}

var IOSNavigationTitle = Rule{
	ID:          "ios-nav-title",
	Category:    "iOS",
	Description: "Styled navigation bars should carry a title.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(navigationBar, in.Content) && !has(navigationTitle, in.Content) {
			report.Warn("Navigation bar detected without title. iOS apps should have clear context in nav bar.")
		}
	},
}

var IOSComponents = Rule{
	ID:          "ios-components",
	Category:    "iOS",
	Description: "Native iOS components (alerts, action sheets, activity indicators) in use.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(iosComponent, in.Content) {
			report.Pass()
		}
	},
}
