package rules

import (
	"regexp"

	"github.com/scan-io-git/mobile-audit/internal/detector"
)

// minMaterialComponents is how many Material component families must appear
// together to count as idiomatic Material usage.
const minMaterialComponents = 2

var (
	materialIcons = regexp.MustCompile(`@expo/vector-icons|MaterialIcons`)

	rippleEffect = regexp.MustCompile(`ripple|android_ripple|foregroundRipple`)
	touchable    = regexp.MustCompile(`Pressable|Touchable`)

	reactNavigation = regexp.MustCompile(`@react-navigation`)
	backHandler     = regexp.MustCompile(`BackHandler|useBackHandler`)

	robotoFont = regexp.MustCompile(`Roboto|fontFamily:\s*["']?[-\s]*Roboto`)

	materialColor = regexp.MustCompile(`MD3|MaterialYou|dynamicColor|useColorScheme`)
	themeProvider = regexp.MustCompile(`MaterialTheme|ThemeProvider|PaperProvider`)

	elevation = regexp.MustCompile(`elevation:\s*\d+|shadowOpacity|shadowRadius|android:elevation`)
	boxShadow = regexp.MustCompile(`boxShadow:`)

	materialCard     = regexp.MustCompile(`Card|Paper|elevation.*\d+`)
	materialFAB      = regexp.MustCompile(`FAB|FloatingActionButton|fab`)
	materialSnackbar = regexp.MustCompile(`Snackbar|showSnackBar|Toast`)

	topAppBar      = regexp.MustCompile(`TopAppBar|AppBar|CollapsingToolbar`)
	bottomNav      = regexp.MustCompile(`BottomNavigation|BottomNav`)
	navigationRail = regexp.MustCompile(`NavigationRail`)
)

var AndroidMaterialIcons = Rule{
	ID:          "android-material-icons",
	Category:    "Android",
	Description: "Material icon set in use.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(materialIcons, in.Content) {
			report.Pass()
		}
	},
}

var AndroidRipple = Rule{
	ID:          "android-ripple",
	Category:    "Android",
	Description: "Touchables should show ripple feedback on Android.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(touchable, in.Content) && !has(rippleEffect, in.Content) {
			report.Warn("Touchable without ripple effect. Android users expect ripple feedback.")
		}
	},
}

var AndroidBackButton = Rule{
	ID:          "android-back-button",
	Category:    "Android",
	Description: "React Navigation apps should handle the hardware back button.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(reactNavigation, in.Content) && !has(backHandler, in.Content) {
			report.Warn("React Navigation detected without BackHandler listener. Android hardware back may not work correctly.")
		}
	},
}

var AndroidRoboto = Rule{
	ID:          "android-roboto",
	Category:    "Android",
	Description: "Custom fonts should fall back to Roboto.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(customFontFamily, in.Content) && !has(robotoFont, in.Content) {
			report.Warn("Custom font without Roboto fallback. Roboto is optimized for Android displays.")
		}
	},
}

var AndroidDynamicColor = Rule{
	ID:          "android-dynamic-color",
	Category:    "Android",
	Description: "Material 3 dynamic color or a theme provider.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if !has(materialColor, in.Content) && !has(themeProvider, in.Content) {
			report.Warn("No Material 3 dynamic color detected. Consider Material 3 theming for personalized feel.")
		}
	},
}

var AndroidElevation = Rule{
	ID:          "android-elevation",
	Category:    "Android",
	Description: "CSS box shadows without Material elevation.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(boxShadow, in.Content) && !has(elevation, in.Content) {
			report.Warn("CSS box-shadow detected without elevation. Consider Material elevation system for consistent depth.")
		}
	},
}

var AndroidMaterialComponents = Rule{
	ID:          "android-material-components",
	Category:    "Android",
	Description: "Two or more Material component families used together.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		used := 0
		for _, p := range []*regexp.Regexp{rippleEffect, materialCard, materialFAB, materialSnackbar} {
			if has(p, in.Content) {
				used++
			}
		}
		if used >= minMaterialComponents {
			report.Pass()
		}
	},
}

// AndroidNavigation passes bottom navigation and warns about a top app bar
// with neither bottom navigation nor a navigation rail.
var AndroidNavigation = Rule{
	ID:          "android-navigation",
	Category:    "Android",
	Description: "Primary navigation should be thumb reachable.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		switch {
		case has(bottomNav, in.Content):
			report.Pass()
		case has(topAppBar, in.Content) && !has(navigationRail, in.Content):
			report.Warn("TopAppBar without bottom navigation. Consider BottomNavigation for thumb-friendly access.")
		}
	},
}
