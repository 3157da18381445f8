package rules

import "regexp"

const maxTabItems = 5

var (
	tabDeclaration = regexp.MustCompile(`Tab\.Screen|createBottomTabNavigator|BottomTab`)
	tabNavigator   = regexp.MustCompile(`createBottomTabNavigator|Tab\.Navigator`)
	lazyDisabled   = regexp.MustCompile(`lazy:\s*false`)

	backListener = regexp.MustCompile(`BackHandler|useFocusEffect|navigation\.addListener`)
	customBack   = regexp.MustCompile(`onBackPress|handleBackPress`)

	deepLinking   = regexp.MustCompile(`Linking\.|Linking\.openURL|deepLink|universalLink`)
	linkingConfig = regexp.MustCompile(`apollo-link|react-native-screens|navigation\.link`)
)

var TabBarItems = Rule{
	ID:          "tab-bar-items",
	Category:    "Navigation",
	Description: "Tab bars should declare at most 5 entries.",
	Check: func(in *Input, report *Reporter) {
		if n := count(tabDeclaration, in.Content); n > maxTabItems {
			report.Warn("%d tab bar items (max 5 recommended). More than 5 becomes hard to tap.", n)
		}
	},
}

var TabState = Rule{
	ID:          "tab-state",
	Category:    "Navigation",
	Description: "Tab navigators should keep screens mounted with lazy: false.",
	Check: func(in *Input, report *Reporter) {
		if has(tabNavigator, in.Content) && !has(lazyDisabled, in.Content) {
			report.Warn("Tab navigation without lazy: false. Tabs may lose state on switch.")
		}
	},
}

var BackHandling = Rule{
	ID:          "back-handling",
	Category:    "Navigation",
	Description: "Custom back handlers need a registered back listener.",
	Check: func(in *Input, report *Reporter) {
		if has(customBack, in.Content) && !has(backListener, in.Content) {
			report.Warn("Custom back handling without BackHandler listener. May not work correctly.")
		}
	},
}

// DeepLinking passes files that do no linking at all and warns when linking
// is used without any routing configuration.
var DeepLinking = Rule{
	ID:          "deep-linking",
	Category:    "Navigation",
	Description: "Deep links should come with navigation linking configuration.",
	Check: func(in *Input, report *Reporter) {
		linking := has(deepLinking, in.Content)
		configured := has(linkingConfig, in.Content)
		switch {
		case !linking && !configured:
			report.Pass()
		case linking && !configured:
			report.Warn("Deep linking detected but may lack proper configuration. Test notification/share flows.")
		}
	},
}
