package rules

// All returns the rule catalog in execution order. Findings are reported in
// this order within each file.
func All() []Rule {
	return []Rule{
		// Touch psychology
		TouchTargetSize,
		TouchTargetSpacing,
		ThumbZone,
		GestureAlternatives,
		HapticFeedback,
		TouchFeedback,

		// Rendering performance
		ScrollViewMap,
		ListItemMemo,
		RenderItemCallback,
		ListKeyExtractor,
		NativeDriver,
		EffectCleanup,
		ConsoleOutput,
		InlineHandlers,
		AnimatedLayout,

		// Navigation
		TabBarItems,
		TabState,
		BackHandling,
		DeepLinking,

		// Typography
		SystemFont,
		FontScaling,
		LineHeight,
		FontSizeRange,

		// Color
		PureBlack,
		DarkMode,

		// iOS platform
		IOSIcons,
		IOSHapticTypes,
		IOSSafeArea,

		// Android platform
		AndroidMaterialIcons,
		AndroidRipple,
		AndroidBackButton,

		// Backend and security
		SecureStorage,
		OfflineHandling,
		PushHandler,

		// Extended typography
		IOSTypeScale,
		AndroidSpUnits,
		ModularScale,
		LineLength,
		FontWeightBalance,

		// Extended color
		OLEDBackground,
		SaturatedColors,
		LowContrast,
		DarkModeWhiteText,

		// Extended iOS
		IOSSFPro,
		IOSSemanticColors,
		IOSAccentColors,
		IOSNavigationTitle,
		IOSComponents,

		// Extended Android
		AndroidRoboto,
		AndroidDynamicColor,
		AndroidElevation,
		AndroidMaterialComponents,
		AndroidNavigation,

		// Testing
		TestingTools,
		TestPyramid,
		AccessibilityLabels,

		// Debugging
		DebugConsole,
		PerformanceProfiling,
		ErrorBoundary,
		HermesEngine,
	}
}

var byID = indexByID(All())

func indexByID(catalog []Rule) map[string]Rule {
	index := make(map[string]Rule, len(catalog))
	for _, r := range catalog {
		index[r.ID] = r
	}
	return index
}

// Lookup returns the catalog rule with the given ID.
func Lookup(id string) (Rule, bool) {
	r, ok := byID[id]
	return r, ok
}
