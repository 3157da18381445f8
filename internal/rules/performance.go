package rules

import (
	"regexp"

	"github.com/scan-io-git/mobile-audit/internal/detector"
)

const (
	maxConsoleCalls   = 5
	maxInlineHandlers = 3
)

var (
	scrollView        = regexp.MustCompile(`<ScrollView|ScrollView\.`)
	scrollViewMap     = regexp.MustCompile(`ScrollView.*\.map\(|ScrollView.*\{.*\.map`)
	virtualizedList   = regexp.MustCompile(`FlatList|FlashList|SectionList`)
	memoizedComponent = regexp.MustCompile(`React\.memo|memo\(`)

	flatOrFlashList = regexp.MustCompile(`FlatList|FlashList`)
	useCallbackHook = regexp.MustCompile(`useCallback`)

	flatList     = regexp.MustCompile(`FlatList`)
	keyExtractor = regexp.MustCompile(`keyExtractor`)
	indexAsKey   = regexp.MustCompile(`key=\{.*index.*\}|key:\s*index`)

	animatedAPI        = regexp.MustCompile(`Animated\.`)
	nativeDriverOn     = regexp.MustCompile(`useNativeDriver:\s*true`)
	nativeDriverOff    = regexp.MustCompile(`useNativeDriver:\s*false`)
	animatedLayoutProp = regexp.MustCompile(`Animated\.timing.*(?:width|height|margin|padding)`)

	effectHook      = regexp.MustCompile(`useEffect`)
	effectTeardown  = regexp.MustCompile(`return\s*\(\)\s*=>|return\s+function`)
	subscriptionAPI = regexp.MustCompile(`addEventListener|subscribe|\.focus\(\)|\.off\(`)

	consoleCall   = regexp.MustCompile(`console\.log|console\.warn|console\.error|console\.debug`)
	inlineHandler = regexp.MustCompile(`(?:onPress|onPressIn|onPressOut|renderItem):\s*\([^)]*\)\s*=>`)
)

// ScrollViewMap flags lists rendered by mapping inside a ScrollView when no
// virtualized list is used anywhere in the file.
var ScrollViewMap = Rule{
	ID:          "scrollview-map",
	Category:    "Performance CRITICAL",
	Description: "Lists rendered with .map() inside ScrollView keep every row mounted.",
	Check: func(in *Input, report *Reporter) {
		if has(scrollView, in.Content) && has(scrollViewMap, in.Content) && !has(virtualizedList, in.Content) {
			report.Issue("ScrollView with .map() detected. Use FlatList for lists to prevent memory explosion.")
		}
	},
}

var ListItemMemo = Rule{
	ID:          "list-item-memo",
	Category:    "Performance",
	Description: "List items should be wrapped in React.memo.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(virtualizedList, in.Content) && !has(memoizedComponent, in.Content) {
			report.Warn("FlatList without React.memo on list items. Items will re-render on every parent update.")
		}
	},
}

var RenderItemCallback = Rule{
	ID:          "render-item-callback",
	Category:    "Performance",
	Description: "renderItem should be memoized with useCallback.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(flatOrFlashList, in.Content) && !has(useCallbackHook, in.Content) {
			report.Warn("FlatList renderItem without useCallback. New function created every render.")
		}
	},
}

// ListKeyExtractor reports a missing keyExtractor and index-based keys as
// two independent issues.
var ListKeyExtractor = Rule{
	ID:          "list-key-extractor",
	Category:    "Performance CRITICAL",
	Description: "Virtualized lists need a stable keyExtractor and must not key rows by index.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(flatList, in.Content) && !has(keyExtractor, in.Content) {
			report.Issue("FlatList without keyExtractor. Index-based keys cause bugs on reorder/delete.")
		}
		if has(indexAsKey, in.Content) {
			report.Issue("Using index as key. This causes bugs when list changes. Use unique ID from data.")
		}
	},
}

var NativeDriver = Rule{
	ID:          "native-driver",
	Category:    "Performance",
	Description: "Animations should run on the native driver.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if !has(animatedAPI, in.Content) {
			return
		}
		if has(nativeDriverOff, in.Content) {
			report.Warn("Animation with useNativeDriver: false. Use true for 60fps (only supports transform/opacity).")
		}
		if !has(nativeDriverOn, in.Content) {
			report.Warn("Animated component without useNativeDriver. Add useNativeDriver: true for 60fps.")
		}
	},
}

var EffectCleanup = Rule{
	ID:          "effect-cleanup",
	Category:    "Memory Leak",
	Description: "useEffect subscriptions must return a teardown callback.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(effectHook, in.Content) && has(subscriptionAPI, in.Content) && !has(effectTeardown, in.Content) {
			report.Issue("useEffect with subscriptions but no cleanup function. Memory leak on unmount.")
		}
	},
}

var ConsoleOutput = Rule{
	ID:          "console-output",
	Category:    "Performance",
	Description: "More than 5 console calls in one file.",
	Check: func(in *Input, report *Reporter) {
		if n := count(consoleCall, in.Content); n > maxConsoleCalls {
			report.Warn("%d console.log statements detected. Remove before production (blocks JS thread).", n)
		}
	},
}

var InlineHandlers = Rule{
	ID:          "inline-handlers",
	Category:    "Performance",
	Description: "More than 3 inline arrow functions passed as handler props.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if n := count(inlineHandler, in.Content); n > maxInlineHandlers {
			report.Warn("%d inline arrow functions in props. Creates new function every render. Use useCallback.", n)
		}
	},
}

var AnimatedLayout = Rule{
	ID:          "animated-layout",
	Category:    "Performance",
	Description: "Animations should target transform/opacity, not layout properties.",
	Check: func(in *Input, report *Reporter) {
		if has(animatedLayoutProp, in.Content) {
			report.Issue("Animating layout properties (width/height/margin). Use transform/opacity for 60fps.")
		}
	},
}
