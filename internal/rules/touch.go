package rules

import (
	"regexp"

	"github.com/scan-io-git/mobile-audit/internal/detector"
)

// Minimum touch target edge (iOS 44pt, WCAG 44px) and spacing between targets.
const (
	minTouchTarget  = 44
	minTouchSpacing = 8
)

var (
	touchDimension = regexp.MustCompile(`(?:width|height|size):\s*(\d+(?:\.\d+)?)`)
	touchGap       = regexp.MustCompile(`(?:margin|gap):\s*(\d+(?:\.\d+)?)\s*(?:px|dp)?`)

	primaryAction   = regexp.MustCompile(`(?i)(?:testID|id):\s*["'](?:.*(?:primary|cta|submit|confirm)[^"']*)["']`)
	bottomPlacement = regexp.MustCompile(`position:\s*["']?absolute["']?|bottom:\s*\d+|style.*bottom|justifyContent:\s*["']?flex-end`)

	swipeGesture  = regexp.MustCompile(`Swipeable|onSwipe|PanGestureHandler|swipe`)
	visibleButton = regexp.MustCompile(`Button.*(?:delete|archive|more)|TouchableOpacity|Pressable`)

	importantAction = regexp.MustCompile(`(?:onPress|onSubmit|delete|remove|confirm|purchase)`)
	hapticsAPI      = regexp.MustCompile(`Haptics|Vibration|react-native-haptic-feedback|FeedbackManager`)

	pressableFeedback = regexp.MustCompile(`Pressable|TouchableOpacity`)
	pressedState      = regexp.MustCompile(`pressed|style.*opacity|underlay`)
)

var TouchTargetSize = Rule{
	ID:          "touch-target-size",
	Category:    "Touch Target",
	Description: "Every width/height/size below 44 units is too small to tap reliably.",
	Check: func(in *Input, report *Reporter) {
		for _, m := range measures(touchDimension, in.Content) {
			if m.value < minTouchTarget {
				report.Issue("Touch target size %spx < 44px minimum (iOS: 44pt, Android: 48dp)", m.raw)
			}
		}
	},
}

var TouchTargetSpacing = Rule{
	ID:          "touch-target-spacing",
	Category:    "Touch Spacing",
	Description: "Every margin/gap below 8 units risks accidental taps on neighbouring targets.",
	Check: func(in *Input, report *Reporter) {
		for _, m := range measures(touchGap, in.Content) {
			if m.value < minTouchSpacing {
				report.Warn("Touch target spacing %spx < 8px minimum. Accidental taps risk.", m.raw)
			}
		}
	},
}

var ThumbZone = Rule{
	ID:          "thumb-zone",
	Category:    "Thumb Zone",
	Description: "Primary calls to action should be anchored at the bottom of the screen.",
	Check: func(in *Input, report *Reporter) {
		if has(primaryAction, in.Content) && !has(bottomPlacement, in.Content) {
			report.Warn("Primary CTA may not be in thumb zone (bottom). Place primary actions at bottom for easy reach.")
		}
	},
}

var GestureAlternatives = Rule{
	ID:          "gesture-alternatives",
	Category:    "Gestures",
	Description: "Swipe actions need a visible button alternative.",
	Check: func(in *Input, report *Reporter) {
		if has(swipeGesture, in.Content) && !has(visibleButton, in.Content) {
			report.Warn("Swipe gestures detected without visible button alternatives. Motor impaired users need alternatives.")
		}
	},
}

var HapticFeedback = Rule{
	ID:          "haptic-feedback",
	Category:    "Haptics",
	Description: "Important actions should confirm with haptic feedback.",
	Check: func(in *Input, report *Reporter) {
		if has(importantAction, in.Content) && !has(hapticsAPI, in.Content) {
			report.Warn("Important actions without haptic feedback. Consider adding haptic confirmation.")
		}
	},
}

var TouchFeedback = Rule{
	ID:          "touch-feedback",
	Category:    "Touch Feedback",
	Description: "Pressables should change appearance while pressed.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(pressableFeedback, in.Content) && !has(pressedState, in.Content) {
			report.Warn("Pressable without visual feedback state. Add opacity/scale change for tap confirmation.")
		}
	},
}
