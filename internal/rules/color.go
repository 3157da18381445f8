package rules

import (
	"regexp"
	"strconv"
)

const (
	maxSaturatedColors = 10
	highSaturation     = 0.8
)

var (
	pureBlack = regexp.MustCompile(`#000000|color:\s*black|backgroundColor:\s*["']?black`)

	colorSchemeAPI = regexp.MustCompile(`useColorScheme|colorScheme|appearance:\s*["']?dark`)
	darkStyling    = regexp.MustCompile(`\\\?.*dark|style:\s*.*dark|isDark`)

	nearBlack           = regexp.MustCompile(`#121212|#1A1A1A|#0D0D0D`)
	pureBlackBackground = regexp.MustCompile(`backgroundColor:\s*["']?#000000`)
	hexBackground       = regexp.MustCompile(`backgroundColor:\s*["']?#[0-9A-Fa-f]{6}`)

	hexColor = regexp.MustCompile(`#([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})`)

	lowContrastPair = regexp.MustCompile(`#[EeEeEeEe].*#ffffff|#999999.*#ffffff|#333333.*#000000|#666666.*#000000`)

	darkModeContext = regexp.MustCompile(`dark:\s*|isDark|useColorScheme|colorScheme:\s*["']?dark`)
	pureWhiteText   = regexp.MustCompile(`color:\s*["']?#ffffff|#fff["']?\}|textColor:\s*["']?white`)
)

var PureBlack = Rule{
	ID:          "pure-black",
	Category:    "Color",
	Description: "Pure black (#000000) instead of a dark gray.",
	Check: func(in *Input, report *Reporter) {
		if has(pureBlack, in.Content) {
			report.Warn("Pure black (#000000) detected. Use dark gray (#1C1C1E iOS, #121212 Android) for better OLED/battery.")
		}
	},
}

var DarkMode = Rule{
	ID:          "dark-mode",
	Category:    "Color",
	Description: "No color scheme or dark styling at all.",
	Check: func(in *Input, report *Reporter) {
		if !has(colorSchemeAPI, in.Content) && !has(darkStyling, in.Content) {
			report.Warn("No dark mode support detected. Consider useColorScheme for system dark mode.")
		}
	},
}

// OLEDBackground passes near-black backgrounds, accepts pure black, and warns
// on any other hard-coded hex background.
var OLEDBackground = Rule{
	ID:          "oled-background",
	Category:    "Mobile Color",
	Description: "Dark backgrounds should be OLED friendly.",
	Check: func(in *Input, report *Reporter) {
		switch {
		case has(nearBlack, in.Content):
			report.Pass()
		case has(pureBlackBackground, in.Content):
		case has(hexBackground, in.Content):
			report.Warn("Consider OLED-optimized dark backgrounds (#121212 Android, #000000 iOS) for battery savings.")
		}
	},
}

var SaturatedColors = Rule{
	ID:          "saturated-colors",
	Category:    "Mobile Color",
	Description: "More than 10 highly saturated hex colors.",
	Check: func(in *Input, report *Reporter) {
		saturated := 0
		for _, m := range hexColor.FindAllStringSubmatch(in.Content, -1) {
			if saturation(m[1], m[2], m[3]) > highSaturation {
				saturated++
			}
		}
		if saturated > maxSaturatedColors {
			report.Warn("%d highly saturated colors detected. Desaturated colors save battery on OLED screens.", saturated)
		}
	},
}

var LowContrast = Rule{
	ID:          "low-contrast",
	Category:    "Mobile Color",
	Description: "Known low-contrast color pairs.",
	Check: func(in *Input, report *Reporter) {
		if has(lowContrastPair, in.Content) {
			report.Warn("Possible low contrast combination detected. Critical for outdoor visibility. Ensure WCAG AAA (7:1) for mobile.")
		}
	},
}

var DarkModeWhiteText = Rule{
	ID:          "dark-mode-white-text",
	Category:    "Mobile Color",
	Description: "Pure white text on dark backgrounds.",
	Check: func(in *Input, report *Reporter) {
		if has(darkModeContext, in.Content) && has(pureWhiteText, in.Content) {
			report.Warn("Pure white text (#FFFFFF) in dark mode. Use #E8E8E8 or light gray for better readability.")
		}
	},
}

// saturation computes (max-min)/max over the RGB channels given as two-digit
// hex strings. Unparsable channels yield zero.
func saturation(r, g, b string) float64 {
	var channels [3]float64
	for i, hex := range []string{r, g, b} {
		v, err := strconv.ParseUint(hex, 16, 8)
		if err != nil {
			return 0
		}
		channels[i] = float64(v)
	}
	hi, lo := channels[0], channels[0]
	for _, c := range channels[1:] {
		if c > hi {
			hi = c
		}
		if c < lo {
			lo = c
		}
	}
	if hi == 0 {
		return 0
	}
	return (hi - lo) / hi
}
