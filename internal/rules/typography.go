package rules

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/scan-io-git/mobile-audit/internal/detector"
)

const (
	maxMobileLineHeight = 1.8
	minFontSize         = 12
	maxFontSize         = 32

	// modularScaleTolerance is how far a size ratio may drift from a
	// recognized scale ratio.
	modularScaleTolerance = 0.03
	// modularScaleRatios caps how many consecutive ratios are inspected.
	modularScaleRatios = 3
)

var (
	customFontFamily = regexp.MustCompile(`fontFamily:\s*["'][^"']+`)
	systemFontFamily = regexp.MustCompile(`fontFamily:\s*["']?(?:System|San Francisco|Roboto|-apple-system)`)

	fontSizeDeclared = regexp.MustCompile(`fontSize:`)
	fontScaling      = regexp.MustCompile(`allowFontScaling:\s*true|responsiveFontSize|useWindowDimensions`)

	lineHeightValue = regexp.MustCompile(`lineHeight:\s*([\d.]+)`)
	fontSizeValue   = regexp.MustCompile(`fontSize:\s*([\d.]+)`)
	fontSizeNumber  = regexp.MustCompile(`fontSize:\s*(\d+(?:\.\d+)?)`)

	materialDisplay  = regexp.MustCompile(`fontSize:\s*[456][0-9]|display`)
	materialHeadline = regexp.MustCompile(`fontSize:\s*[23][0-9]|headline`)
	spUnit           = regexp.MustCompile(`\d+\s*sp\b`)

	longTextLiteral = regexp.MustCompile(`<Text[^>]*>[^<]{40,}`)
	textMaxWidth    = regexp.MustCompile(`maxWidth|max-w-\d+|width:\s*["']?\d+`)

	fontWeightValue = regexp.MustCompile(`fontWeight:\s*["']?(\d+|normal|bold|medium|light)`)
)

// iosTypeScale lists the point sizes of the iOS text styles.
var iosTypeScale = []float64{34, 28, 22, 20, 17, 16, 15, 13, 12, 11}

var scaleRatios = []float64{1.125, 1.2, 1.25, 1.333, 1.5}

var namedFontWeights = map[string]string{
	"normal": "400",
	"light":  "300",
	"medium": "500",
	"bold":   "700",
}

var SystemFont = Rule{
	ID:          "system-font",
	Category:    "Typography",
	Description: "Custom font families without a system font.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(customFontFamily, in.Content) && !has(systemFontFamily, in.Content) {
			report.Warn("Custom font detected. Consider system fonts (iOS: SF Pro, Android: Roboto) for native feel.")
		}
	},
}

var FontScaling = Rule{
	ID:          "font-scaling",
	Category:    "Typography",
	Description: "Fixed font sizes without Dynamic Type / font scaling support.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(fontSizeDeclared, in.Content) && !has(fontScaling, in.Content) {
			report.Warn("Fixed font sizes without scaling support. Consider allowFontScaling for accessibility.")
		}
	},
}

var LineHeight = Rule{
	ID:          "line-height",
	Category:    "Typography",
	Description: "Every lineHeight above 1.8 is too loose for mobile text.",
	Check: func(in *Input, report *Reporter) {
		for _, m := range measures(lineHeightValue, in.Content) {
			if m.value > maxMobileLineHeight {
				report.Warn("lineHeight %s too high for mobile. Mobile text needs tighter spacing (1.3-1.5).", m.raw)
			}
		}
	},
}

var FontSizeRange = Rule{
	ID:          "font-size-range",
	Category:    "Typography",
	Description: "Every fontSize outside 12..32.",
	Check: func(in *Input, report *Reporter) {
		for _, m := range measures(fontSizeValue, in.Content) {
			switch {
			case m.value < minFontSize:
				report.Warn("fontSize %spx below 12px minimum readability.", m.raw)
			case m.value > maxFontSize:
				report.Warn("fontSize %spx very large. Consider using responsive scaling.", m.raw)
			}
		}
	},
}

var IOSTypeScale = Rule{
	ID:          "ios-type-scale",
	Category:    "iOS Typography",
	Description: "Most font sizes should sit on the iOS text style scale.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		sizes := measures(fontSizeValue, in.Content)
		if len(sizes) <= 3 {
			return
		}
		matching := 0
		for _, m := range sizes {
			if onIOSScale(m.value) {
				matching++
			}
		}
		if float64(matching) < float64(len(sizes))/2 {
			report.Warn("Font sizes don't match iOS type scale. Consider iOS text styles for native feel.")
		}
	},
}

var AndroidSpUnits = Rule{
	ID:          "android-sp-units",
	Category:    "Android Typography",
	Description: "Material display/headline typography should be sized in sp.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		material := has(materialDisplay, in.Content) || has(materialHeadline, in.Content)
		if material && !has(spUnit, in.Content) {
			report.Warn("Material typography detected without sp units. Use sp for text to respect user font size preferences.")
		}
	},
}

// ModularScale checks the first few ratios between consecutive distinct font
// sizes and reports the first one that matches no recognized scale.
var ModularScale = Rule{
	ID:          "modular-scale",
	Category:    "Typography",
	Description: "Font sizes should follow a consistent modular scale ratio.",
	Check: func(in *Input, report *Reporter) {
		sizes := measures(fontSizeNumber, in.Content)
		if len(sizes) <= 3 {
			return
		}
		if ratio, ok := offScaleRatio(sizes); ok {
			report.Warn("Font sizes may not follow modular scale (ratio: %.2f). Consider consistent ratio.", ratio)
		}
	},
}

var LineLength = Rule{
	ID:          "line-length",
	Category:    "Mobile Typography",
	Description: "Long text blocks need a max width to stay within 40-60 characters per line.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		if has(longTextLiteral, in.Content) && !has(textMaxWidth, in.Content) {
			report.Warn("Text without max-width constraint. Mobile text should be 40-60 characters per line for readability.")
		}
	},
}

var FontWeightBalance = Rule{
	ID:          "font-weight-balance",
	Category:    "Mobile Typography",
	Description: "Bold weights should not outnumber regular weights.",
	Requires:    detector.ReactNative,
	Check: func(in *Input, report *Reporter) {
		bold, regular := 0, 0
		for _, token := range captures(fontWeightValue, in.Content) {
			if named, ok := namedFontWeights[token]; ok {
				token = named
			}
			weight, err := strconv.Atoi(token)
			if err != nil {
				continue
			}
			switch {
			case weight >= 700:
				bold++
			case weight >= 400 && weight < 500:
				regular++
			}
		}
		if bold > regular {
			report.Warn("More bold weights than regular. Mobile typography should be regular-dominant for readability.")
		}
	},
}

func onIOSScale(size float64) bool {
	for _, s := range iosTypeScale {
		if math.Abs(size-s) < 1 {
			return true
		}
	}
	return false
}

// offScaleRatio returns the first of the leading consecutive ratios between
// sorted distinct sizes that is not within tolerance of a scale ratio.
func offScaleRatio(sizes []measure) (float64, bool) {
	seen := make(map[float64]struct{}, len(sizes))
	var distinct []float64
	for _, m := range sizes {
		if _, ok := seen[m.value]; ok {
			continue
		}
		seen[m.value] = struct{}{}
		distinct = append(distinct, m.value)
	}
	sort.Float64s(distinct)

	var ratios []float64
	for i := 1; i < len(distinct); i++ {
		if distinct[i-1] > 0 {
			ratios = append(ratios, distinct[i]/distinct[i-1])
		}
	}
	if len(ratios) > modularScaleRatios {
		ratios = ratios[:modularScaleRatios]
	}

	for _, ratio := range ratios {
		if !nearScaleRatio(ratio) {
			return ratio, true
		}
	}
	return 0, false
}

func nearScaleRatio(ratio float64) bool {
	for _, r := range scaleRatios {
		if math.Abs(ratio-r) < modularScaleTolerance {
			return true
		}
	}
	return false
}
