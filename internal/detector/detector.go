// Package detector decides which mobile framework a source file belongs to.
package detector

import (
	"regexp"
	"strings"
)

// Flags is a set of framework capability bits derived from file content.
type Flags uint8

const (
	// ReactNative is set for React Native / React Navigation sources.
	ReactNative Flags = 1 << iota
	// Flutter is set for Flutter / Dart widget sources.
	Flutter
)

var (
	reactNativeSignature = regexp.MustCompile(`react-native|@react-navigation|React\.Native`)
	flutterSignature     = regexp.MustCompile(`import 'package:flutter|MaterialApp|Widget\.build`)
)

// Detect returns the framework flags for content. It never fails; unknown
// content yields no flags.
func Detect(content string) Flags {
	var flags Flags
	if reactNativeSignature.MatchString(content) {
		flags |= ReactNative
	}
	if flutterSignature.MatchString(content) {
		flags |= Flutter
	}
	return flags
}

// Has reports whether every bit in required is set.
func (f Flags) Has(required Flags) bool {
	return f&required == required
}

// InScope reports whether any framework was detected.
func (f Flags) InScope() bool {
	return f != 0
}

// String lists the set flags, e.g. "react-native,flutter".
func (f Flags) String() string {
	var names []string
	if f&ReactNative != 0 {
		names = append(names, "react-native")
	}
	if f&Flutter != 0 {
		names = append(names, "flutter")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
