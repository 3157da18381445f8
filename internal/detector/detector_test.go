package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Flags
	}{
		{
			name:    "react native import",
			content: "import { View } from 'react-native';",
			want:    ReactNative,
		},
		{
			name:    "react navigation import",
			content: "import { NavigationContainer } from '@react-navigation/native';",
			want:    ReactNative,
		},
		{
			name:    "flutter package import",
			content: "import 'package:flutter/material.dart';",
			want:    Flutter,
		},
		{
			name:    "flutter root widget",
			content: "return MaterialApp(home: Home());",
			want:    Flutter,
		},
		{
			name:    "both signatures",
			content: "// react-native bridge\nMaterialApp()",
			want:    ReactNative | Flutter,
		},
		{
			name:    "plain javascript",
			content: "const express = require('express');",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != 0, got.InScope())
		})
	}
}

func TestFlagsHas(t *testing.T) {
	both := ReactNative | Flutter
	assert.True(t, both.Has(ReactNative))
	assert.True(t, both.Has(Flutter))
	assert.True(t, Flutter.Has(0))
	assert.False(t, Flutter.Has(ReactNative))
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "none", Flags(0).String())
	assert.Equal(t, "react-native", ReactNative.String())
	assert.Equal(t, "react-native,flutter", (ReactNative | Flutter).String())
}
