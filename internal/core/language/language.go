// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package language

import "github.com/duongnk/eventide/internal/platform/constants"

// Language describes one display language the site can render.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

// Supported lists the display languages in presentation order. The first
// entry is the platform default.
var Supported = []Language{
	{Code: constants.DefaultLanguage, Name: "English", NativeName: "English"},
	{Code: constants.SecondaryLanguage, Name: "Vietnamese", NativeName: "Tiếng Việt"},
}

// Normalize maps an arbitrary code onto a supported language code. Unknown
// or empty codes collapse to the platform default.
func Normalize(code string) string {
	for _, lang := range Supported {
		if lang.Code == code {
			return lang.Code
		}
	}
	return constants.DefaultLanguage
}

// IsSupported reports whether code names a selectable display language.
func IsSupported(code string) bool {
	for _, lang := range Supported {
		if lang.Code == code {
			return true
		}
	}
	return false
}
