// Package i18n canonicalises locale selectors into the language tokens the resume
// backend understands and holds the section titles shown for each language.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/khoahotran/resume-portal/pkg/apperror"
)

const (
	English = "en"
	Chinese = "zh"
)

// Supported lists the backend tokens in preference order.
var Supported = []string{English, Chinese}

var backendTokens = map[language.Base]string{
	mustBase("en"): English,
	mustBase("zh"): Chinese,
}

func mustBase(s string) language.Base {
	b, err := language.ParseBase(s)
	if err != nil {
		panic(err)
	}
	return b
}

// UnsupportedLanguageError is returned for any selector outside the supported set.
// It unwraps to apperror.ErrInvalidInput.
type UnsupportedLanguageError struct {
	Input string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q (supported: %s)", e.Input, strings.Join(Supported, ", "))
}

func (e *UnsupportedLanguageError) Unwrap() error {
	return apperror.ErrInvalidInput
}

// FormatLanguage maps a locale selector such as "en", "en-US", "zh_CN" or "zh-Hant"
// to the backend token. It never falls back to a default.
func FormatLanguage(lang string) (string, error) {
	trimmed := strings.TrimSpace(lang)
	if trimmed == "" {
		return "", &UnsupportedLanguageError{Input: lang}
	}
	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return "", &UnsupportedLanguageError{Input: lang}
	}
	base, confidence := tag.Base()
	if confidence != language.Exact {
		return "", &UnsupportedLanguageError{Input: lang}
	}
	token, ok := backendTokens[base]
	if !ok {
		return "", &UnsupportedLanguageError{Input: lang}
	}
	return token, nil
}
