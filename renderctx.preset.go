package renderctx

import (
	"strconv"
	"strings"
)

// presetLanguage describes how a language fills in missing preset parts.
type presetLanguage struct {
	// shorthands maps a version written inside the language token ("html4")
	// to the version it stands for.
	shorthands map[string]float64
	// baseline returns the version used when the preset gives none.
	baseline func(d Dialect) float64
}

// presetLanguages lists the languages MakeContext can build.
var presetLanguages = map[Language]presetLanguage{
	LanguageHTML: {
		shorthands: map[string]float64{ShorthandHTML4Token: ShorthandHTML4Version},
		baseline: func(d Dialect) float64 {
			if d == DialectNone {
				return BaselineHTMLVersion
			}
			return BaselineHTMLDialectVersion
		},
	},
	LanguageXHTML: {
		shorthands: map[string]float64{ShorthandXHTML1Token: ShorthandXHTML1Version},
		baseline: func(d Dialect) float64 {
			if d == DialectNone {
				return BaselineXHTMLVersion
			}
			return BaselineXHTMLDialectVer
		},
	},
}

var presetDialects = map[Dialect]struct{}{
	DialectStrict:       {},
	DialectTransitional: {},
	DialectFrameset:     {},
	DialectMobile:       {},
}

// ParsePreset parses a preset token of the form language[-version[-dialect]].
// The language part may carry the version directly ("html4-strict",
// "xhtml1.1-mobile"); a missing version defaults to a per-language baseline
// and a missing dialect to DialectNone. The resulting profile is not
// validated against the doctype table.
func ParsePreset(token string) (Profile, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	if normalized == "" {
		return Profile{}, NewInvalidPresetError(token, ErrMsgPresetEmpty)
	}

	parts := strings.Split(normalized, PresetSeparator)
	if len(parts) > PresetMaxParts {
		return Profile{}, NewInvalidPresetError(token, ErrMsgPresetTooManyParts)
	}

	langToken, inlineVersion := splitLanguageToken(parts[0])
	lang := Language(langToken)
	spec, ok := presetLanguages[lang]
	if !ok {
		return Profile{}, NewInvalidPresetError(token, ErrMsgPresetUnknownLang)
	}

	rest := parts[1:]
	versionToken := inlineVersion
	if versionToken == "" && len(rest) > 0 && looksNumeric(rest[0]) {
		versionToken = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 1 {
		return Profile{}, NewInvalidPresetError(token, ErrMsgPresetTooManyParts)
	}

	dialect := DialectNone
	if len(rest) == 1 {
		dialect = Dialect(rest[0])
		if _, ok := presetDialects[dialect]; !ok {
			return Profile{}, NewInvalidPresetError(token, ErrMsgPresetUnknownDialect)
		}
	}

	var version float64
	switch {
	case versionToken == "":
		version = spec.baseline(dialect)
	default:
		if v, ok := spec.shorthands[versionToken]; ok {
			version = v
			break
		}
		v, err := strconv.ParseFloat(versionToken, 64)
		if err != nil || v < 0 {
			return Profile{}, NewInvalidPresetError(token, ErrMsgPresetInvalidVersion)
		}
		version = v
	}

	return Profile{Language: lang, Version: version, Dialect: dialect}, nil
}

// MakeContext builds a RenderContext from a preset token.
// Returns an InvalidPreset error, and no context, for unrecognized tokens.
func MakeContext(token string) (*RenderContext, error) {
	p, err := ParsePreset(token)
	if err != nil {
		return nil, err
	}
	return NewRenderContext(p), nil
}

// MustMakeContext builds a RenderContext from a preset token and panics on error.
func MustMakeContext(token string) *RenderContext {
	c, err := MakeContext(token)
	if err != nil {
		panic(err)
	}
	return c
}

// splitLanguageToken splits "xhtml1.1" into "xhtml" and "1.1".
func splitLanguageToken(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	return s[0] == '.' || (s[0] >= '0' && s[0] <= '9')
}
