package renderctx

import (
	"fmt"

	"github.com/itsatony/go-renderctx/internal"
)

// Profile is the (language, version, dialect) triple describing a markup or
// serialization target. Any combination can be represented; validity is only
// checked when a doctype is derived.
type Profile struct {
	Language Language `yaml:"language" json:"language"`
	Version  float64  `yaml:"version" json:"version"`
	Dialect  Dialect  `yaml:"dialect" json:"dialect"`
}

// Validate returns an UnsupportedProfile error when the triple has no
// doctype table entry.
func (p Profile) Validate() error {
	_, err := LookupDoctype(p)
	return err
}

// String renders the profile in preset token form (e.g. "html-4.01-strict").
func (p Profile) String() string {
	s := string(p.Language)
	if p.Version != 0 {
		s += PresetSeparator + formatVersion(p.Version)
	}
	if p.Dialect != DialectNone {
		s += PresetSeparator + string(p.Dialect)
	}
	return s
}

// GoString implements fmt.GoStringer for readable test failures.
func (p Profile) GoString() string {
	return fmt.Sprintf("renderctx.Profile{%q, %s, %q}", p.Language, formatVersion(p.Version), p.Dialect)
}

// LookupDoctype returns the document type declaration for a profile.
// Languages with no doctype concept return an empty string.
func LookupDoctype(p Profile) (string, error) {
	doctype, ok := internal.LookupDoctype(string(p.Language), p.Version, string(p.Dialect))
	if !ok {
		return "", NewUnsupportedProfileError(p)
	}
	return doctype, nil
}

// ContentTypeFor classifies a language and dialect into a MIME type.
// Unrecognized languages map to application/octet-stream.
func ContentTypeFor(language Language, dialect Dialect, strict bool) string {
	return internal.ContentTypeFor(string(language), string(dialect), strict)
}

// IsXMLSyntax reports whether the language is serialized as XML.
func IsXMLSyntax(language Language) bool {
	return internal.IsXMLSyntax(string(language))
}
