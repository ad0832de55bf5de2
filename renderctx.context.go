package renderctx

import (
	"strings"
	"sync"
)

// RenderContext binds a Profile to the rendering facts derived from it.
// A RenderContext is frozen once built, so its memoized content types can
// never go stale and it can be shared between goroutines.
type RenderContext struct {
	profile Profile

	strictOnce  sync.Once
	strictType  string
	lenientOnce sync.Once
	lenientType string
}

// NewRenderContext creates a context for the given profile.
// The profile is not validated; derivations report errors instead.
func NewRenderContext(p Profile) *RenderContext {
	return &RenderContext{profile: p}
}

// Profile returns a copy of the context's profile.
func (c *RenderContext) Profile() Profile {
	return c.profile
}

// Language returns the markup language.
func (c *RenderContext) Language() Language {
	return c.profile.Language
}

// Version returns the language version, 0 when unversioned.
func (c *RenderContext) Version() float64 {
	return c.profile.Version
}

// Dialect returns the language dialect.
func (c *RenderContext) Dialect() Dialect {
	return c.profile.Dialect
}

// Doctype returns the document type declaration for this context.
// Returns an UnsupportedProfile error when the profile has no table entry,
// and an empty string for languages without a doctype.
func (c *RenderContext) Doctype() (string, error) {
	return LookupDoctype(c.profile)
}

// ContentType returns the MIME type for this context. With strict unset,
// XHTML is served as text/html. The result is computed once per flag.
func (c *RenderContext) ContentType(strict bool) string {
	if strict {
		c.strictOnce.Do(func() {
			c.strictType = ContentTypeFor(c.profile.Language, c.profile.Dialect, true)
		})
		return c.strictType
	}
	c.lenientOnce.Do(func() {
		c.lenientType = ContentTypeFor(c.profile.Language, c.profile.Dialect, false)
	})
	return c.lenientType
}

// IsXMLSyntax reports whether output in this context must be well-formed XML.
func (c *RenderContext) IsXMLSyntax() bool {
	return IsXMLSyntax(c.profile.Language)
}

// RenderPreContent returns everything that precedes the document body: the
// XML declaration for XML and XHTML documents, then the doctype line.
func (c *RenderContext) RenderPreContent() (string, error) {
	doctype, err := c.Doctype()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if c.IsXMLSyntax() && (c.profile.Language == LanguageXML || c.profile.Language == LanguageXHTML) {
		b.WriteString(XMLDeclaration)
		b.WriteString(Newline)
	}
	if doctype != "" {
		b.WriteString(doctype)
		b.WriteString(Newline)
	}
	return b.String(), nil
}

// String returns the profile in preset token form.
func (c *RenderContext) String() string {
	return c.profile.String()
}

// Builder configures a profile before freezing it into a RenderContext.
// Setters never fail.
type Builder struct {
	profile Profile
}

// NewBuilder starts an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuilderFrom starts a builder pre-populated with an existing context's profile.
func BuilderFrom(c *RenderContext) *Builder {
	return &Builder{profile: c.profile}
}

// Language sets the markup language.
func (b *Builder) Language(l Language) *Builder {
	b.profile.Language = l
	return b
}

// Version sets the language version.
func (b *Builder) Version(v float64) *Builder {
	b.profile.Version = v
	return b
}

// Dialect sets the dialect.
func (b *Builder) Dialect(d Dialect) *Builder {
	b.profile.Dialect = d
	return b
}

// Profile returns the profile configured so far.
func (b *Builder) Profile() Profile {
	return b.profile
}

// Build freezes the configured profile into a new RenderContext.
// The builder can be reused; later changes do not affect built contexts.
func (b *Builder) Build() *RenderContext {
	return NewRenderContext(b.profile)
}
