package internal

// doctypeKey identifies one (language, version, dialect) row of the table.
type doctypeKey struct {
	language string
	version  float64
	dialect  string
}

// key builds a table key. Versions match exactly: 4.014 is not 4.01.
func key(language string, version float64, dialect string) doctypeKey {
	return doctypeKey{language: language, version: version, dialect: dialect}
}

// doctypes lists every markup triple that carries a document type declaration.
// Triples absent from this map are rejected, which is what turns near misses
// such as html/3 or xhtml/1.05/strict into errors.
var doctypes = map[doctypeKey]string{
	key(LangHTML, 2, DialectNone):   `<!DOCTYPE HTML PUBLIC "-//IETF//DTD HTML//EN">`,
	key(LangHTML, 3.2, DialectNone): `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 3.2 Final//EN">`,

	key(LangHTML, 4.01, DialectStrict):       `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
	key(LangHTML, 4.01, DialectTransitional): `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`,
	key(LangHTML, 4.01, DialectFrameset):     `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN" "http://www.w3.org/TR/html4/frameset.dtd">`,

	key(LangHTML, 5, DialectNone): `<!DOCTYPE html>`,

	key(LangXHTML, 1.0, DialectStrict):       `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`,
	key(LangXHTML, 1.0, DialectTransitional): `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`,
	key(LangXHTML, 1.0, DialectFrameset):     `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Frameset//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd">`,

	key(LangXHTML, 1.1, DialectNone): `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd">`,

	key(LangXHTML, 1.0, DialectMobile): `<!DOCTYPE html PUBLIC "-//WAPFORUM//DTD XHTML Mobile 1.0//EN" "http://www.wapforum.org/DTD/xhtml-mobile10.dtd">`,
	key(LangXHTML, 1.1, DialectMobile): `<!DOCTYPE html PUBLIC "-//WAPFORUM//DTD XHTML Mobile 1.1//EN" "http://www.openmobilealliance.org/tech/DTD/xhtml-mobile11.dtd">`,
	key(LangXHTML, 1.2, DialectMobile): `<!DOCTYPE html PUBLIC "-//WAPFORUM//DTD XHTML Mobile 1.2//EN" "http://www.openmobilealliance.org/tech/DTD/xhtml-mobile12.dtd">`,
}

// doctypeless languages are valid for any version and dialect but never
// emit a declaration.
var doctypeless = map[string]struct{}{
	LangCSS:   {},
	LangFBJS:  {},
	LangFBML:  {},
	LangJS:    {},
	LangJSON:  {},
	LangMHTML: {},
	LangText:  {},
	LangWML:   {},
	LangXML:   {},
}

// xmlSyntax languages are serialized with XML well-formedness rules.
var xmlSyntax = map[string]struct{}{
	LangFBML:  {},
	LangWML:   {},
	LangXHTML: {},
	LangXML:   {},
}

// LookupDoctype returns the declaration for a markup triple.
// The boolean is false when the triple has no entry.
func LookupDoctype(language string, version float64, dialect string) (string, bool) {
	if _, ok := doctypeless[language]; ok {
		return "", true
	}
	doctype, ok := doctypes[key(language, version, dialect)]
	return doctype, ok
}

// ContentTypeFor classifies a language and dialect into a MIME type.
// With strict unset, XHTML (other than the mobile profile) degrades to
// text/html for clients that cannot be trusted with application/xhtml+xml.
func ContentTypeFor(language, dialect string, strict bool) string {
	switch language {
	case LangHTML:
		return ContentTypeHTML
	case LangXHTML:
		if dialect == DialectMobile {
			return ContentTypeXHTMLMobile
		}
		if !strict {
			return ContentTypeHTML
		}
		return ContentTypeXHTML
	case LangJS, LangFBJS:
		return ContentTypeJS
	case LangXML, LangFBML:
		return ContentTypeXML
	case LangJSON:
		return ContentTypeJSON
	case LangCSS:
		return ContentTypeCSS
	case LangText:
		return ContentTypeText
	case LangMHTML:
		return ContentTypeXHTMLMobile
	case LangWML:
		return ContentTypeWML
	default:
		return ContentTypeOctetStream
	}
}

// IsXMLSyntax reports whether the language uses XML syntax.
func IsXMLSyntax(language string) bool {
	_, ok := xmlSyntax[language]
	return ok
}
