package internal

// Language names understood by the doctype and content-type tables
const (
	LangCSS   = "css"
	LangFBJS  = "fbjs"
	LangFBML  = "fbml"
	LangHTML  = "html"
	LangJS    = "js"
	LangJSON  = "json"
	LangMHTML = "mhtml"
	LangText  = "text"
	LangWML   = "wml"
	LangXHTML = "xhtml"
	LangXML   = "xml"
)

// Dialect names
const (
	DialectNone         = ""
	DialectStrict       = "strict"
	DialectTransitional = "transitional"
	DialectFrameset     = "frameset"
	DialectMobile       = "mobile"
)

// MIME content types
const (
	ContentTypeCSS         = "text/css"
	ContentTypeHTML        = "text/html"
	ContentTypeJS          = "application/javascript"
	ContentTypeJSON        = "application/json"
	ContentTypeText        = "text/plain"
	ContentTypeWML         = "text/vnd.wap.wml"
	ContentTypeXHTML       = "application/xhtml+xml"
	ContentTypeXHTMLMobile = "application/vnd.wap.xhtml+xml"
	ContentTypeXML         = "application/xml"
	ContentTypeTextXML     = "text/xml"
	ContentTypeForm        = "application/x-www-form-urlencoded"
	ContentTypeOctetStream = "application/octet-stream"
)

// Response format tokens
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// Request parsing separators
const (
	QuerySeparator      = "?"
	AcceptSeparator     = ","
	AcceptParamSep      = ";"
	ExtensionSeparator  = "."
	MediaTypeSubtypeSep = "/"
)
