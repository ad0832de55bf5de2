package renderctx

import "github.com/itsatony/go-renderctx/internal"

// Language identifies a markup or serialization target.
type Language string

// Supported languages
const (
	LanguageCSS   Language = internal.LangCSS
	LanguageFBJS  Language = internal.LangFBJS
	LanguageFBML  Language = internal.LangFBML
	LanguageHTML  Language = internal.LangHTML
	LanguageJS    Language = internal.LangJS
	LanguageJSON  Language = internal.LangJSON
	LanguageMHTML Language = internal.LangMHTML
	LanguageText  Language = internal.LangText
	LanguageWML   Language = internal.LangWML
	LanguageXHTML Language = internal.LangXHTML
	LanguageXML   Language = internal.LangXML
)

// Dialect identifies a sub-variant of a language.
type Dialect string

// Supported dialects
const (
	DialectNone         Dialect = internal.DialectNone
	DialectStrict       Dialect = internal.DialectStrict
	DialectTransitional Dialect = internal.DialectTransitional
	DialectFrameset     Dialect = internal.DialectFrameset
	DialectMobile       Dialect = internal.DialectMobile
)

// Content type constants
const (
	ContentTypeCSS         = internal.ContentTypeCSS
	ContentTypeHTML        = internal.ContentTypeHTML
	ContentTypeJS          = internal.ContentTypeJS
	ContentTypeJSON        = internal.ContentTypeJSON
	ContentTypeText        = internal.ContentTypeText
	ContentTypeWML         = internal.ContentTypeWML
	ContentTypeXHTML       = internal.ContentTypeXHTML
	ContentTypeXHTMLMobile = internal.ContentTypeXHTMLMobile
	ContentTypeXML         = internal.ContentTypeXML
	ContentTypeTextXML     = internal.ContentTypeTextXML
	ContentTypeForm        = internal.ContentTypeForm
	ContentTypeOctetStream = internal.ContentTypeOctetStream
)

// XMLDeclaration is emitted ahead of XML and XHTML documents.
const XMLDeclaration = `<?xml version="1.0" encoding="utf-8" ?>`

// Line terminator used by pre-content and comments
const Newline = "\n"

// Preset tokens accepted by MakeContext
const (
	PresetHTML4Strict        = "html-4.01-strict"
	PresetHTML4Transitional  = "html-4.01-transitional"
	PresetHTML4Frameset      = "html-4.01-frameset"
	PresetHTML5              = "html-5"
	PresetXHTML1Strict       = "xhtml-1.0-strict"
	PresetXHTML1Transitional = "xhtml-1.0-transitional"
	PresetXHTML1Frameset     = "xhtml-1.0-frameset"
	PresetXHTML1Mobile       = "xhtml-1.0-mobile"
	PresetXHTML11            = "xhtml-1.1"
	PresetXHTML11Mobile      = "xhtml-1.1-mobile"
	PresetXHTML12Mobile      = "xhtml-1.2-mobile"
)

// Preset token syntax
const (
	PresetSeparator = "-"
	PresetMaxParts  = 3
)

// Baseline versions applied when a preset omits the version
const (
	BaselineHTMLVersion        = 5
	BaselineHTMLDialectVersion = 4.01
	BaselineXHTMLVersion       = 1.1
	BaselineXHTMLDialectVer    = 1.0
)

// Version shorthands accepted inside the language part of a preset ("html4", "xhtml1")
const (
	ShorthandHTML4Token    = "4"
	ShorthandHTML4Version  = 4.01
	ShorthandXHTML1Token   = "1"
	ShorthandXHTML1Version = 1.0
)

// HTTP header names and value formatting
const (
	HeaderContentType        = "Content-Type"
	HeaderAccept             = "Accept"
	HeaderHost               = "Host"
	HeaderValueSeparator     = ", "
	ContentTypeCharsetSuffix = "; charset=utf-8"
)

// Default configuration values
const (
	DefaultMiddlewarePreset  = PresetHTML5
	DefaultStrictContentType = false
	DefaultXMLVersion        = 1.0
	DefaultMaxBodySize       = 1 << 20 // 1 MiB
	DefaultMetricsNamespace  = "renderctx"
	DefaultMetricsSubsystem  = "http"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyLanguage = "language"
	MetaKeyVersion  = "version"
	MetaKeyDialect  = "dialect"
	MetaKeyPreset   = "preset"
	MetaKeyReason   = "reason"
	MetaKeyType     = "type"
	MetaKeyFormat   = "format"
)

// Log messages - ALL log messages are constants
const (
	LogMsgContextPushed     = "render context pushed"
	LogMsgContextPopped     = "render context popped"
	LogMsgStackUnderflow    = "pop on empty render context stack"
	LogMsgStackReset        = "render context stack reset"
	LogMsgFormatNegotiated  = "response format negotiated"
	LogMsgFormatUnresolved  = "no response format resolved"
	LogMsgContextSelected   = "render context selected for request"
	LogMsgBodyReadFailed    = "failed to read request body"
	LogMsgBodyTooLarge      = "request body exceeds size limit"
	LogMsgDebugMessage      = "debug message"
	LogMsgConfigLoaded      = "render context config loaded"
	LogMsgMiddlewareCreated = "render context middleware created"
)

// Log field names
const (
	LogFieldLanguage    = "language"
	LogFieldVersion     = "version"
	LogFieldDialect     = "dialect"
	LogFieldDepth       = "depth"
	LogFieldFormat      = "format"
	LogFieldSource      = "source"
	LogFieldContentType = "content_type"
	LogFieldPath        = "path"
	LogFieldVerb        = "verb"
	LogFieldPreset      = "preset"
	LogFieldFormats     = "formats"
	LogFieldStrict      = "strict"
	LogFieldMessage     = "message"
	LogFieldLimit       = "limit"
)
