package main

import "time"

// Command names
const (
	CmdNameDoctype     = "doctype"
	CmdNameContentType = "contenttype"
	CmdNamePreContent  = "precontent"
	CmdNameNegotiate   = "negotiate"
	CmdNameServe       = "serve"
	CmdNameVersion     = "version"
	CmdNameHelp        = "help"
)

// Flag names - long form
const (
	FlagPreset      = "preset"
	FlagLanguage    = "language"
	FlagLangVersion = "lang-version"
	FlagDialect     = "dialect"
	FlagConfig      = "config"
	FlagStrict      = "strict"
	FlagOutput      = "output"
	FlagFormat      = "format"
	FlagURL         = "url"
	FlagAccept      = "accept"
	FlagCanonical   = "canonical"
	FlagForce       = "force"
	FlagBody        = "body"
	FlagContentType = "content-type"
	FlagAddr        = "addr"
	FlagDebug       = "debug"
	FlagVerbose     = "verbose"
)

// Flag names - short form
const (
	FlagPresetShort      = "p"
	FlagLanguageShort    = "l"
	FlagLangVersionShort = "V"
	FlagDialectShort     = "d"
	FlagConfigShort      = "c"
	FlagOutputShort      = "o"
	FlagFormatShort      = "F"
	FlagURLShort         = "u"
	FlagAcceptShort      = "a"
	FlagBodyShort        = "b"
	FlagAddrShort        = "A"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
	FlagDefaultAddr   = "127.0.0.1:8080"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgNoCommand          = "no command specified"
	ErrMsgUnknownCommand     = "unknown command"
	ErrMsgInvalidFlags       = "invalid flags"
	ErrMsgInvalidFormat      = "invalid output format"
	ErrMsgConflictingProfile = "use either --preset or --language, not both"
	ErrMsgMissingURL         = "request URL required"
	ErrMsgUnknownResponse    = "unknown response format"
	ErrMsgLoadConfigFailed   = "failed to load config"
	ErrMsgProfileFailed      = "invalid render context"
	ErrMsgReadStdinFailed    = "failed to read from stdin"
	ErrMsgWriteOutputFailed  = "failed to write output"
	ErrMsgDecodeBodyFailed   = "failed to decode request body"
	ErrMsgServerFailed       = "server error"
	ErrMsgSetupFailed        = "failed to set up server"
)

// Help text templates
const (
	HelpMainUsage = `go-renderctx - Render context and response format CLI

Usage:
    renderctx <command> [options]

Commands:
    doctype      Show the doctype of a render context
    contenttype  Show the content type of a render context
    precontent   Print the XML declaration and doctype of a render context
    negotiate    Resolve the response format of a request
    serve        Serve render contexts over HTTP
    version      Show version information
    help         Show help for a command

Use "renderctx help <command>" for more information about a command.`

	helpProfileOptions = `    -p, --preset <token>         Preset token, e.g. html-4.01-strict or xhtml1-strict
    -l, --language <lang>        Language (html, xhtml, xml, json, js, css, ...)
    -V, --lang-version <number>  Language version
    -d, --dialect <dialect>      Dialect (strict, transitional, frameset, mobile)
    -c, --config <file>          YAML config providing the default preset`

	HelpDoctypeUsage = `Show the doctype of a render context

Usage:
    renderctx doctype [options]

Options:
` + helpProfileOptions + `
    -F, --format <format>        Output format: text, json (default: text)
    -o, --output <file>          Output file (default: stdout)

Examples:
    renderctx doctype -p html-4.01-strict
    renderctx doctype -l xhtml -V 1.1 -F json`

	HelpContentTypeUsage = `Show the content type of a render context

Usage:
    renderctx contenttype [options]

Options:
` + helpProfileOptions + `
    --strict                     Serve XHTML as application/xhtml+xml
    -F, --format <format>        Output format: text, json (default: text)
    -o, --output <file>          Output file (default: stdout)

Examples:
    renderctx contenttype -p xhtml-1.0-strict --strict
    renderctx contenttype -l json`

	HelpPreContentUsage = `Print the XML declaration and doctype of a render context

Usage:
    renderctx precontent [options]

Options:
` + helpProfileOptions + `
    -o, --output <file>          Output file (default: stdout)

Examples:
    renderctx precontent -p xhtml-1.1 -o header.html`

	HelpNegotiateUsage = `Resolve the response format of a request

Usage:
    renderctx negotiate [options]

Options:
    -u, --url <url>              Request URL
    -a, --accept <header>        Accept header value
    --canonical <format>         Canonical format (json, xml)
    --force <format>             Forced format (json, xml)
    -b, --body <file>            Request body file (use "-" for stdin)
    --content-type <type>        Content-Type of the request body
    -F, --format <format>        Output format: text, json (default: text)
    -o, --output <file>          Output file (default: stdout)

Examples:
    renderctx negotiate -u /users.json
    renderctx negotiate -u /users -a "application/xml, application/json"
    echo '{"name":"ada"}' | renderctx negotiate -u /users -b - -F json`

	HelpServeUsage = `Serve render contexts over HTTP

Every request is answered in the negotiated format. Metrics are exposed
on /metrics.

Usage:
    renderctx serve [options]

Options:
    -A, --addr <address>         Listen address (default: 127.0.0.1:8080)
    -c, --config <file>          YAML config for the middleware
    --debug                      Emit debug comments in responses
    --verbose                    Log every request

Examples:
    renderctx serve -c renderctx.yaml
    curl -H 'Accept: application/json' http://127.0.0.1:8080/users`

	HelpVersionUsage = `Show version information

Usage:
    renderctx version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    renderctx help [command]

Commands:
    doctype      Show help for doctype command
    contenttype  Show help for contenttype command
    precontent   Show help for precontent command
    negotiate    Show help for negotiate command
    serve        Show help for serve command
    version      Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-renderctx version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Negotiation output
const (
	NegotiateTextTemplate = "format: %s\nsource: %s\nurl: %s\nclean_url: %s"
	NegotiateBodyTemplate = "body_type: %s"
	NegotiateNoFormat     = "none"
)

// Serve settings
const (
	ServeMetricsPath     = "/metrics"
	ServeRootPath        = "/"
	ServeReadTimeout     = 10 * time.Second
	ServeWriteTimeout    = 10 * time.Second
	ServeShutdownTimeout = 5 * time.Second
	ServeXMLRoot         = "response"
	ServeXMLPath         = "path"
	ServeXMLFormat       = "format"
	ServeListeningMsg    = "listening on %s\n"
	ServeStoppedMsg      = "server stopped"
	ServeDebugTemplate   = "context %s, format source %s"
)

// CLI metadata
const (
	CLIName        = "renderctx"
	CLIDescription = "Render context and response format CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
