package renderctx

import (
	"github.com/itsatony/go-renderctx/internal"
)

// Format is a response serialization token such as "json" or "xml".
type Format string

// Recognized response formats
const (
	FormatNone Format = ""
	FormatJSON Format = internal.FormatJSON
	FormatXML  Format = internal.FormatXML
)

// FormatSource records which signal decided a request's response format.
type FormatSource string

// Format sources, in precedence order
const (
	FormatSourceForced    FormatSource = "forced"
	FormatSourceCanonical FormatSource = "canonical"
	FormatSourceSuffix    FormatSource = "suffix"
	FormatSourceAccept    FormatSource = "accept"
	FormatSourceNone      FormatSource = "none"
)

// ParseFormat normalizes a format string. Returns false for unknown formats.
func ParseFormat(value string) (Format, bool) {
	switch Format(value) {
	case FormatJSON, FormatXML:
		return Format(value), true
	default:
		return FormatNone, false
	}
}

// Request is a REST request as seen by the response negotiator: the path,
// verb, query arguments, body and captured headers, plus the response format
// resolved from them.
//
// The format is resolved with fixed precedence: a format forced with
// SetResponseFormat, then the canonical format given to NewRequest, then a
// recognized path suffix (".json", ".xml"), then the first recognized media
// type in the Accept header. Accept q weights are ignored; list order decides.
type Request struct {
	url      string
	cleanURL string
	verb     string
	args     map[string]string
	body     string
	headers  map[string]string
	matches  []string

	format Format
	source FormatSource
	forced Format
}

// NewRequest creates a request. The query string is stripped from rawURL.
// A non-empty format is taken as already canonical and skips detection.
// Header names are looked up exactly as stored in headers.
func NewRequest(rawURL, verb string, args map[string]string, body string, headers map[string]string, format Format) *Request {
	url := internal.StripQuery(rawURL)
	cleanURL, suffixFormat := internal.SplitSuffix(url)

	if args == nil {
		args = make(map[string]string)
	}
	if headers == nil {
		headers = make(map[string]string)
	}

	r := &Request{
		url:      url,
		cleanURL: cleanURL,
		verb:     verb,
		args:     args,
		body:     body,
		headers:  headers,
		source:   FormatSourceNone,
	}

	switch {
	case format != FormatNone:
		r.format, r.source = format, FormatSourceCanonical
	case suffixFormat != "":
		r.format, r.source = Format(suffixFormat), FormatSourceSuffix
	default:
		if accept, ok := headers[HeaderAccept]; ok {
			if f := internal.FormatFromAccept(accept); f != "" {
				r.format, r.source = Format(f), FormatSourceAccept
			}
		}
	}

	return r
}

// ResponseFormat returns the resolved response format.
// Returns false when no signal determined a format.
func (r *Request) ResponseFormat() (Format, bool) {
	if r.forced != FormatNone {
		return r.forced, true
	}
	return r.format, r.format != FormatNone
}

// ResponseFormatSource reports which signal decided ResponseFormat.
func (r *Request) ResponseFormatSource() FormatSource {
	if r.forced != FormatNone {
		return FormatSourceForced
	}
	return r.source
}

// SetResponseFormat forces the response format, overriding every other
// signal. Passing FormatNone removes the override.
func (r *Request) SetResponseFormat(format Format) *Request {
	r.forced = format
	return r
}

// URL returns the request path without its query string. With
// removeExtension set, a recognized format suffix is stripped too.
func (r *Request) URL(removeExtension bool) string {
	if removeExtension {
		return r.cleanURL
	}
	return r.url
}

// Verb returns the HTTP method.
func (r *Request) Verb() string {
	return r.verb
}

// Args returns the query arguments.
func (r *Request) Args() map[string]string {
	return r.args
}

// HasArg reports whether a query argument is present.
func (r *Request) HasArg(name string) bool {
	_, ok := r.args[name]
	return ok
}

// Arg returns a query argument, or empty string and false.
func (r *Request) Arg(name string) (string, bool) {
	v, ok := r.args[name]
	return v, ok
}

// Headers returns the captured headers.
func (r *Request) Headers() map[string]string {
	return r.headers
}

// HasHeader reports whether a header is present. Lookup is case-sensitive.
func (r *Request) HasHeader(name string) bool {
	_, ok := r.headers[name]
	return ok
}

// Header returns a header value, or empty string and false.
func (r *Request) Header(name string) (string, bool) {
	v, ok := r.headers[name]
	return v, ok
}

// RawBody returns the undecoded request body.
func (r *Request) RawBody() string {
	return r.body
}

// Matches returns the route matches recorded by a dispatcher.
func (r *Request) Matches() []string {
	return r.matches
}

// SetMatches records route matches.
func (r *Request) SetMatches(matches []string) *Request {
	r.matches = matches
	return r
}
