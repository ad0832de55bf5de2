package internal

import (
	"regexp"
	"strings"
)

// suffixFormats maps recognized URL extensions to response formats.
var suffixFormats = map[string]string{
	FormatJSON: FormatJSON,
	FormatXML:  FormatXML,
}

// acceptFormats maps media types found in an Accept header to response formats.
var acceptFormats = map[string]string{
	ContentTypeJSON:    FormatJSON,
	ContentTypeXML:     FormatXML,
	ContentTypeTextXML: FormatXML,
}

// Body sniffing patterns, tried in order when no Content-Type is known.
var (
	jsonBodyPattern = regexp.MustCompile(`^\{\s*"[^"]+"\s*:`)
	xmlBodyPattern  = regexp.MustCompile(`(?i)^(?:<\?xml[^?>]+\?>)\s*<[^>]+>`)
	formBodyPattern = regexp.MustCompile(`^[a-zA-Z0-9_.~-]+=[^&]*&`)
)

// StripQuery removes the query string from a request URL.
func StripQuery(url string) string {
	if idx := strings.Index(url, QuerySeparator); idx >= 0 {
		return url[:idx]
	}
	return url
}

// SplitSuffix separates a recognized format extension from a path.
// It returns the path without the extension and the format, or the
// path unchanged and an empty format.
func SplitSuffix(path string) (string, string) {
	idx := strings.LastIndex(path, ExtensionSeparator)
	if idx < 0 {
		return path, ""
	}
	format, ok := suffixFormats[path[idx+1:]]
	if !ok {
		return path, ""
	}
	return path[:idx], format
}

// FormatFromAccept picks the first recognized media type in an Accept header.
// Parameters, including q weights, are discarded: list order alone decides.
func FormatFromAccept(accept string) string {
	for _, entry := range strings.Split(accept, AcceptSeparator) {
		mediaType := strings.TrimSpace(entry)
		if idx := strings.Index(mediaType, AcceptParamSep); idx >= 0 {
			mediaType = strings.TrimSpace(mediaType[:idx])
		}
		if format, ok := acceptFormats[mediaType]; ok {
			return format
		}
	}
	return ""
}

// AcceptsMediaType reports whether an Accept header lists the media type,
// ignoring parameters.
func AcceptsMediaType(accept, mediaType string) bool {
	for _, entry := range strings.Split(accept, AcceptSeparator) {
		candidate := strings.TrimSpace(entry)
		if idx := strings.Index(candidate, AcceptParamSep); idx >= 0 {
			candidate = strings.TrimSpace(candidate[:idx])
		}
		if candidate == mediaType {
			return true
		}
	}
	return false
}

// SniffBodyContentType guesses a request body's media type from its shape.
// Returns empty string when nothing matches.
func SniffBodyContentType(body string) string {
	switch {
	case jsonBodyPattern.MatchString(body):
		return ContentTypeJSON
	case xmlBodyPattern.MatchString(body):
		return ContentTypeXML
	case formBodyPattern.MatchString(body):
		return ContentTypeForm
	default:
		return ""
	}
}
