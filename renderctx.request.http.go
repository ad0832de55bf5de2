package renderctx

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

// HeadersFromHTTP captures request headers into the flat map used by Request.
// Names are canonicalized ("content-type" becomes "Content-Type") and
// repeated values are joined with ", ". The Host header, which net/http keeps
// outside the header map, is included when set.
func HeadersFromHTTP(req *http.Request) map[string]string {
	headers := make(map[string]string, len(req.Header)+1)
	for name, values := range req.Header {
		headers[http.CanonicalHeaderKey(name)] = strings.Join(values, HeaderValueSeparator)
	}
	if req.Host != "" {
		headers[HeaderHost] = req.Host
	}
	return headers
}

// RequestFromHTTP builds a Request from an incoming HTTP request.
// The verb is upper-cased, only the first value of each query argument is
// kept, and the body is read fully and replaced so later handlers can read
// it again.
func RequestFromHTTP(req *http.Request) (*Request, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		_ = req.Body.Close()
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	query := req.URL.Query()
	args := make(map[string]string, len(query))
	for name := range query {
		args[name] = query.Get(name)
	}

	return NewRequest(
		req.URL.RequestURI(),
		strings.ToUpper(req.Method),
		args,
		string(body),
		HeadersFromHTTP(req),
		FormatNone,
	), nil
}
