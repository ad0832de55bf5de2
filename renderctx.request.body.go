package renderctx

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/itsatony/go-renderctx/internal"
)

// BodyContentType returns the body's media type: the Content-Type header
// (parameters removed) when present, otherwise a guess from the body's shape.
// Returns empty string when neither applies.
func (r *Request) BodyContentType() string {
	if ct, ok := r.headers[HeaderContentType]; ok {
		if idx := strings.Index(ct, internal.AcceptParamSep); idx >= 0 {
			ct = ct[:idx]
		}
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return internal.SniffBodyContentType(r.body)
}

// JSONBody decodes the body as a JSON object.
func (r *Request) JSONBody() (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal([]byte(r.body), &out); err != nil {
		return nil, NewBodyDecodeError(ContentTypeJSON, err)
	}
	return out, nil
}

// XMLBody parses the body into an XML document.
func (r *Request) XMLBody() (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(r.body); err != nil {
		return nil, NewBodyDecodeError(ContentTypeXML, err)
	}
	return doc, nil
}

// FormBody decodes the body as URL-encoded form values.
func (r *Request) FormBody() (url.Values, error) {
	values, err := url.ParseQuery(strings.TrimSpace(r.body))
	if err != nil {
		return nil, NewBodyDecodeError(ContentTypeForm, err)
	}
	return values, nil
}

// Body decodes the body according to BodyContentType. The result is a
// map[string]any for JSON, *etree.Document for XML, url.Values for forms
// and the raw string for text/plain.
func (r *Request) Body() (any, error) {
	ct := r.BodyContentType()
	switch ct {
	case ContentTypeForm:
		return r.FormBody()
	case ContentTypeJSON:
		return r.JSONBody()
	case ContentTypeXML, ContentTypeTextXML:
		return r.XMLBody()
	case ContentTypeText:
		return r.RawBody(), nil
	default:
		return nil, NewUnsupportedBodyTypeError(ct)
	}
}
