package renderctx

import (
	"context"
	"errors"
	"net/http"

	"github.com/itsatony/go-renderctx/internal"
	"go.uber.org/zap"
)

// Middleware negotiates the response format of each HTTP request, selects
// the matching render context and makes both available to the wrapped
// handler through the request context.
//
// Every request gets its own Stack holding the selected context, so
// handlers may push nested scopes without coordinating with other requests.
type Middleware struct {
	next           http.Handler
	defaultContext *RenderContext
	formatContexts map[Format]*RenderContext
	strict         bool
	maxBodySize    int64
	metrics        *Metrics
	logger         *zap.Logger
}

// NewMiddleware wraps next. Returns an error if the default preset or any
// format profile is invalid.
func NewMiddleware(next http.Handler, opts ...Option) (*Middleware, error) {
	config := defaultMiddlewareConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	defaultContext, err := MakeContext(config.defaultPreset)
	if err != nil {
		return nil, err
	}
	if err := defaultContext.Profile().Validate(); err != nil {
		return nil, err
	}

	formatContexts := make(map[Format]*RenderContext, len(config.formatProfiles))
	for format, p := range config.formatProfiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		formatContexts[format] = NewRenderContext(p)
	}

	logger.Debug(LogMsgMiddlewareCreated,
		zap.String(LogFieldPreset, config.defaultPreset),
		zap.Int(LogFieldFormats, len(formatContexts)),
		zap.Bool(LogFieldStrict, config.strict))

	return &Middleware{
		next:           next,
		defaultContext: defaultContext,
		formatContexts: formatContexts,
		strict:         config.strict,
		maxBodySize:    config.maxBodySize,
		metrics:        config.metrics,
		logger:         logger,
	}, nil
}

// ServeHTTP implements http.Handler.
func (m *Middleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if m.maxBodySize > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, m.maxBodySize)
	}

	req, err := RequestFromHTTP(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			m.logger.Warn(LogMsgBodyTooLarge, zap.Int64(LogFieldLimit, tooLarge.Limit))
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		m.logger.Warn(LogMsgBodyReadFailed, zap.Error(err))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	rc := m.Select(req)
	strict := m.strict
	if accept, ok := req.Header(HeaderAccept); ok && internal.AcceptsMediaType(accept, ContentTypeXHTML) {
		strict = true
	}
	contentType := rc.ContentType(strict)

	if m.metrics != nil {
		format, _ := req.ResponseFormat()
		m.metrics.ObserveNegotiation(format, req.ResponseFormatSource())
		m.metrics.ObserveContentType(contentType)
	}

	m.logger.Debug(LogMsgContextSelected,
		zap.String(LogFieldPath, req.URL(false)),
		zap.String(LogFieldVerb, req.Verb()),
		zap.Stringer(LogFieldPreset, rc),
		zap.String(LogFieldContentType, contentType))

	w.Header().Set(HeaderContentType, contentType+ContentTypeCharsetSuffix)

	ctx := WithStack(r.Context(), NewStack(m.logger, rc))
	ctx = withRequest(ctx, req)
	m.next.ServeHTTP(w, r.WithContext(ctx))
}

// Select returns the render context for a request's negotiated format,
// falling back to the default preset.
func (m *Middleware) Select(req *Request) *RenderContext {
	format, ok := req.ResponseFormat()
	if !ok {
		m.logger.Debug(LogMsgFormatUnresolved, zap.String(LogFieldPath, req.URL(false)))
		return m.defaultContext
	}

	m.logger.Debug(LogMsgFormatNegotiated,
		zap.String(LogFieldFormat, string(format)),
		zap.String(LogFieldSource, string(req.ResponseFormatSource())))

	if rc, ok := m.formatContexts[format]; ok {
		return rc
	}
	return m.defaultContext
}

type requestContextKey struct{}

func withRequest(ctx context.Context, req *Request) context.Context {
	return context.WithValue(ctx, requestContextKey{}, req)
}

// RequestFrom returns the Request parsed by the Middleware, if any.
func RequestFrom(ctx context.Context) (*Request, bool) {
	req, ok := ctx.Value(requestContextKey{}).(*Request)
	return req, ok && req != nil
}
