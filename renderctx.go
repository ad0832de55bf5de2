// Package renderctx decides how a web response is rendered: which markup
// language, version and dialect apply, which doctype and MIME type follow
// from them, and which serialization format a REST client asked for.
//
// A RenderContext wraps a (language, version, dialect) Profile:
//
//	rc := renderctx.MustMakeContext(renderctx.PresetXHTML1Strict)
//	pre, _ := rc.RenderPreContent()
//	// <?xml version="1.0" encoding="utf-8" ?>
//	// <!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" ...>
//	rc.ContentType(false) // "text/html"
//	rc.ContentType(true)  // "application/xhtml+xml"
//
// # Presets
//
// MakeContext accepts preset tokens of the form language[-version[-dialect]].
// The version may also follow the language directly:
//
//	renderctx.MakeContext("html-4.01-strict")
//	renderctx.MakeContext("html4-strict")   // same profile
//	renderctx.MakeContext("xhtml")          // xhtml 1.1
//	renderctx.MakeContext("xhtml-strict")   // xhtml 1.0 strict
//
// Contexts for other languages are built directly:
//
//	rc := renderctx.NewBuilder().Language(renderctx.LanguageJSON).Build()
//
// # Nested Rendering
//
// A Stack tracks the contexts of nested rendering scopes, for example an
// HTML page embedding a JSON island. Stacks are owned by the caller and
// travel through context.Context:
//
//	stack := renderctx.NewStack(logger, renderctx.MustMakeContext(renderctx.PresetHTML5))
//	ctx = renderctx.WithStack(ctx, stack)
//	err := stack.Scope(jsonContext, func() error {
//	    rc, _ := renderctx.CurrentFrom(ctx) // jsonContext
//	    return render(rc)
//	})
//
// # Format Negotiation
//
// Request resolves the response format of a REST call from, in order, a
// forced format, the canonical format, a ".json"/".xml" path suffix and the
// Accept header:
//
//	req := renderctx.NewRequest("/users.json?page=2", "GET", nil, "", nil, renderctx.FormatNone)
//	req.ResponseFormat() // "json", true
//	req.URL(true)        // "/users"
//
// # HTTP Middleware
//
// Middleware performs negotiation for every HTTP request, sets the
// Content-Type header and hands a per-request Stack to the wrapped handler:
//
//	mw, err := renderctx.NewMiddleware(handler,
//	    renderctx.WithDefaultPreset(renderctx.PresetXHTML1Strict),
//	    renderctx.WithLogger(logger),
//	)
//
// # Error Handling
//
// Failures are returned as *cuserr.CustomError values. Unsupported profiles
// and invalid presets can be recognized with errors.Is:
//
//	if _, err := rc.Doctype(); renderctx.IsUnsupportedProfile(err) {
//	    // no doctype table entry for the profile
//	}
package renderctx
