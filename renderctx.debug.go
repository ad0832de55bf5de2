package renderctx

import (
	"strings"

	"go.uber.org/zap"
)

// Comment delimiters per syntax family
const (
	markupCommentOpen  = "<!--"
	markupCommentClose = "-->"
	blockCommentOpen   = "/*"
	blockCommentClose  = "*/"
	commentPad         = " "
)

// Debugger emits diagnostics shaped for the current render context.
// When disabled every method is a no-op. The zero value is disabled.
type Debugger struct {
	enabled bool
	logger  *zap.Logger
}

// NewDebugger creates a debugger. A nil logger disables Log.
func NewDebugger(enabled bool, logger *zap.Logger) *Debugger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Debugger{enabled: enabled, logger: logger}
}

// Enabled reports whether debugging output is on.
func (d *Debugger) Enabled() bool {
	return d.enabled
}

// SetEnabled turns debugging output on or off.
func (d *Debugger) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// Comment wraps text in the comment syntax of rc's language. Multi-line text
// puts the delimiters on their own lines. Returns empty string when disabled
// or when the language has no comment syntax (plain text, unknown).
func (d *Debugger) Comment(rc *RenderContext, text string) string {
	if !d.enabled || rc == nil {
		return ""
	}

	var openDelim, closeDelim string
	switch rc.Language() {
	case LanguageFBML, LanguageHTML, LanguageMHTML, LanguageWML, LanguageXHTML, LanguageXML:
		openDelim, closeDelim = markupCommentOpen, markupCommentClose
	case LanguageFBJS, LanguageJS, LanguageJSON, LanguageCSS:
		openDelim, closeDelim = blockCommentOpen, blockCommentClose
	default:
		return ""
	}

	sep := commentPad
	if strings.Contains(text, Newline) {
		sep = Newline
	}
	return openDelim + sep + text + sep + closeDelim + Newline
}

// Log records a debug message through the logger.
func (d *Debugger) Log(message string, fields ...zap.Field) {
	if !d.enabled {
		return
	}
	logger := d.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	all := make([]zap.Field, 0, len(fields)+1)
	all = append(all, fields...)
	all = append(all, zap.String(LogFieldMessage, message))
	logger.Debug(LogMsgDebugMessage, all...)
}
