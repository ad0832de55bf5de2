package renderctx

import "strings"

// NotificationType is the class of a notification, also used as its CSS class.
type NotificationType string

// Notification types
const (
	NotificationPlain       NotificationType = "msg_plain"
	NotificationInformation NotificationType = "msg_info"
	NotificationWarning     NotificationType = "msg_warn"
	NotificationError       NotificationType = "msg_error"
)

// Notification markup fragments
const (
	notificationDivOpen  = `<div class="`
	notificationDivClose = `</div>`
	notificationXMLOpen  = `<notification type="`
	notificationXMLClose = `</notification>`
	notificationTagEnd   = `">`
)

// Notification is a user-facing message rendered according to the current
// render context. The message is emitted verbatim so it may carry markup;
// escaping user input is the caller's job.
type Notification struct {
	message string
	typ     NotificationType
}

// NewNotification creates a notification.
// Returns an error for unrecognized types.
func NewNotification(message string, typ NotificationType) (*Notification, error) {
	n := &Notification{message: message, typ: NotificationPlain}
	if err := n.SetType(typ); err != nil {
		return nil, err
	}
	return n, nil
}

// Message returns the message text.
func (n *Notification) Message() string {
	return n.message
}

// SetMessage replaces the message text.
func (n *Notification) SetMessage(message string) *Notification {
	n.message = message
	return n
}

// AppendMessage adds text to the end of the message.
func (n *Notification) AppendMessage(message string) *Notification {
	n.message += message
	return n
}

// Type returns the notification type.
func (n *Notification) Type() NotificationType {
	return n.typ
}

// SetType changes the notification type, rejecting unknown types.
func (n *Notification) SetType(typ NotificationType) error {
	switch typ {
	case NotificationPlain, NotificationInformation, NotificationWarning, NotificationError:
		n.typ = typ
		return nil
	default:
		return NewInvalidNotificationTypeError(typ)
	}
}

// Render formats the notification for rc. HTML and XHTML get a div, XML a
// notification element; other languages and empty messages render nothing.
func (n *Notification) Render(rc *RenderContext) string {
	if n.message == "" || rc == nil {
		return ""
	}

	var b strings.Builder
	switch rc.Language() {
	case LanguageHTML, LanguageXHTML:
		b.WriteString(notificationDivOpen)
		b.WriteString(string(n.typ))
		b.WriteString(notificationTagEnd)
		b.WriteString(n.message)
		b.WriteString(notificationDivClose)
	case LanguageXML:
		b.WriteString(notificationXMLOpen)
		b.WriteString(string(n.typ))
		b.WriteString(notificationTagEnd)
		b.WriteString(n.message)
		b.WriteString(notificationXMLClose)
	}
	return b.String()
}
