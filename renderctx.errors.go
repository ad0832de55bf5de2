package renderctx

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Profile errors
	ErrMsgUnsupportedProfile = "unsupported markup profile"

	// Preset errors
	ErrMsgInvalidPreset        = "invalid render context preset"
	ErrMsgPresetEmpty          = "preset token is empty"
	ErrMsgPresetTooManyParts   = "preset token has too many parts"
	ErrMsgPresetUnknownLang    = "no presets registered for language"
	ErrMsgPresetInvalidVersion = "preset version is not a number"
	ErrMsgPresetUnknownDialect = "unknown preset dialect"

	// Notification errors
	ErrMsgInvalidNotificationType = "unrecognised notification type"

	// Request errors
	ErrMsgUnsupportedBodyType = "unsupported request body content type"
	ErrMsgBodyDecodeFailed    = "request body decoding failed"

	// Config errors
	ErrMsgConfigParseFailed = "render context config parsing failed"
	ErrMsgConfigReadFailed  = "render context config read failed"
	ErrMsgConfigTooLarge    = "render context config exceeds size limit"
	ErrMsgUnknownFormat     = "unknown response format"
)

// Error code constants for categorization
const (
	ErrCodeProfile      = "RENDERCTX_PROFILE"
	ErrCodePreset       = "RENDERCTX_PRESET"
	ErrCodeNotification = "RENDERCTX_NOTIFICATION"
	ErrCodeRequest      = "RENDERCTX_REQUEST"
	ErrCodeConfig       = "RENDERCTX_CONFIG"
)

// Sentinel errors wrapped by the constructors below so callers can use errors.Is.
var (
	ErrUnsupportedProfile = errors.New(ErrMsgUnsupportedProfile)
	ErrInvalidPreset      = errors.New(ErrMsgInvalidPreset)
)

// NewUnsupportedProfileError creates an error for a triple with no table entry
func NewUnsupportedProfileError(p Profile) error {
	return cuserr.WrapStdError(ErrUnsupportedProfile, ErrCodeProfile, ErrMsgUnsupportedProfile).
		WithMetadata(MetaKeyLanguage, string(p.Language)).
		WithMetadata(MetaKeyVersion, formatVersion(p.Version)).
		WithMetadata(MetaKeyDialect, string(p.Dialect))
}

// NewInvalidPresetError creates an error for a preset token that cannot be parsed
func NewInvalidPresetError(token string, reason string) error {
	return cuserr.WrapStdError(ErrInvalidPreset, ErrCodePreset, ErrMsgInvalidPreset).
		WithMetadata(MetaKeyPreset, token).
		WithMetadata(MetaKeyReason, reason)
}

// NewInvalidNotificationTypeError creates an error for an unknown notification type
func NewInvalidNotificationTypeError(typ NotificationType) error {
	return cuserr.NewValidationError(ErrCodeNotification, ErrMsgInvalidNotificationType).
		WithMetadata(MetaKeyType, string(typ))
}

// NewUnsupportedBodyTypeError creates an error for a body that cannot be decoded
func NewUnsupportedBodyTypeError(contentType string) error {
	return cuserr.NewValidationError(ErrCodeRequest, ErrMsgUnsupportedBodyType).
		WithMetadata(MetaKeyType, contentType)
}

// NewBodyDecodeError wraps a decoder failure
func NewBodyDecodeError(contentType string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRequest, ErrMsgBodyDecodeFailed).
		WithMetadata(MetaKeyType, contentType)
}

// NewConfigError wraps a config loading failure
func NewConfigError(msg string, cause error) error {
	if cause == nil {
		return cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	return cuserr.WrapStdError(cause, ErrCodeConfig, msg)
}

// NewUnknownFormatError creates an error for a format with no known serialization
func NewUnknownFormatError(format string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgUnknownFormat).
		WithMetadata(MetaKeyFormat, format)
}

// IsUnsupportedProfile reports whether err stems from an unsupported profile
func IsUnsupportedProfile(err error) bool {
	return errors.Is(err, ErrUnsupportedProfile)
}

// IsInvalidPreset reports whether err stems from an invalid preset token
func IsInvalidPreset(err error) bool {
	return errors.Is(err, ErrInvalidPreset)
}

func formatVersion(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
