package design

import "errors"

// Ошибки разбора design string. Все терминальны: частичный результат не возвращается.
var (
	// ErrBadLength: blob length does not match the version's required (or minimum) length.
	ErrBadLength = errors.New("bad design length")
	// ErrUnsupportedVersion: version 3, which never existed as a shareable format.
	ErrUnsupportedVersion = errors.New("unsupported design version")
	// ErrUnknownVersion: version tag outside 1..5.
	ErrUnknownVersion = errors.New("unknown design version")
	// ErrInvalidItem: the item catalog could not resolve an armor, weapon or gauntlet record.
	ErrInvalidItem = errors.New("item could not be identified")
	// ErrInvalidBase64: design text is not valid base64.
	ErrInvalidBase64 = errors.New("invalid base64 design string")
)

// ErrorKind returns a short name of the decode failure class of err,
// or "" when err is nil or not a design error.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBadLength):
		return "BadLength"
	case errors.Is(err, ErrUnsupportedVersion):
		return "UnsupportedVersion"
	case errors.Is(err, ErrUnknownVersion):
		return "UnknownVersion"
	case errors.Is(err, ErrInvalidItem):
		return "InvalidItem"
	case errors.Is(err, ErrInvalidBase64):
		return "InvalidBase64"
	default:
		return ""
	}
}
