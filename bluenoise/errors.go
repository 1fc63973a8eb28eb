package bluenoise

import "errors"

// ErrorCode identifies a generator API failure class.
type ErrorCode uint32

const (
	// Success reports that an operation completed normally.
	Success ErrorCode = 0

	// ErrBadParam reports an invalid argument.
	ErrBadParam ErrorCode = 1

	// ErrBadSize reports an invalid image size.
	ErrBadSize ErrorCode = 2

	// ErrBadLayers reports an invalid layer count.
	ErrBadLayers ErrorCode = 3

	// ErrNotPow2 reports a dimension that must be a power of two but is not.
	//
	// Only the forward-spectrum diagnostic path requires power-of-two input;
	// generation rounds sizes up internally.
	ErrNotPow2 ErrorCode = 4

	// ErrBadSeed reports a seed pattern the phase algorithm cannot rank:
	// no set pixels, or more set pixels than half the pixel count.
	ErrBadSeed ErrorCode = 5

	// ErrBadGenerator reports use of a nil generator or a generator that is
	// already running another generation.
	ErrBadGenerator ErrorCode = 6

	// ErrCanceled reports that a generation run was canceled between layers.
	ErrCanceled ErrorCode = 7
)

// ErrorString returns a stable name for a code, or "" for unknown codes.
func ErrorString(code ErrorCode) string {
	switch code {
	case Success:
		return "BLUENOISE_SUCCESS"
	case ErrBadParam:
		return "BLUENOISE_ERR_BAD_PARAM"
	case ErrBadSize:
		return "BLUENOISE_ERR_BAD_SIZE"
	case ErrBadLayers:
		return "BLUENOISE_ERR_BAD_LAYERS"
	case ErrNotPow2:
		return "BLUENOISE_ERR_NOT_POW2"
	case ErrBadSeed:
		return "BLUENOISE_ERR_BAD_SEED"
	case ErrBadGenerator:
		return "BLUENOISE_ERR_BAD_GENERATOR"
	case ErrCanceled:
		return "BLUENOISE_ERR_CANCELED"
	default:
		return ""
	}
}

// Error is a typed error carrying an ErrorCode.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if s := ErrorString(e.Code); s != "" {
		return "bluenoise: " + s
	}
	return "bluenoise: error"
}

// ErrorCodeOf returns the error code for err, or Success for nil.
//
// For non-*Error errors it returns ErrBadParam as a conservative fallback.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrBadParam
}

func newError(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}
