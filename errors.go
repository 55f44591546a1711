package spellout

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// ErrInvalidFormat indicates input that does not match the numeral, date, or time grammar.
var ErrInvalidFormat = errors.New("spellout: invalid format")

// ErrOutOfRange indicates an integer part longer than the configured digit cap.
var ErrOutOfRange = errors.New("spellout: out of range")

// ErrNumberTooLarge marks an arbitrary-precision parse failure after format validation passed
var ErrNumberTooLarge = errors.New("spellout: number too large")

// ErrInvalidMonth indicates a date month outside 1-12.
var ErrInvalidMonth = errors.New("spellout: invalid month")

// ErrInvalidHour indicates a clock hour outside 0-23.
var ErrInvalidHour = errors.New("spellout: invalid hour")

// ErrInvalidMinute indicates a clock minute outside 0-59.
var ErrInvalidMinute = errors.New("spellout: invalid minute")

// ErrUnknownLocale indicates that no speller is registered for the requested locale.
var ErrUnknownLocale = errors.New("spellout: unknown locale")

const (
	invalidFormatCode = "SPELLOUT_INVALID_FORMAT"
	outOfRangeCode    = "SPELLOUT_OUT_OF_RANGE"
	tooLargeCode      = "SPELLOUT_NUMBER_TOO_LARGE"
	invalidMonthCode  = "SPELLOUT_INVALID_MONTH"
	invalidHourCode   = "SPELLOUT_INVALID_HOUR"
	invalidMinuteCode = "SPELLOUT_INVALID_MINUTE"
	unknownLocaleCode = "SPELLOUT_UNKNOWN_LOCALE"
)

// wrapInputError decorates input-rejection errors with a validation category
// and a stable text code. Every failure in this library is a permanent input
// rejection, so a single category covers the whole taxonomy.
func wrapInputError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "input rejected").
		WithTextCode(textCodeFor(err))
}

func textCodeFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFormat):
		return invalidFormatCode
	case errors.Is(err, ErrOutOfRange):
		return outOfRangeCode
	case errors.Is(err, ErrNumberTooLarge):
		return tooLargeCode
	case errors.Is(err, ErrInvalidMonth):
		return invalidMonthCode
	case errors.Is(err, ErrInvalidHour):
		return invalidHourCode
	case errors.Is(err, ErrInvalidMinute):
		return invalidMinuteCode
	case errors.Is(err, ErrUnknownLocale):
		return unknownLocaleCode
	default:
		return invalidFormatCode
	}
}
