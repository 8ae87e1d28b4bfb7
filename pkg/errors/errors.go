// Package errors defines the user facing error taxonomy for scan2pdf.
//
// Every failure that can abort a run is wrapped into an Error carrying a
// short printable message and, optionally, the underlying technical cause.
// The cause is only surfaced when the tool runs with --debug.
package errors

import (
	"errors"
	"fmt"
)

// Error is a user facing error. The message is end-user readable and is
// printed as-is on stderr.
type Error struct {
	message string
	cause   error
}

func New(message string) *Error {
	return &Error{message: message}
}

func Wrap(message string, cause error) *Error {
	return &Error{message: message, cause: cause}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Cause returns the underlying technical cause, if any.
func (e *Error) Cause() error {
	return e.cause
}

// IsError reports whether err is (or wraps) a user facing Error.
func IsError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

func NewListDevicesError(cause error) *Error {
	return Wrap("Unable to list devices. Is a scanner backend available?", cause)
}

func NewNoDevicesError() *Error {
	return New("no devices found")
}

func NewDeviceOpenError(device string, cause error) *Error {
	return Wrap(fmt.Sprintf("Unable to open device %q", device), cause)
}

func NewOptionRetrievalError(device string, cause error) *Error {
	return Wrap(fmt.Sprintf("Unable to retrieve options for device %q", device), cause)
}

func NewConfigWriteError(filename string, cause error) *Error {
	return Wrap(fmt.Sprintf("Unable to write configuration file %q", filename), cause)
}

func NewConfigReadError(filename string, cause error) *Error {
	return Wrap(fmt.Sprintf("Unable to read configuration file %q", filename), cause)
}

func NewConfigSyntaxError(filename string, line int) *Error {
	return New(fmt.Sprintf("Invalid syntax on line %d of configuration file %q", line, filename))
}

func NewUnknownOptionError(option, filename string) *Error {
	return New(fmt.Sprintf("Unknown option %q in configuration file %q", option, filename))
}

func NewInvalidValueError(option, filename string, cause error) *Error {
	return Wrap(fmt.Sprintf("invalid value for option %q in configuration file %q", option, filename), cause)
}

func NewOptionSetError(option string, cause error) *Error {
	return Wrap(fmt.Sprintf("unable to set option %q", option), cause)
}

func NewScanError(device string, cause error) *Error {
	return Wrap(fmt.Sprintf("Unable to scan from device %q", device), cause)
}

func NewNothingToScanError(cause error) *Error {
	return Wrap("Nothing to scan", cause)
}

func NewNothingScannedError() *Error {
	return New("Nothing scanned")
}

func NewDocumentWriteError(filename string, cause error) *Error {
	return Wrap(fmt.Sprintf("Unable to write document %q", filename), cause)
}
