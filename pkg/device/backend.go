package device

import (
	"context"
	"errors"
	"image"
)

// ErrNothingToScan is returned by Device.Scan when no page is ready on the
// device.
var ErrNothingToScan = errors.New("nothing to scan")

// DeviceInfo describes one enumerable scanner device.
type DeviceInfo struct {
	Name   string
	Vendor string
	Model  string
}

// DPI is a horizontal/vertical resolution pair in dots per inch.
type DPI struct {
	X float64
	Y float64
}

// Image is one acquired frame. DPI is nil when the backend does not know
// the resolution the frame was scanned at.
type Image struct {
	Image image.Image
	DPI   *DPI
}

// Backend enumerates and opens scanner devices.
type Backend interface {
	Devices(ctx context.Context) ([]DeviceInfo, error)
	Open(ctx context.Context, name string) (Device, error)
}

// Device is one open device session. Implementations are not safe for
// concurrent use; scan2pdf drives a device strictly sequentially.
type Device interface {
	Name() string

	// Descriptors returns the raw option descriptors in device order.
	// Index 0 is the reserved option-count pseudo descriptor.
	Descriptors(ctx context.Context) ([]Option, error)

	// Option looks up a single descriptor by name. The reserved index 0
	// descriptor is not addressable by name.
	Option(name string) (Option, bool)

	// Set applies a coerced native value to the named option.
	Set(ctx context.Context, name string, value any) error

	// SetAuto switches the named option to automatic mode.
	SetAuto(ctx context.Context, name string) error

	// Scan starts a multi-page acquisition session. It returns
	// ErrNothingToScan when the device has no page ready.
	Scan(ctx context.Context) (Session, error)

	Close() error
}

// Session is a lazy, single-pass, non-restartable sequence of acquired
// images. Next returns io.EOF after the last image.
type Session interface {
	Next(ctx context.Context) (*Image, error)
}
