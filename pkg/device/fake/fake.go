// Package fake is an in-memory implementation of the device backend
// contract. It backs the test suites and doubles as a development target
// for running scan2pdf without scanner hardware.
package fake

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/tupyy/scan2pdf/pkg/device"
)

func init() {
	device.Register("fake", func() (device.Backend, error) {
		return NewDemoBackend(), nil
	})
}

// Backend holds a set of fake devices keyed by name.
type Backend struct {
	mu      sync.Mutex
	order   []string
	devices map[string]*Device

	// ListErr, when set, fails device enumeration.
	ListErr error
}

func New() *Backend {
	return &Backend{devices: map[string]*Device{}}
}

// AddDevice registers a device with the backend. Devices are enumerated in
// insertion order.
func (b *Backend) AddDevice(d *Device) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.devices[d.name]; !ok {
		b.order = append(b.order, d.name)
	}
	b.devices[d.name] = d
}

func (b *Backend) Devices(ctx context.Context) ([]device.DeviceInfo, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ListErr != nil {
		return nil, b.ListErr
	}
	infos := make([]device.DeviceInfo, 0, len(b.order))
	for _, name := range b.order {
		d := b.devices[name]
		infos = append(infos, device.DeviceInfo{Name: d.name, Vendor: d.Vendor, Model: d.Model})
	}
	return infos, nil
}

func (b *Backend) Open(ctx context.Context, name string) (device.Device, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.devices[name]
	if !ok {
		return nil, fmt.Errorf("no such device: %s", name)
	}
	if d.OpenErr != nil {
		return nil, d.OpenErr
	}
	return d, nil
}

// Applied records one value application on a fake device.
type Applied struct {
	Name  string
	Value any
	Auto  bool
}

// Device is one fake scanner. The zero value is not usable; construct with
// NewDevice.
type Device struct {
	name        string
	Vendor      string
	Model       string
	descriptors []device.Option
	pages       []device.Image
	applied     []Applied

	// OpenErr fails Backend.Open for this device.
	OpenErr error
	// DescriptorsErr fails descriptor retrieval.
	DescriptorsErr error
	// SetErr fails Set/SetAuto for the named options.
	SetErr map[string]error
	// ScanErr fails session start.
	ScanErr error
}

// NewDevice builds a fake device from option descriptors. The reserved
// index 0 descriptor-count option is prepended automatically.
func NewDevice(name string, opts ...device.Option) *Device {
	descriptors := make([]device.Option, 0, len(opts)+1)
	descriptors = append(descriptors, device.Option{
		Name:  "",
		Title: "Number of options",
		Type:  device.TypeInt,
		Size:  device.WordSize,
		Caps:  device.CapSoftDetect,
		Value: len(opts) + 1,
	})
	descriptors = append(descriptors, opts...)
	return &Device{name: name, descriptors: descriptors}
}

// QueuePage appends an image to the pages the next scan session will
// deliver.
func (d *Device) QueuePage(img *device.Image) {
	d.pages = append(d.pages, *img)
}

// AppliedValues returns the value applications recorded so far, in order.
func (d *Device) AppliedValues() []Applied {
	return d.applied
}

func (d *Device) Name() string {
	return d.name
}

func (d *Device) Descriptors(ctx context.Context) ([]device.Option, error) {
	if d.DescriptorsErr != nil {
		return nil, d.DescriptorsErr
	}
	out := make([]device.Option, len(d.descriptors))
	copy(out, d.descriptors)
	return out, nil
}

func (d *Device) Option(name string) (device.Option, bool) {
	if idx := d.index(name); idx > 0 {
		return d.descriptors[idx], true
	}
	return device.Option{}, false
}

func (d *Device) Set(ctx context.Context, name string, value any) error {
	idx := d.index(name)
	if idx <= 0 {
		return fmt.Errorf("no such option: %s", name)
	}
	if err := d.SetErr[name]; err != nil {
		return err
	}
	d.descriptors[idx].Value = value
	d.applied = append(d.applied, Applied{Name: name, Value: value})
	return nil
}

func (d *Device) SetAuto(ctx context.Context, name string) error {
	if d.index(name) <= 0 {
		return fmt.Errorf("no such option: %s", name)
	}
	if err := d.SetErr[name]; err != nil {
		return err
	}
	d.applied = append(d.applied, Applied{Name: name, Auto: true})
	return nil
}

func (d *Device) Scan(ctx context.Context) (device.Session, error) {
	if d.ScanErr != nil {
		return nil, d.ScanErr
	}
	if len(d.pages) == 0 {
		return nil, device.ErrNothingToScan
	}
	return &session{pages: d.pages}, nil
}

func (d *Device) Close() error {
	return nil
}

// index returns the descriptor index of the named option, 0 when unknown.
// The reserved index 0 descriptor is never matched by name.
func (d *Device) index(name string) int {
	for i := 1; i < len(d.descriptors); i++ {
		if d.descriptors[i].Name == name {
			return i
		}
	}
	return 0
}

type session struct {
	pages []device.Image
	next  int
}

func (s *session) Next(ctx context.Context) (*device.Image, error) {
	if s.next >= len(s.pages) {
		return nil, io.EOF
	}
	img := s.pages[s.next]
	s.next++
	return &img, nil
}
