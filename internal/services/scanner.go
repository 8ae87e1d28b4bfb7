package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tupyy/scan2pdf/internal/pdf"
	"github.com/tupyy/scan2pdf/internal/scanconfig"
	"github.com/tupyy/scan2pdf/pkg/device"
	"github.com/tupyy/scan2pdf/pkg/errors"
)

// DocumentSink renders an ordered page sequence into a paginated document.
type DocumentSink interface {
	Build(pages []pdf.Page, path string) error
}

// Scanner drives one device backend through the three tool operations:
// device enumeration, configuration creation and scanning to PDF.
type Scanner struct {
	backend device.Backend
	sink    DocumentSink
	log     *zap.SugaredLogger
}

func NewScanner(backend device.Backend, sink DocumentSink) *Scanner {
	return &Scanner{
		backend: backend,
		sink:    sink,
		log:     zap.S(),
	}
}

// ListDevices prints one device name per line on w. Zero devices is an
// error.
func (s *Scanner) ListDevices(ctx context.Context, w io.Writer) error {
	devices, err := s.backend.Devices(ctx)
	if err != nil {
		return errors.NewListDevicesError(err)
	}
	if len(devices) == 0 {
		return errors.NewNoDevicesError()
	}
	for _, d := range devices {
		fmt.Fprintln(w, d.Name)
	}
	return nil
}

// CreateConfiguration writes a fresh configuration file describing the
// device's current option set to configPath, or to stdout when configPath
// is empty.
func (s *Scanner) CreateConfiguration(ctx context.Context, deviceName, configPath string) error {
	dev, err := s.backend.Open(ctx, deviceName)
	if err != nil {
		return errors.NewDeviceOpenError(deviceName, err)
	}
	defer dev.Close()

	descs, err := dev.Descriptors(ctx)
	if err != nil {
		return errors.NewOptionRetrievalError(deviceName, err)
	}
	items := scanconfig.Filter(descs)

	if configPath == "" {
		return scanconfig.WriteConfig(os.Stdout, dev.Name(), items)
	}

	f, err := os.Create(configPath)
	if err != nil {
		return errors.NewConfigWriteError(configPath, err)
	}
	if err := scanconfig.WriteConfig(f, dev.Name(), items); err != nil {
		f.Close()
		return errors.NewConfigWriteError(configPath, err)
	}
	if err := f.Close(); err != nil {
		return errors.NewConfigWriteError(configPath, err)
	}
	return nil
}

// Scan acquires all ready pages from the device and assembles them into a
// PDF at target. When configPath is non-empty the configuration is parsed
// and applied before the first page is acquired.
func (s *Scanner) Scan(ctx context.Context, deviceName, configPath, target string) error {
	log := s.log.With("session", uuid.NewString(), "device", deviceName)

	dev, err := s.backend.Open(ctx, deviceName)
	if err != nil {
		return errors.NewDeviceOpenError(deviceName, err)
	}
	defer dev.Close()

	if configPath != "" {
		if err := s.applyConfiguration(ctx, dev, configPath); err != nil {
			return err
		}
		log.Debugw("configuration applied", "config", configPath)
	}

	session, err := dev.Scan(ctx)
	if err != nil {
		if stderrors.Is(err, device.ErrNothingToScan) {
			return errors.NewNothingToScanError(err)
		}
		return errors.NewScanError(deviceName, err)
	}

	var pages []pdf.Page
	for {
		img, err := session.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.NewScanError(deviceName, err)
		}
		pages = append(pages, s.page(dev, img))
		log.Debugw("page acquired", "page", len(pages))
	}

	log.Debugw("building document", "pages", len(pages), "target", target)
	return s.sink.Build(pages, target)
}

func (s *Scanner) applyConfiguration(ctx context.Context, dev device.Device, configPath string) error {
	f, err := os.Open(configPath)
	if err != nil {
		return errors.NewConfigReadError(configPath, err)
	}
	defer f.Close()

	settings, err := scanconfig.ParseConfig(f, configPath)
	if err != nil {
		return err
	}
	return scanconfig.Apply(ctx, dev, settings, configPath)
}

// page attaches a resolution to an acquired image. When the backend does
// not report one, the device's current resolution option is used for both
// axes; failing that, 1 dpi.
func (s *Scanner) page(dev device.Device, img *device.Image) pdf.Page {
	if img.DPI != nil {
		return pdf.Page{Image: img.Image, DPI: *img.DPI}
	}

	dpi := device.DPI{X: 1, Y: 1}
	if opt, ok := dev.Option("resolution"); ok {
		if raw, ok := opt.Value.(int); ok {
			res := float64(raw)
			if opt.Type == device.TypeFixed {
				res = device.Unfix(raw)
			}
			if res > 0 {
				dpi = device.DPI{X: res, Y: res}
			}
		}
	}
	return pdf.Page{Image: img.Image, DPI: dpi}
}
