package fake

import (
	"image"
	"image/color"

	"github.com/tupyy/scan2pdf/pkg/device"
)

// NewDemoBackend returns a backend with one flatbed device carrying a
// realistic option set and a single queued test page. It is what the CLI
// talks to when SCAN2PDF_BACKEND=fake.
func NewDemoBackend() *Backend {
	b := New()
	b.AddDevice(NewDemoDevice("fake:flatbed"))
	return b
}

// NewDemoDevice builds a flatbed-shaped device: a scan mode group with
// mode/resolution/depth and a geometry group with the usual tl-x style
// window options.
func NewDemoDevice(name string) *Device {
	d := NewDevice(name,
		device.Option{
			Name:  "standard",
			Title: "Scan mode",
			Type:  device.TypeGroup,
		},
		device.Option{
			Name:        "mode",
			Title:       "Scan mode",
			Description: "Selects the scan mode (e.g., lineart, monochrome, or color).",
			Type:        device.TypeString,
			Size:        32,
			Caps:        device.CapSoftSelect | device.CapSoftDetect | device.CapAutomatic,
			Constraint:  device.StringList{"Lineart", "Gray", "Color"},
			Value:       "Gray",
		},
		device.Option{
			Name:        "resolution",
			Title:       "Scan resolution",
			Description: "Sets the resolution of the scanned image.",
			Type:        device.TypeInt,
			Unit:        device.UnitDPI,
			Size:        device.WordSize,
			Caps:        device.CapSoftSelect | device.CapSoftDetect,
			Constraint:  device.WordList{75, 100, 150, 300, 600},
			Value:       100,
		},
		device.Option{
			Name:        "depth",
			Title:       "Bit depth",
			Description: "Number of bits per sample.",
			Type:        device.TypeInt,
			Unit:        device.UnitBit,
			Size:        device.WordSize,
			Caps:        device.CapSoftSelect | device.CapSoftDetect | device.CapInactive,
			Constraint:  device.WordList{1, 8},
			Value:       8,
		},
		device.Option{
			Name:  "geometry",
			Title: "Geometry",
			Type:  device.TypeGroup,
		},
		device.Option{
			Name:        "tl-x",
			Title:       "Top-left x",
			Description: "Top-left x position of scan area.",
			Type:        device.TypeFixed,
			Unit:        device.UnitMillimeter,
			Size:        device.WordSize,
			Caps:        device.CapSoftSelect | device.CapSoftDetect,
			Constraint:  device.Range{Min: 0, Max: device.Fix(215.9), Step: device.Fix(0.1)},
			Value:       0,
		},
		device.Option{
			Name:        "tl-y",
			Title:       "Top-left y",
			Description: "Top-left y position of scan area.",
			Type:        device.TypeFixed,
			Unit:        device.UnitMillimeter,
			Size:        device.WordSize,
			Caps:        device.CapSoftSelect | device.CapSoftDetect,
			Constraint:  device.Range{Min: 0, Max: device.Fix(297.18), Step: device.Fix(0.1)},
			Value:       0,
		},
		device.Option{
			Name:        "lamp-status",
			Title:       "Lamp status",
			Description: "Reports whether the scanner lamp is warmed up.",
			Type:        device.TypeBool,
			Size:        device.WordSize,
			Caps:        device.CapSoftDetect,
			Value:       true,
		},
	)
	d.Vendor = "Acme"
	d.Model = "Flatbed 9000"
	d.QueuePage(&device.Image{
		Image: testPage(850, 1100),
		DPI:   &device.DPI{X: 100, Y: 100},
	})
	return d
}

// testPage renders a light gray page with a darker border so generated
// PDFs are visually checkable.
func testPage(w, h int) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.Gray{Y: 0xee}
			if x < 8 || y < 8 || x >= w-8 || y >= h-8 {
				c = color.Gray{Y: 0x55}
			}
			img.SetGray(x, y, c)
		}
	}
	return img
}
