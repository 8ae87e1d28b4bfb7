// Package pdf assembles acquired scanner images into a paginated PDF,
// one image per page, each page sized to the image's physical dimensions.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/tupyy/scan2pdf/pkg/device"
	"github.com/tupyy/scan2pdf/pkg/errors"
)

const (
	cmPerInch = 2.54

	// page padding around the image, in cm
	padWidth  = 1.5
	padHeight = 2.0

	marginSide   = 0.5
	marginTop    = 0.5
	marginBottom = 1.0
)

// Page is one acquired image with the resolution it was scanned at.
type Page struct {
	Image image.Image
	DPI   device.DPI
}

// Builder writes pages into a PDF file.
type Builder struct {
	log *zap.SugaredLogger
}

func NewBuilder() *Builder {
	return &Builder{log: zap.S()}
}

// Build materializes all pages into a single document at path. Each page
// is sized to the image's physical dimensions plus the fixed padding, with
// the image centered between the margins. An empty page list fails before
// anything is written.
func (b *Builder) Build(pages []Page, path string) error {
	if len(pages) == 0 {
		return errors.NewNothingScannedError()
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "cm",
		Size:           pageSize(pages[0]),
	})
	doc.SetMargins(marginSide, marginTop, marginSide)
	doc.SetAutoPageBreak(false, marginBottom)

	for i, page := range pages {
		if err := b.addPage(doc, page, i+1); err != nil {
			return errors.NewDocumentWriteError(path, err)
		}
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		return errors.NewDocumentWriteError(path, err)
	}
	b.log.Debugw("document written", "path", path, "pages", len(pages))
	return nil
}

func (b *Builder) addPage(doc *fpdf.Fpdf, page Page, n int) error {
	size := pageSize(page)
	doc.AddPageFormat("P", size)

	var buf bytes.Buffer
	if err := png.Encode(&buf, page.Image); err != nil {
		return fmt.Errorf("encoding page %d: %w", n, err)
	}

	name := fmt.Sprintf("page-%d", n)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(name, opts, &buf)

	w, h := imageSize(page)
	x := marginSide + (size.Wd-marginSide-marginSide-w)/2
	y := marginTop + (size.Ht-marginTop-marginBottom-h)/2
	doc.ImageOptions(name, x, y, w, h, false, opts, 0, "")

	return doc.Error()
}

// imageSize converts pixel dimensions into physical centimeters using the
// scan resolution. Unknown resolution defaults to 1 dpi, matching the
// contract of the acquisition interface.
func imageSize(p Page) (w, h float64) {
	dpi := p.DPI
	if dpi.X <= 0 {
		dpi.X = 1
	}
	if dpi.Y <= 0 {
		dpi.Y = 1
	}
	bounds := p.Image.Bounds()
	w = float64(bounds.Dx()) / dpi.X * cmPerInch
	h = float64(bounds.Dy()) / dpi.Y * cmPerInch
	return w, h
}

func pageSize(p Page) fpdf.SizeType {
	w, h := imageSize(p)
	return fpdf.SizeType{Wd: w + padWidth, Ht: h + padHeight}
}
