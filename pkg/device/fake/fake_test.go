package fake_test

import (
	"context"
	"image"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/scan2pdf/pkg/device"
	"github.com/tupyy/scan2pdf/pkg/device/fake"
)

var _ = Describe("Fake backend", func() {
	var (
		ctx     context.Context
		backend *fake.Backend
	)

	BeforeEach(func() {
		ctx = context.Background()
		backend = fake.New()
	})

	Describe("Devices", func() {
		It("enumerates devices in insertion order", func() {
			backend.AddDevice(fake.NewDevice("test:0"))
			backend.AddDevice(fake.NewDevice("test:1"))

			infos, err := backend.Devices(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(infos).To(HaveLen(2))
			Expect(infos[0].Name).To(Equal("test:0"))
			Expect(infos[1].Name).To(Equal("test:1"))
		})
	})

	Describe("Open", func() {
		It("fails for unknown devices", func() {
			_, err := backend.Open(ctx, "test:missing")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Descriptors", func() {
		It("reserves index 0 for the option count", func() {
			d := fake.NewDevice("test:0",
				device.Option{Name: "resolution", Type: device.TypeInt, Size: device.WordSize},
			)
			backend.AddDevice(d)

			descs, err := d.Descriptors(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(descs).To(HaveLen(2))
			Expect(descs[0].Value).To(Equal(2))
			Expect(descs[1].Name).To(Equal("resolution"))
		})

		It("never resolves the reserved descriptor by name", func() {
			d := fake.NewDevice("test:0")
			_, ok := d.Option("")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Set", func() {
		It("records applications in order and updates the stored value", func() {
			d := fake.NewDevice("test:0",
				device.Option{Name: "resolution", Type: device.TypeInt, Size: device.WordSize, Value: 100},
			)

			Expect(d.Set(ctx, "resolution", 300)).To(Succeed())

			opt, ok := d.Option("resolution")
			Expect(ok).To(BeTrue())
			Expect(opt.Value).To(Equal(300))
			Expect(d.AppliedValues()).To(Equal([]fake.Applied{{Name: "resolution", Value: 300}}))
		})

		It("fails for unknown options", func() {
			d := fake.NewDevice("test:0")
			Expect(d.Set(ctx, "nope", 1)).NotTo(Succeed())
		})
	})

	Describe("Scan", func() {
		It("returns ErrNothingToScan with no page queued", func() {
			d := fake.NewDevice("test:0")
			_, err := d.Scan(ctx)
			Expect(err).To(MatchError(device.ErrNothingToScan))
		})

		It("drains queued pages then reports EOF", func() {
			d := fake.NewDevice("test:0")
			for i := 0; i < 3; i++ {
				d.QueuePage(&device.Image{Image: image.NewGray(image.Rect(0, 0, 2, 2))})
			}

			session, err := d.Scan(ctx)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 3; i++ {
				img, err := session.Next(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(img.Image).NotTo(BeNil())
			}
			_, err = session.Next(ctx)
			Expect(err).To(MatchError(io.EOF))
		})
	})
})
