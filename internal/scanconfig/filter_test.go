package scanconfig_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/scan2pdf/internal/scanconfig"
	"github.com/tupyy/scan2pdf/pkg/device"
)

// countOption is the reserved index 0 descriptor every device carries.
var countOption = device.Option{
	Title: "Number of options",
	Type:  device.TypeInt,
	Size:  device.WordSize,
	Caps:  device.CapSoftDetect,
}

func names(opts []device.Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Name)
	}
	return out
}

var _ = Describe("Filter", func() {
	It("never surfaces the reserved index 0 descriptor", func() {
		descs := []device.Option{
			countOption,
			{Name: "resolution", Type: device.TypeInt, Size: device.WordSize,
				Caps: device.CapSoftSelect | device.CapSoftDetect},
		}

		Expect(names(scanconfig.Filter(descs))).To(Equal([]string{"resolution"}))
	})

	It("drops contradictory options", func() {
		descs := []device.Option{
			countOption,
			// both select modes at once
			{Name: "both-selects", Type: device.TypeInt, Size: device.WordSize,
				Caps: device.CapSoftSelect | device.CapHardSelect | device.CapSoftDetect},
			// select without detect
			{Name: "select-no-detect", Type: device.TypeInt, Size: device.WordSize,
				Caps: device.CapSoftSelect},
			{Name: "good", Type: device.TypeInt, Size: device.WordSize,
				Caps: device.CapSoftSelect | device.CapSoftDetect},
		}

		Expect(names(scanconfig.Filter(descs))).To(Equal([]string{"good"}))
	})

	It("drops options with no select or detect capability", func() {
		descs := []device.Option{
			countOption,
			{Name: "useless", Type: device.TypeInt, Size: device.WordSize},
		}

		Expect(scanconfig.Filter(descs)).To(BeEmpty())
	})

	It("emits a group only together with its first surviving member", func() {
		descs := []device.Option{
			countOption,
			{Name: "standard", Type: device.TypeGroup},
			{Name: "resolution", Type: device.TypeInt, Size: device.WordSize,
				Caps: device.CapSoftSelect | device.CapSoftDetect},
			{Name: "mode", Type: device.TypeString, Size: 32,
				Caps: device.CapSoftSelect | device.CapSoftDetect},
		}

		Expect(names(scanconfig.Filter(descs))).To(Equal([]string{"standard", "resolution", "mode"}))
	})

	It("never emits an empty group", func() {
		descs := []device.Option{
			countOption,
			{Name: "advanced", Type: device.TypeGroup},
			{Name: "invalid", Type: device.TypeInt, Size: device.WordSize,
				Caps: device.CapSoftSelect | device.CapHardSelect},
			{Name: "trailing", Type: device.TypeGroup},
		}

		Expect(scanconfig.Filter(descs)).To(BeEmpty())
	})

	It("does not consume the pending group on skipped options", func() {
		descs := []device.Option{
			countOption,
			{Name: "geometry", Type: device.TypeGroup},
			{Name: "hidden", Type: device.TypeInt, Size: device.WordSize},
			{Name: "tl-x", Type: device.TypeFixed, Size: device.WordSize,
				Caps: device.CapSoftSelect | device.CapSoftDetect},
		}

		Expect(names(scanconfig.Filter(descs))).To(Equal([]string{"geometry", "tl-x"}))
	})

	It("keeps displayable but non-configurable options", func() {
		descs := []device.Option{
			countOption,
			{Name: "hardware-knob", Type: device.TypeInt, Size: device.WordSize,
				Caps: device.CapHardSelect},
			{Name: "sensor", Type: device.TypeBool, Size: device.WordSize,
				Caps: device.CapSoftDetect},
		}

		Expect(names(scanconfig.Filter(descs))).To(Equal([]string{"hardware-knob", "sensor"}))
	})

	// the two structural invariants, checked over a larger mixed set
	It("upholds the no-empty-group and no-invalid-option invariants", func() {
		descs := []device.Option{
			countOption,
			{Name: "g1", Type: device.TypeGroup},
			{Name: "a", Type: device.TypeInt, Size: device.WordSize,
				Caps: device.CapSoftSelect | device.CapSoftDetect},
			{Name: "g2", Type: device.TypeGroup},
			{Name: "bad", Type: device.TypeInt, Size: device.WordSize,
				Caps: device.CapSoftSelect},
			{Name: "g3", Type: device.TypeGroup},
			{Name: "b", Type: device.TypeBool, Size: device.WordSize,
				Caps: device.CapSoftDetect},
		}

		out := scanconfig.Filter(descs)
		Expect(names(out)).To(Equal([]string{"g1", "a", "g3", "b"}))

		for i, opt := range out {
			Expect(opt.Caps.Invalid()).To(BeFalse())
			if opt.Type == device.TypeGroup {
				Expect(i+1).To(BeNumerically("<", len(out)), "group %q at end of output", opt.Name)
				Expect(out[i+1].Type).NotTo(Equal(device.TypeGroup), "group %q followed by group", opt.Name)
			}
		}
	})
})
