package scanconfig

import (
	"github.com/tupyy/scan2pdf/pkg/device"
)

// Filter selects the options worth surfacing in a configuration file.
//
// descs is the raw descriptor list in device order; index 0 is the
// reserved descriptor-count pseudo option and is never surfaced. A group
// is only emitted together with its first surviving member, so empty
// sections never appear in the output. Options with contradictory or
// useless capability flags are dropped without consuming the pending
// group.
func Filter(descs []device.Option) []device.Option {
	var out []device.Option
	var pending *device.Option

	for i := 1; i < len(descs); i++ {
		opt := descs[i]

		if opt.Type == device.TypeGroup {
			pending = &descs[i]
			continue
		}
		if opt.Caps.Invalid() || !opt.Caps.Displayable() {
			continue
		}
		if pending != nil {
			out = append(out, *pending)
			pending = nil
		}
		out = append(out, opt)
	}
	return out
}
