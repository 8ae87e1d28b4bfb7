package device

// Capabilities is a set of flags describing how an option may be read and
// written.
type Capabilities uint16

const (
	// CapSoftSelect marks an option settable in software.
	CapSoftSelect Capabilities = 1 << iota
	// CapHardSelect marks an option only settable through hardware controls.
	CapHardSelect
	// CapSoftDetect marks an option whose value can be read in software.
	CapSoftDetect
	// CapAutomatic marks an option supporting the automatic mode sentinel.
	CapAutomatic
	// CapInactive marks an option currently without effect.
	CapInactive
)

// Has reports whether any of the given flags is set.
func (c Capabilities) Has(flags Capabilities) bool {
	return c&flags != 0
}

// Displayable reports whether the option is worth surfacing at all: at
// least one of soft-select, hard-select or soft-detect must be set.
func (c Capabilities) Displayable() bool {
	return c.Has(CapSoftSelect | CapHardSelect | CapSoftDetect)
}

// Configurable reports whether the option may carry a settable value line
// in a configuration file.
func (c Capabilities) Configurable() bool {
	return c.Has(CapSoftSelect)
}

// Invalid reports whether the flag combination is contradictory: both
// select modes at once, or select without detect.
func (c Capabilities) Invalid() bool {
	if c.Has(CapSoftSelect) && c.Has(CapHardSelect) {
		return true
	}
	return c.Has(CapSoftSelect) && !c.Has(CapSoftDetect)
}

// Inactive reports whether the option currently has no effect.
func (c Capabilities) Inactive() bool {
	return c.Has(CapInactive)
}

// Automatic reports whether the option accepts the "auto" sentinel.
func (c Capabilities) Automatic() bool {
	return c.Has(CapAutomatic)
}
