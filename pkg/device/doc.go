// Package device models a scanner device's option set and defines the
// backend contract used to talk to real hardware.
//
// # Option Model
//
// A scanner exposes an ordered list of option descriptors. Each descriptor
// carries a value type, a unit, a constraint limiting the legal values and
// a set of capability flags describing how the option may be read and
// written. Two descriptor kinds are special:
//
//   - TypeGroup marks the start of a related section of options and has no
//     value. It is a display aid only.
//   - TypeButton (an action) triggers a device function and has no value.
//
// Index 0 of the descriptor list is reserved by the device for its option
// count and is never surfaced to users.
//
// # Capabilities
//
// Capability flags are modeled as an explicit flag set with named
// predicates so the validity rules can be tested in isolation:
//
//   - Displayable: at least one of soft-select, hard-select or soft-detect
//     is set; anything else is useless and skipped.
//   - Configurable: soft-select is set, the option may carry a value line
//     in a configuration file.
//   - Invalid: soft-select combined with hard-select, or soft-select
//     without soft-detect. Such descriptors are contradictory and skipped
//     entirely.
//
// # Fixed-point values
//
// Fixed-point options store their value as a raw integer word encoding
// value times 65536. Fix and Unfix convert between the wire encoding and
// float64.
//
// # Backend contract
//
// Backend enumerates and opens devices; Device exposes descriptors, value
// application and a lazy single-pass scan Session. Implementations live
// out of tree (a hardware binding) or in the fake subpackage (an
// in-memory backend used by the test suites and as a development target).
// Backends register themselves by name via Register so the CLI can select
// one at runtime.
package device
