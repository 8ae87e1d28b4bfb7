package device

// ValueType identifies the native type of an option value.
type ValueType int

const (
	TypeBool ValueType = iota
	TypeInt
	TypeFixed
	TypeString
	TypeButton
	TypeGroup
)

func (t ValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFixed:
		return "fixed"
	case TypeString:
		return "string"
	case TypeButton:
		return "button"
	case TypeGroup:
		return "group"
	}
	return "unknown"
}

// Unit is the physical unit of an option value. Display only.
type Unit int

const (
	UnitNone Unit = iota
	UnitPixel
	UnitBit
	UnitMillimeter
	UnitDPI
	UnitPercent
	UnitMicrosecond
)

func (u Unit) String() string {
	switch u {
	case UnitPixel:
		return "pixel"
	case UnitBit:
		return "bit"
	case UnitMillimeter:
		return "mm"
	case UnitDPI:
		return "dpi"
	case UnitPercent:
		return "%"
	case UnitMicrosecond:
		return "µs"
	}
	return ""
}

// WordSize is the byte width of one scalar option value.
const WordSize = 4

// Option is one scanner-adjustable setting.
//
// Value holds the current value for scalar, non-group, non-button options:
// bool for TypeBool, int for TypeInt and TypeFixed (raw fixed-point word)
// and string for TypeString. It is nil otherwise.
type Option struct {
	Name        string
	Title       string
	Description string
	Type        ValueType
	Unit        Unit
	Size        int
	Caps        Capabilities
	Constraint  Constraint
	Value       any
}

// Vector reports whether the value buffer spans more than one scalar word.
// Vector-valued options are shown in array form but are not individually
// settable by this tool.
func (o Option) Vector() bool {
	return o.Type != TypeString && o.Size > WordSize
}

// Scalar reports whether the option carries exactly one settable value.
func (o Option) Scalar() bool {
	return o.Type == TypeString || o.Size == WordSize
}
