package scanconfig

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tupyy/scan2pdf/pkg/device"
)

// WriteConfig renders a filtered option list into the textual
// configuration format. items is the output of Filter, in device order.
func WriteConfig(w io.Writer, deviceName string, items []device.Option) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# configuration options for %s\n\n", deviceName)

	for _, opt := range items {
		if opt.Type == device.TypeGroup {
			fmt.Fprintf(bw, "[%s]\n", opt.Name)
			continue
		}

		fmt.Fprintf(bw, "# %s\n", opt.Title)
		fmt.Fprintf(bw, "# %s\n", opt.Description)
		fmt.Fprintf(bw, "# %s = %s%s\n", opt.Name, validValues(opt), flagNotes(opt))
		writeValue(bw, opt)
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// validValues builds the comment text describing the legal values of an
// option, e.g. "auto|75|100|150|300|600dpi [read-only]" without the flag
// part.
func validValues(opt device.Option) string {
	var valid string

	switch {
	case opt.Type == device.TypeBool:
		valid = "yes|no"
	case opt.Type == device.TypeButton:
		// an action has no value to describe
	default:
		valid = constraintValues(opt)
	}

	if opt.Caps.Automatic() {
		valid = "auto|" + valid
	}
	return valid
}

func constraintValues(opt device.Option) string {
	var extra string
	if opt.Vector() {
		extra = ",..."
	}

	switch c := opt.Constraint.(type) {
	case device.Range:
		if opt.Type == device.TypeInt {
			return fmt.Sprintf("%d..%d%s%s (in steps of %d)", c.Min, c.Max, opt.Unit, extra, c.Step)
		}
		return fmt.Sprintf("%s..%s%s%s (in steps of %s)",
			formatFixed(c.Min), formatFixed(c.Max), opt.Unit, extra, formatFixed(c.Step))

	case device.WordList:
		words := make([]string, 0, len(c))
		for _, w := range c {
			if opt.Type == device.TypeInt {
				words = append(words, strconv.Itoa(w))
			} else {
				words = append(words, formatFixed(w))
			}
		}
		return strings.Join(words, "|") + extra

	case device.StringList:
		quoted := make([]string, 0, len(c))
		for _, s := range c {
			quoted = append(quoted, strconv.Quote(s))
		}
		return strings.Join(quoted, "|")

	default:
		var valid string
		switch opt.Type {
		case device.TypeInt:
			valid = "<int>"
		case device.TypeFixed:
			valid = "<float>"
		case device.TypeString:
			valid = "<string>"
		}
		return valid + extra
	}
}

// flagNotes renders the bracketed capability annotations, preceded by a
// space when non-empty.
func flagNotes(opt device.Option) string {
	var flags []string
	if opt.Caps.Inactive() {
		flags = append(flags, "[inactive]")
	}
	if opt.Caps.Has(device.CapHardSelect) {
		flags = append(flags, "[hardware]")
	}
	if opt.Caps.Has(device.CapSoftDetect) && !opt.Caps.Has(device.CapSoftSelect) {
		flags = append(flags, "[read-only]")
	}
	if len(flags) == 0 {
		return ""
	}
	return " " + strings.Join(flags, " ")
}

// writeValue emits the settable value line of a configurable option, or a
// commented placeholder when the option cannot carry one right now
// (inactive, action-typed or vector-valued). Non-configurable options get
// no value line at all.
func writeValue(w io.Writer, opt device.Option) {
	if !opt.Caps.Configurable() {
		return
	}
	if opt.Type == device.TypeButton || !opt.Scalar() || opt.Caps.Inactive() {
		fmt.Fprintf(w, "# %s = \n", opt.Name)
		return
	}
	fmt.Fprintf(w, "%s = %s\n", opt.Name, formatValue(opt))
}

func formatValue(opt device.Option) string {
	switch opt.Type {
	case device.TypeBool:
		if b, _ := opt.Value.(bool); b {
			return "yes"
		}
		return "no"
	case device.TypeInt:
		v, _ := opt.Value.(int)
		return strconv.Itoa(v)
	case device.TypeFixed:
		v, _ := opt.Value.(int)
		return formatFixed(v)
	case device.TypeString:
		s, _ := opt.Value.(string)
		return strconv.Quote(s)
	}
	return ""
}

// formatFixed renders a raw fixed-point word with 6 significant digits,
// enough to name any value the 1/65536 grid can hold without dragging the
// decoding noise along (215.89996... prints as 215.9).
func formatFixed(v int) string {
	return strconv.FormatFloat(device.Unfix(v), 'g', 6, 64)
}
