package scanconfig

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tupyy/scan2pdf/pkg/device"
	"github.com/tupyy/scan2pdf/pkg/errors"
)

// Apply coerces parsed settings into each target option's native type and
// applies them to the device, in file order. The first failure aborts the
// remaining settings; values applied before it stay applied (no rollback).
func Apply(ctx context.Context, dev device.Device, settings []Setting, filename string) error {
	for _, s := range settings {
		opt, ok := dev.Option(s.Name)
		if !ok {
			return errors.NewUnknownOptionError(s.Name, filename)
		}

		if strings.EqualFold(s.Value, "auto") && opt.Caps.Automatic() {
			if err := dev.SetAuto(ctx, s.Name); err != nil {
				return errors.NewOptionSetError(s.Name, err)
			}
			continue
		}

		value, skip, err := coerce(opt, s.Value)
		if err != nil {
			return errors.NewInvalidValueError(s.Name, filename, err)
		}
		if skip {
			continue
		}

		if err := dev.Set(ctx, s.Name, value); err != nil {
			return errors.NewOptionSetError(s.Name, err)
		}
	}
	return nil
}

// coerce converts a raw string into the option's native value. skip is
// true for option kinds that carry no value (groups and actions).
func coerce(opt device.Option, raw string) (value any, skip bool, err error) {
	switch opt.Type {
	case device.TypeBool:
		switch strings.ToLower(raw) {
		case "yes":
			return true, false, nil
		case "no":
			return false, false, nil
		}
		return nil, false, fmt.Errorf("expected yes or no, got %q", raw)

	case device.TypeInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, false, err
		}
		return v, false, nil

	case device.TypeFixed:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false, err
		}
		return device.Fix(v), false, nil

	case device.TypeString:
		v, err := unquote(raw)
		if err != nil {
			return nil, false, err
		}
		return v, false, nil

	default:
		return nil, true, nil
	}
}

// unquote strips a matching pair of single or double quotes and decodes
// standard backslash escapes in the inner text.
func unquote(raw string) (string, error) {
	if len(raw) < 2 {
		return "", fmt.Errorf("string value %q is not quoted", raw)
	}
	q := raw[0]
	if q != '\'' && q != '"' {
		return "", fmt.Errorf("string value %q is not quoted", raw)
	}
	if raw[len(raw)-1] != q {
		return "", fmt.Errorf("string value %q has mismatched quotes", raw)
	}
	return unescape(raw[1 : len(raw)-1])
}

func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("trailing backslash in string value")
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case '\\', '\'', '"':
			b.WriteByte(s[i])
		default:
			// unknown escapes pass through untouched
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
