package scanconfig

import (
	"bufio"
	"io"
	"regexp"

	"github.com/tupyy/scan2pdf/pkg/errors"
)

// Setting is one parsed name/value pair. Value is the raw string as it
// appeared in the file; coercion happens in Apply.
type Setting struct {
	Name  string
	Value string
}

var (
	commentRe = regexp.MustCompile(`^#`)
	blankRe   = regexp.MustCompile(`^\s*$`)
	sectionRe = regexp.MustCompile(`^\s*\[.*\]\s*$`)
	optionRe  = regexp.MustCompile(`^\s*(.*?)\s*=\s*(.*?)\s*$`)
)

// ParseConfig reads the textual configuration format into an ordered list
// of settings. Comments and section headers are discarded; any line that
// matches none of the known shapes fails with a syntax error carrying the
// 1-based line number. The parser never consults a device.
func ParseConfig(r io.Reader, filename string) ([]Setting, error) {
	var settings []Setting

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()

		switch {
		case commentRe.MatchString(text):
		case blankRe.MatchString(text):
		case sectionRe.MatchString(text):
		default:
			m := optionRe.FindStringSubmatch(text)
			if m == nil {
				return nil, errors.NewConfigSyntaxError(filename, line)
			}
			settings = append(settings, Setting{Name: m[1], Value: m[2]})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.NewConfigReadError(filename, err)
	}
	return settings, nil
}
