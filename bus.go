// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// BusPinName returns the name of pin i of the given bus: "bus[i]".
//
func BusPinName(bus string, i int) string {
	return bus + "[" + strconv.Itoa(i) + "]"
}

// IO expands a pin specification string into individual pin names.
// Items are separated by commas. A bus of n pins is declared as "name[n]", a
// subset of a bus as "name[start..end]" (end inclusive).
//
// For example:
//
//	IO("a, b, bus[2], c[4..5]") // []string{"a", "b", "bus[0]", "bus[1]", "c[4]", "c[5]"}
//
func IO(spec string) ([]string, error) {
	var out []string
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	pos := 0
	for _, item := range strings.Split(spec, ",") {
		itemPos := pos + len(item) - len(strings.TrimLeftFunc(item, unicode.IsSpace))
		pos += len(item) + 1
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, parseError(spec, itemPos, "expected pin name")
		}
		i := strings.IndexRune(item, '[')
		if i < 0 {
			if !isIdent(item) {
				return nil, parseError(spec, itemPos, "invalid pin name "+strconv.Quote(item))
			}
			out = append(out, item)
			continue
		}
		name := item[:i]
		if !isIdent(name) {
			return nil, parseError(spec, itemPos, "invalid bus name "+strconv.Quote(name))
		}
		if !strings.HasSuffix(item, "]") {
			return nil, parseError(spec, itemPos+len(item), "missing close bracket")
		}
		inner := item[i+1 : len(item)-1]
		if strings.Contains(inner, "..") {
			pins, err := ExpandRange(item)
			if err != nil {
				return nil, parseError(spec, itemPos+i+1, err.Error())
			}
			out = append(out, pins...)
			continue
		}
		n, err := strconv.Atoi(inner)
		if err != nil || n <= 0 {
			return nil, parseError(spec, itemPos+i+1, "invalid bus size "+strconv.Quote(inner))
		}
		for j := 0; j < n; j++ {
			out = append(out, BusPinName(name, j))
		}
	}
	return out, nil
}

// ExpandRange expands a bus range "name[start..end]" into individual pin
// names. Names without a range are returned as is.
//
func ExpandRange(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("empty bus name")
	}
	n := name[i+1:]
	i = strings.Index(n, "..")
	if i < 0 {
		return []string{name}, nil
	}
	start, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, errors.Wrap(err, "bus range start")
	}
	n = n[i+2:]
	i = strings.IndexRune(n, ']')
	if i < 0 {
		return nil, errors.New("no terminating ] in bus range")
	}
	end, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, errors.Wrap(err, "bus range end")
	}
	if start < 0 || end < start {
		return nil, errors.Errorf("invalid bus range %d..%d", start, end)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, BusPinName(bus, i))
	}
	return r, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
