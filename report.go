package p0gen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WriteConstants writes one line per constant in the form "000-007: 313c6532d658201a".
func WriteConstants(w io.Writer, c Constants) error {
	for _, ch := range c.Chunks() {
		if _, err := fmt.Fprintf(w, "%03d-%03d: %016x\n", ch.Start, ch.End, ch.Value); err != nil {
			return errors.Wrap(err, "write constants")
		}
	}
	return nil
}

// WriteSchedules writes the schedules as "ROT<n> = [a, b, ...]" lines followed by one
// duplicate check line per schedule.
func WriteSchedules(w io.Writer, schedules []Schedule) error {
	for i, s := range schedules {
		if _, err := fmt.Fprintf(w, "ROT%d = %s\n", i+1, s); err != nil {
			return errors.Wrap(err, "write schedules")
		}
	}
	for i, s := range schedules {
		verdict := "is fine"
		if HasDuplicates(s) {
			verdict = "has duplicates"
		}
		if _, err := fmt.Fprintf(w, "rot%d %s\n", i+1, verdict); err != nil {
			return errors.Wrap(err, "write schedules")
		}
	}
	return nil
}

// String formats s as a bracketed, comma separated list.
func (s Schedule) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
