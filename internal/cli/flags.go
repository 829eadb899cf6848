package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/pintui/internal/errors"
	"github.com/rileyhilliard/pintui/pkg/pintui"
)

// parseDurationArg accepts a Go duration ("1m30s") or a plain number of
// seconds ("90", "1.5") and returns the count of seconds. Plain seconds stay
// in float64 so values past the time.Duration range still render.
func parseDurationArg(arg string) (float64, error) {
	s := strings.TrimSpace(arg)
	if s == "" {
		return 0, errors.New(errors.ErrFormat,
			"Duration is empty",
			"Try something like 90s, 1m30s, or 1.5")
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d.Seconds(), nil
	}

	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrFormat,
			fmt.Sprintf("'%s' doesn't look like a valid duration", arg),
			"Try something like 90s, 1m30s, or 1.5")
	}
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, errors.New(errors.ErrFormat,
			fmt.Sprintf("'%s' doesn't look like a valid duration", arg),
			"Use a finite number of seconds, like 90 or 1.5")
	}
	return secs, nil
}

// parseSizeArg parses a byte size. Failures keep the InvalidFormat kind and
// gain a suggestion for the command line.
func parseSizeArg(arg string) (uint64, error) {
	n, err := pintui.ParseSize(arg)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrFormat,
			fmt.Sprintf("'%s' doesn't look like a valid size", arg),
			"Use a number with an optional unit: 512, 10KB, 1.5GB")
	}
	return n, nil
}
