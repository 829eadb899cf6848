package pintui

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/pintui/internal/errors"
)

// Size units, powers of 1024.
const (
	KB uint64 = 1024
	MB        = KB * 1024
	GB        = MB * 1024
	TB        = GB * 1024
)

// ErrInvalidFormat is matched (errors.Is) by every ParseSize failure.
var ErrInvalidFormat error = errors.Sentinel(errors.ErrFormat, "invalid size format")

// IsInvalidFormat reports whether err came from ParseSize rejecting its input.
func IsInvalidFormat(err error) bool {
	return errors.IsCode(err, errors.ErrFormat)
}

var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(B|KB|MB|GB|TB)?$`)

var unitMultipliers = map[string]uint64{
	"":   1,
	"B":  1,
	"KB": KB,
	"MB": MB,
	"GB": GB,
	"TB": TB,
}

// HumanSize formats a byte count: "0 B", "1.0 KB", "100.0 MB", "1.00 TB".
func HumanSize(bytes uint64) string {
	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// ParseSize parses "100MB", "1.5 gb" or "512" (bytes) into a byte count.
// Fractional results are floored.
func ParseSize(s string) (uint64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, errors.New(errors.ErrFormat,
			"Empty size string",
			"Use a number followed by B, KB, MB, GB or TB")
	}

	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, errors.New(errors.ErrFormat,
			"Invalid size format: "+s,
			"Use a number followed by B, KB, MB, GB or TB, like 100MB or 1.5GB")
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrFormat,
			"Invalid size format: "+s, "")
	}

	bytes := math.Floor(value * float64(unitMultipliers[m[2]]))
	if bytes >= math.MaxUint64 {
		return 0, errors.New(errors.ErrFormat,
			"Size out of range: "+s, "")
	}
	return uint64(bytes), nil
}

// ParseSizeOrDefault parses s, returning def when s is not a valid size.
func ParseSizeOrDefault(s string, def uint64) uint64 {
	n, err := ParseSize(s)
	if err != nil {
		return def
	}
	return n
}

// HumanDuration formats d as "500ms", "2.5s", "1m 30s" or "2h 5m".
// Negative durations render as "0ms".
func HumanDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return HumanSeconds(d.Seconds())
}

// HumanSeconds is HumanDuration for a floating point count of seconds.
func HumanSeconds(secs float64) string {
	if secs < 0 || math.IsNaN(secs) {
		secs = 0
	}
	// Saturate at MaxInt64 seconds so +Inf still renders as hours.
	if secs > math.MaxInt64 {
		secs = math.MaxInt64
	}

	if secs < 1 {
		return fmt.Sprintf("%dms", int64(secs*1000))
	}

	if secs < 60 {
		return fmt.Sprintf("%.1fs", secs)
	}

	if secs < 3600 {
		return fmt.Sprintf("%dm %ds", int64(secs/60), int64(math.Mod(secs, 60)))
	}

	hours := math.Floor(secs / 3600)
	minutes := math.Floor(math.Mod(secs, 3600) / 60)
	return fmt.Sprintf("%.0fh %.0fm", hours, minutes)
}

// Pluralize returns "1 file" or "N files". Zero takes the plural form.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// HumanCount formats n with thousands separators: 1234567 -> "1,234,567".
func HumanCount(n uint64) string {
	if n > math.MaxInt64 {
		return humanize.BigComma(new(big.Int).SetUint64(n))
	}
	return humanize.Comma(int64(n))
}

// TruncatePath shortens path to roughly maxLen runes by replacing its head
// with "...". When a separator falls inside the kept tail the cut moves to
// it, so the result can be shorter than maxLen.
func TruncatePath(path string, maxLen int) string {
	runes := []rune(path)
	if path == "" || len(runes) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return "..."
	}

	suffix := string(runes[len(runes)-(maxLen-3):])
	if i := strings.IndexAny(suffix, `/\`); i > 0 && i < len(suffix)-1 {
		suffix = suffix[i:]
	}
	return "..." + suffix
}
