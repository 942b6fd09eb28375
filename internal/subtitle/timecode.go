package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var timecodeRegex = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2}),(\d{3})$`)

// ParseTimecode converts an SRT timecode in HH:MM:SS,mmm form into a
// duration. Hours may be wider than two digits.
func ParseTimecode(s string) (time.Duration, error) {
	matches := timecodeRegex.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return 0, fmt.Errorf("invalid timecode %q: want HH:MM:SS,mmm", s)
	}

	h, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, err
	}
	sec, err := strconv.Atoi(matches[3])
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(matches[4])
	if err != nil {
		return 0, err
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

// FormatTimecode renders a non-negative duration as HH:MM:SS,mmm with
// zero-padded fields. Inverse of ParseTimecode for codec-produced values.
func FormatTimecode(d time.Duration) string {
	ms := d.Milliseconds()

	hours := ms / 3600000
	minutes := (ms % 3600000) / 60000
	seconds := (ms % 60000) / 1000
	millis := ms % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// ParseTimecodeLine parses a full SRT timing line, "START --> END". This is
// the single validation rule for timing lines: a line either parses here or
// the block carrying it is skipped.
func ParseTimecodeLine(line string) (start, end time.Duration, err error) {
	before, after, found := strings.Cut(line, "-->")
	if !found {
		return 0, 0, fmt.Errorf("invalid timing line %q: missing \"-->\"", line)
	}
	start, err = ParseTimecode(before)
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseTimecode(after)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// SplitInterval divides [start, end) into n equal slices. Boundary i is
// start + i*(end-start)/n milliseconds, truncated toward zero; adjacent
// slices share a boundary computed once, so the slices tile the original
// interval exactly.
func SplitInterval(start, end time.Duration, n int) []Interval {
	startMS := float64(start.Milliseconds())
	span := float64(end.Milliseconds() - start.Milliseconds())

	bounds := make([]time.Duration, n+1)
	for i := 0; i <= n; i++ {
		ms := startMS + float64(i)*span/float64(n)
		bounds[i] = time.Duration(int64(ms)) * time.Millisecond
	}

	intervals := make([]Interval, n)
	for i := range intervals {
		intervals[i] = Interval{Start: bounds[i], End: bounds[i+1]}
	}
	return intervals
}
