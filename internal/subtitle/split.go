package subtitle

import (
	"errors"
	"strings"
	"unicode"
)

// Block-local failures. A block that fails never aborts the file; the caller
// skips it and it contributes no cues and consumes no index.
var (
	ErrMissingTimecode = errors.New("block has no timing line")
	ErrEmptyText       = errors.New("block has no wrappable text")
)

// SplitBlock expands one raw subtitle block into cues, one per wrapped text
// line, each carrying a proportional slice of the block's original interval.
//
// The block's leading index line, if present, is discarded; output numbering
// is assigned by the caller. Each text line is wrapped independently and the
// results concatenated in order; the block's text is never reflowed as one
// paragraph.
func SplitBlock(raw string, maxLength int) ([]Cue, error) {
	lines := strings.Split(raw, "\n")

	if len(lines) > 0 && isNumeric(lines[0]) {
		lines = lines[1:]
	}
	if len(lines) < 2 {
		return nil, ErrMissingTimecode
	}

	start, end, err := ParseTimecodeLine(lines[0])
	if err != nil {
		return nil, err
	}

	var wrapped []string
	for _, line := range lines[1:] {
		wrapped = append(wrapped, Wrap(line, maxLength)...)
	}
	if len(wrapped) == 0 {
		return nil, ErrEmptyText
	}

	intervals := SplitInterval(start, end, len(wrapped))

	cues := make([]Cue, len(wrapped))
	for i, text := range wrapped {
		cues[i] = Cue{
			Start: intervals[i].Start,
			End:   intervals[i].End,
			Text:  text,
		}
	}
	return cues, nil
}

func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
