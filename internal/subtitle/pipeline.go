package subtitle

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var blockSep = regexp.MustCompile(`\n{2,}`)

// Process rewrites a whole SRT file so no display line exceeds maxLength
// characters, splitting each block's timing proportionally across the lines
// it becomes. Pure transformation: input bytes in, output bytes out.
//
// Input may carry a UTF-8 byte order mark and any line ending style; output
// is LF-terminated UTF-8 and always carries a BOM. Output blocks are
// renumbered 1..N in emission order regardless of the original indices;
// blocks that cannot be parsed are dropped and consume no number.
func Process(input []byte, maxLength int) ([]byte, error) {
	if maxLength < 1 {
		return nil, fmt.Errorf("max length must be positive, got %d", maxLength)
	}

	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(input)
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}

	text := strings.ReplaceAll(string(decoded), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var sb strings.Builder
	index := 1
	for _, raw := range blockSep.Split(text, -1) {
		cues, err := SplitBlock(raw, maxLength)
		if err != nil {
			continue
		}
		for _, cue := range cues {
			fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n",
				index,
				FormatTimecode(cue.Start),
				FormatTimecode(cue.End),
				cue.Text)
			index++
		}
	}

	out, err := unicode.UTF8BOM.NewEncoder().Bytes([]byte(sb.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	return out, nil
}
