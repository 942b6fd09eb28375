package subtitle

import (
	"path/filepath"
	"strings"
	"time"
)

// represents one rendered subtitle: a display line with its time interval
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// represents a slice of a block's original time span
type Interval struct {
	Start time.Duration
	End   time.Duration
}

// SplitName derives the output file name for an input path by inserting
// "_split" before the extension: "movie.srt" becomes "movie_split.srt".
func SplitName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_split" + ext
}
