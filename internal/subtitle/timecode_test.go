package subtitle

import (
	"testing"
	"time"
)

func TestParseTimecode(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"00:00:00,000", 0, false},
		{"00:00:01,000", 1 * time.Second, false},
		{"00:01:02,345", 62345 * time.Millisecond, false},
		{"01:00:00,000", 1 * time.Hour, false},
		{"123:00:00,000", 123 * time.Hour, false},
		{"  00:00:05,500  ", 5500 * time.Millisecond, false},

		{"", 0, true},
		{"00:00:00", 0, true},
		{"00:00:00.000", 0, true},
		{"0:00:00,000", 0, true},
		{"00:00:00,00", 0, true},
		{"00:0:00,000", 0, true},
		{"not a timecode", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimecode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimecode(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimecode(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimecode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatTimecode(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "00:00:00,000"},
		{1 * time.Second, "00:00:01,000"},
		{62345 * time.Millisecond, "00:01:02,345"},
		{1 * time.Hour, "01:00:00,000"},
		{123 * time.Hour, "123:00:00,000"},
		{5 * time.Millisecond, "00:00:00,005"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatTimecode(tt.input); got != tt.want {
				t.Errorf("FormatTimecode(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimecodeRoundTrip(t *testing.T) {
	samples := []int64{
		0, 1, 999, 1000, 59999, 60000, 3599999, 3600000, 86399999, 360000000,
	}

	for _, ms := range samples {
		d := time.Duration(ms) * time.Millisecond
		got, err := ParseTimecode(FormatTimecode(d))
		if err != nil {
			t.Fatalf("round trip of %dms failed: %v", ms, err)
		}
		if got != d {
			t.Errorf("round trip of %dms = %v, want %v", ms, got, d)
		}
	}
}

func TestParseTimecodeLine(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart time.Duration
		wantEnd   time.Duration
		wantErr   bool
	}{
		{
			name:      "basic",
			input:     "00:00:01,000 --> 00:00:03,000",
			wantStart: 1 * time.Second,
			wantEnd:   3 * time.Second,
		},
		{
			name:      "extra whitespace",
			input:     "00:00:01,000  -->  00:00:03,000",
			wantStart: 1 * time.Second,
			wantEnd:   3 * time.Second,
		},
		{
			name:      "no spaces around arrow",
			input:     "00:00:01,000-->00:00:03,000",
			wantStart: 1 * time.Second,
			wantEnd:   3 * time.Second,
		},
		{
			name:    "no arrow",
			input:   "00:00:01,000 00:00:03,000",
			wantErr: true,
		},
		{
			name:    "malformed start",
			input:   "00:00:01 --> 00:00:03,000",
			wantErr: true,
		},
		{
			name:    "malformed end",
			input:   "00:00:01,000 --> three seconds",
			wantErr: true,
		},
		{
			name:    "plain text",
			input:   "just some dialogue",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseTimecodeLine(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimecodeLine(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimecodeLine(%q) failed: %v", tt.input, err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf(
					"ParseTimecodeLine(%q) = (%v, %v), want (%v, %v)",
					tt.input, start, end, tt.wantStart, tt.wantEnd,
				)
			}
		})
	}
}

func TestSplitInterval(t *testing.T) {
	t.Run("thirds of two seconds", func(t *testing.T) {
		got := SplitInterval(1*time.Second, 3*time.Second, 3)
		want := []Interval{
			{1000 * time.Millisecond, 1666 * time.Millisecond},
			{1666 * time.Millisecond, 2333 * time.Millisecond},
			{2333 * time.Millisecond, 3000 * time.Millisecond},
		}
		if len(got) != len(want) {
			t.Fatalf("got %d intervals, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("interval %d = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("single slice is the original interval", func(t *testing.T) {
		got := SplitInterval(5*time.Second, 8*time.Second, 1)
		if len(got) != 1 {
			t.Fatalf("got %d intervals, want 1", len(got))
		}
		if got[0].Start != 5*time.Second || got[0].End != 8*time.Second {
			t.Errorf("got %v, want [5s, 8s)", got[0])
		}
	})

	t.Run("partition law", func(t *testing.T) {
		start := 3671 * time.Millisecond
		end := 9137 * time.Millisecond
		for n := 1; n <= 10; n++ {
			intervals := SplitInterval(start, end, n)
			if intervals[0].Start != start {
				t.Errorf("n=%d: first start = %v, want %v", n, intervals[0].Start, start)
			}
			if intervals[n-1].End != end {
				t.Errorf("n=%d: last end = %v, want %v", n, intervals[n-1].End, end)
			}
			for i := 0; i < n-1; i++ {
				if intervals[i].End != intervals[i+1].Start {
					t.Errorf(
						"n=%d: gap between interval %d end (%v) and %d start (%v)",
						n, i, intervals[i].End, i+1, intervals[i+1].Start,
					)
				}
			}
		}
	})
}
