package subtitle

import (
	"fmt"
	"math"
)

// Timecode is a subtitle timestamp rendered as HH:MM:SS,mmm
type Timecode struct {
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// FromSeconds converts a float seconds value by truncation.
// Milliseconds come from the fractional remainder truncated to three
// digits, so they never roll over into the next second.
// Negative input is clamped to zero.
func FromSeconds(seconds float64) Timecode {
	if seconds < 0 || math.IsNaN(seconds) {
		return Timecode{}
	}

	whole := int64(seconds)
	millis := int((seconds - float64(whole)) * 1000)
	if millis > 999 {
		millis = 999
	}

	return Timecode{
		Hours:        int(whole / 3600),
		Minutes:      int(whole % 3600 / 60),
		Seconds:      int(whole % 60),
		Milliseconds: millis,
	}
}

func (t Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d", t.Hours, t.Minutes, t.Seconds, t.Milliseconds)
}

// Less reports whether t is strictly earlier than o
func (t Timecode) Less(o Timecode) bool {
	if t.Hours != o.Hours {
		return t.Hours < o.Hours
	}
	if t.Minutes != o.Minutes {
		return t.Minutes < o.Minutes
	}
	if t.Seconds != o.Seconds {
		return t.Seconds < o.Seconds
	}
	return t.Milliseconds < o.Milliseconds
}
