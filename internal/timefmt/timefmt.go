package timefmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseHHMMSS converts an "HH:MM:SS" string to whole seconds. Minutes and
// seconds must lie in [0, 59]; hours only need to be non-negative.
func ParseHHMMSS(text string) (int, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("time %q must be in HH:MM:SS format", text)
	}
	values := make([]int, len(parts))
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("time %q must contain integers", text)
		}
		values[i] = value
	}
	hours, minutes, seconds := values[0], values[1], values[2]
	if minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 {
		return 0, errors.New("minutes and seconds must be between 0 and 59")
	}
	if hours < 0 {
		return 0, errors.New("hours must be non-negative")
	}
	return hours*3600 + minutes*60 + seconds, nil
}

// FormatHHMMSS renders seconds as HH:MM:SS, rounded to the nearest second.
// Hours grow past two digits when needed.
func FormatHHMMSS(seconds float64) string {
	total := clampSeconds(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// FormatDuration renders seconds as MM:SS, rounded to the nearest second.
func FormatDuration(seconds float64) string {
	total := clampSeconds(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func clampSeconds(seconds float64) int {
	if math.IsNaN(seconds) || seconds < 0 {
		return 0
	}
	return int(math.Round(seconds))
}
