package format

import (
	"fmt"
	"strings"
	"time"
)

// count abbreviates large trial counts: 5727 -> "5.7K".
func count(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000.0)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000.0)
	}
	return fmt.Sprintf("%d", n)
}

// trials reports how much of the candidate space a run tested.
func trials(done int64, space int) string {
	if space <= 0 {
		return count(done)
	}
	pct := 100 * float64(done) / float64(space)
	return fmt.Sprintf("%s of %s (%.1f%%)", count(done), count(int64(space)), pct)
}

// elapsed is "Xm Ys", "Ys" or, below a second, "Nms".
func elapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	s := int(d.Seconds())
	if s >= 60 {
		return fmt.Sprintf("%dm %ds", s/60, s%60)
	}
	return fmt.Sprintf("%ds", s)
}

// rings writes ring settings the way operators note them: "04 02 14".
func rings(rs []int) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = fmt.Sprintf("%02d", r)
	}
	return strings.Join(parts, " ")
}

// spaced separates window letters: "MJM" -> "M J M".
func spaced(letters string) string {
	return strings.Join(strings.Split(letters, ""), " ")
}
