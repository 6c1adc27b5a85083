package calculation

import (
	"fmt"
	"time"

	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/agora-protocol/dashboard/pkg/dateutil"
)

// EndedText is shown for deadlines that have passed.
const EndedText = "Ended"

// TimeRemaining renders the countdown from now to end as "{d}d {h}h" or "{h}h".
// The result is only meaningful at now.
func TimeRemaining(end, now time.Time) domain.Remaining {
	delta := end.Sub(now)
	if delta <= 0 {
		return domain.Remaining{Expired: true, Text: EndedText}
	}
	days, hours := dateutil.SplitDaysHours(delta)
	if days > 0 {
		return domain.Remaining{Text: fmt.Sprintf("%dd %dh", days, hours)}
	}
	return domain.Remaining{Text: fmt.Sprintf("%dh", hours)}
}

// TimeRemainingFromNow is TimeRemaining against the package clock.
func TimeRemainingFromNow(end time.Time) domain.Remaining {
	return TimeRemaining(end, nowFunc())
}

// DeadlineFromLabel resolves a relative label such as "3 days" against a reference time.
func DeadlineFromLabel(ref time.Time, label string) (time.Time, error) {
	d, err := dateutil.ParseDurationLabel(label)
	if err != nil {
		return time.Time{}, err
	}
	return ref.Add(d), nil
}
