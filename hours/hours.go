package hours

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

var displayLocation *time.Location = time.Local

// SetTimezone changes the location used when hours are shown to the user.
// "Local" and "UTC" are accepted besides IANA names.
func SetTimezone(timezone string) error {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("failed to load timezone %s: %v", timezone, err)
	}
	displayLocation = loc
	return nil
}

func FromIso(str string) time.Time {
	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// Clock formats t as "15:04" in the display timezone, "--:--" for the zero time.
func Clock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.In(displayLocation).Format(clockLayout)
}
