package timezone

import (
	"log/slog"
	"sync"
	"time"
)

// MoscowName is the IANA zone the schedule site renders its times in.
const MoscowName = "Europe/Moscow"

var (
	moscowOnce sync.Once
	moscowLoc  *time.Location
)

// Resolve returns the named zone. When the timezone database is unavailable
// (common on Windows without the tzdata package) it logs a warning and returns
// a fixed UTC+3 offset instead, so callers always get a usable location.
func Resolve(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("timezone lookup failed, using fixed UTC+3", "zone", name, "error", err)
		return time.FixedZone(name, 3*60*60)
	}
	return loc
}

// Moscow returns the schedule timezone, resolved once per process.
func Moscow() *time.Location {
	moscowOnce.Do(func() {
		moscowLoc = Resolve(MoscowName)
	})
	return moscowLoc
}
