package slot

import "time"

// .NET DateTime ticks: 100ns intervals since 0001-01-01 UTC.
const (
	ticksPerSecond   = 10_000_000
	unixEpochSeconds = 62_135_596_800
)

// TicksToTime converts a .NET DateTime tick count to a UTC time. Zero ticks
// map to the zero time, which the save format uses for "never written".
func TicksToTime(ticks int64) time.Time {
	if ticks == 0 {
		return time.Time{}
	}
	seconds := ticks/ticksPerSecond - unixEpochSeconds
	nanos := (ticks % ticksPerSecond) * 100
	return time.Unix(seconds, nanos).UTC()
}

// FormatTicks renders a tick count for display, "(never)" for zero.
func FormatTicks(ticks int64) string {
	if ticks == 0 {
		return "(never)"
	}
	return TicksToTime(ticks).Format("2006-01-02 15:04:05")
}

// TimeToTicks converts a time to .NET DateTime ticks. The zero time maps to
// zero ticks.
func TimeToTicks(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return (t.Unix()+unixEpochSeconds)*ticksPerSecond + int64(t.Nanosecond())/100
}
