package utils

// Seconds per time unit. All durations of the configuration surface are
// expressed in seconds.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
)

// Hours converts a signed number of hours into seconds. Negative input
// passes through as a negative value so that Hours(-1) can serve as the
// "never" sentinel of the container reset interval.
func Hours(n int) int {
	return n * SecondsPerHour
}
