package domain

// MinutesFromSeconds converts a timed session length to whole minutes,
// truncating, with a floor of one minute.
func MinutesFromSeconds(seconds int) int {
	return max(1, seconds/60)
}
