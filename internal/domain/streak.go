package domain

// ComputeStreak returns the streak after a session on today, given the date
// of the previous session (nil if none) and the streak at that point.
//
// Same-day sessions keep the streak, the following calendar day extends it,
// and any other date (a gap, or a date before last) starts over at 1.
func ComputeStreak(last *Date, today Date, current int) int {
	switch {
	case last == nil:
		return 1
	case today.Equal(*last):
		return current
	case today.Equal(last.AddDays(1)):
		return current + 1
	default:
		return 1
	}
}
