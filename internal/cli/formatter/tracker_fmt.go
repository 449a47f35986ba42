package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/repstreak/internal/contract"
	"github.com/alexanderramin/repstreak/internal/domain"
)

// MenuItems are the main menu entries; entry i is chosen with i+1.
var MenuItems = []string{
	"Start Session (Manual)",
	"View Stats",
	"View History",
	"Timed Session",
	"Reset All Data",
	"Exit",
}

const (
	MenuStartSession = iota + 1
	MenuViewStats
	MenuViewHistory
	MenuTimedSession
	MenuReset
	MenuExit
)

// FormatWelcome renders the start-up banner.
func FormatWelcome() string {
	return RenderBox("", StyleHeader.Render("SESSION TRACKER")+"\n"+Dim("log sessions, keep the streak alive"))
}

// CurrentStatsLine summarizes totals for the menu header.
func CurrentStatsLine(stats *contract.StatsResponse) string {
	var sessions, minutes, streak int
	if stats != nil {
		sessions, minutes, streak = stats.TotalSessions, stats.TotalMinutes, stats.StreakDays
	}
	return fmt.Sprintf("Current Stats: %s, %d min total, %s",
		Plural(sessions, "session"), minutes,
		StreakStyle(streak).Render(fmt.Sprintf("%d day streak", streak)))
}

// FormatMenu renders the numbered main menu under the current totals.
func FormatMenu(stats *contract.StatsResponse) string {
	var b strings.Builder
	b.WriteString(Dim(strings.Repeat("═", 40)) + "\n")
	b.WriteString(CurrentStatsLine(stats) + "\n")
	b.WriteString(Dim(strings.Repeat("═", 40)) + "\n")
	for i, item := range MenuItems {
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), item)
	}
	return b.String()
}

// FormatCategoryMenu lists the manual session categories.
func FormatCategoryMenu() string {
	var b strings.Builder
	b.WriteString("Available session types:\n")
	for i, c := range domain.ManualCategories {
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), c)
	}
	return b.String()
}

// FormatRecorded confirms a manually logged session.
func FormatRecorded(rec domain.SessionRecord) string {
	return fmt.Sprintf("%s\nDuration: %d minutes\n%s",
		Success(fmt.Sprintf("%s session completed!", rec.Category)),
		rec.DurationMinutes,
		StyleGreen.Render("Great job!"))
}

// FormatTimedRecorded confirms a timed session. interrupted marks a
// countdown that was cut short but still credited.
func FormatTimedRecorded(rec domain.SessionRecord, interrupted bool) string {
	head := "TIME'S UP! Session completed!"
	if interrupted {
		head = "Countdown stopped early. Session credited."
	}
	return fmt.Sprintf("%s\nRecorded: %s", Success(head), SessionLine(rec))
}

// FormatCountdownTick renders one countdown step.
func FormatCountdownTick(remaining int) string {
	return fmt.Sprintf("Time remaining: %ds", remaining)
}

// FormatCountdown renders the countdown panel: remaining time, a bar for the
// elapsed share and the total requested.
func FormatCountdown(remaining, total int) string {
	pct := 1.0
	if total > 0 {
		pct = float64(total-remaining) / float64(total)
	}
	return fmt.Sprintf("%s\n%s\n%s",
		StyleBold.Render(FormatCountdownTick(remaining)),
		RenderProgress(pct, 30),
		Dim(fmt.Sprintf("%s requested", FormatSeconds(total))))
}

// FormatStats renders the stats view. The last-session line and the
// category table only appear once something has been recorded.
func FormatStats(stats *contract.StatsResponse) string {
	if stats == nil {
		stats = &contract.StatsResponse{}
	}

	var b strings.Builder
	b.WriteString(Header("Session Statistics") + "\n")
	fmt.Fprintf(&b, "Total Sessions: %d\n", stats.TotalSessions)
	fmt.Fprintf(&b, "Total Time: %d minutes\n", stats.TotalMinutes)
	fmt.Fprintf(&b, "Average Duration: %d minutes\n", stats.AverageMinutes)
	fmt.Fprintf(&b, "Current Streak: %s\n", StreakStyle(stats.StreakDays).Render(fmt.Sprintf("%d days", stats.StreakDays)))

	if stats.LastSession != nil {
		fmt.Fprintf(&b, "Last Session: %s\n", SessionLine(*stats.LastSession))
	}

	if len(stats.ByCategory) > 0 {
		rows := make([][]string, 0, len(stats.ByCategory))
		for _, c := range stats.ByCategory {
			rows = append(rows, []string{
				StylePurple.Render(string(c.Category)),
				fmt.Sprintf("%d", c.Sessions),
				FormatMinutes(c.Minutes),
			})
		}
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"CATEGORY", "SESSIONS", "TIME"}, rows))
	}
	return b.String()
}

// FormatHistory renders every session, 1-indexed, oldest first.
func FormatHistory(records []domain.SessionRecord) string {
	var b strings.Builder
	b.WriteString(Header("Session History") + "\n")

	if len(records) == 0 {
		b.WriteString("No sessions recorded yet.\n")
		b.WriteString(Dim("Start your first session!") + "\n")
		return b.String()
	}

	for i, rec := range records {
		fmt.Fprintf(&b, "%d. %s\n", i+1, SessionLine(rec))
	}
	fmt.Fprintf(&b, "\nTotal: %s recorded\n", Plural(len(records), "session"))
	return b.String()
}

// FormatGoodbye renders the exit summary.
func FormatGoodbye(stats *contract.StatsResponse) string {
	var sessions, minutes int
	if stats != nil {
		sessions, minutes = stats.TotalSessions, stats.TotalMinutes
	}
	return fmt.Sprintf("Thanks for using the session tracker!\nYour progress: %s, %d minutes total\n%s",
		Plural(sessions, "session"), minutes, StyleGreen.Render("Stay strong!"))
}
