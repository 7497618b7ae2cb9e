package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/engine"
)

// FormatCheckInList renders the check-in history as an aligned table,
// newest first.
func FormatCheckInList(checkIns []domain.CheckIn) string {
	if len(checkIns) == 0 {
		return Dim("No check-ins yet. Log one with: ember checkin log") + "\n"
	}

	headers := []string{"DATE", "SLEEP", "STRESS", "WORKLOAD", "MOOD", "SCORE", "RISK", "NOTES"}
	rows := make([][]string, 0, len(checkIns))
	for _, ci := range checkIns {
		rows = append(rows, []string{
			Bold(ci.Date),
			fmt.Sprintf("%.1fh", ci.SleepHours),
			fmt.Sprintf("%d", ci.Stress),
			fmt.Sprintf("%d", ci.Workload),
			fmt.Sprintf("%d", ci.Mood),
			RiskStyle(engine.RiskLevelFor(ci.BurnoutScore)).Render(fmt.Sprintf("%d", ci.BurnoutScore)),
			RiskIndicator(engine.RiskLevelFor(ci.BurnoutScore)),
			Dim(truncate(ci.Notes, 32)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatCheckInResult renders the outcome of a submission: the computed score
// and risk band for the day.
func FormatCheckInResult(ci *domain.CheckIn) string {
	level := engine.RiskLevelFor(ci.BurnoutScore)
	return fmt.Sprintf("Checked in for %s  %s  %s\n",
		Bold(ci.Date),
		RenderScoreBar(ci.BurnoutScore, scoreBarWidth),
		RiskIndicator(level))
}

// FormatContactList renders the emergency contact table.
func FormatContactList(contacts []domain.EmergencyContact) string {
	if len(contacts) == 0 {
		return Dim("No contacts. Add one with: ember contact add") + "\n"
	}
	headers := []string{"NAME", "PHONE", "EMAIL", "ID"}
	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []string{Bold(c.Name), c.Phone, c.Email, Dim(c.ID)})
	}
	return RenderTable(headers, rows)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
