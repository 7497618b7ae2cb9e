package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ember/internal/contract"
	"github.com/alexanderramin/ember/internal/engine"
)

const scoreBarWidth = 20

// Disclaimer is printed under every summary. The tool is informational, not
// clinical.
const Disclaimer = "This tool is not a substitute for professional medical advice, diagnosis, or treatment. " +
	"If you are experiencing severe burnout symptoms, please consult a mental health professional."

// FormatSummary renders the weekly report: red-flag banner, averages, score
// bar, trend, streak, and recommendations.
func FormatSummary(resp *contract.SummaryResponse) string {
	var b strings.Builder

	if resp.RedFlag.Triggered {
		b.WriteString(FormatRedFlagAlert(resp))
		b.WriteString("\n")
	}

	b.WriteString(Header(fmt.Sprintf("Weekly summary (since %s)", resp.Summary.WeekStartDate)))
	b.WriteString("\n\n")

	m := resp.Summary.Metrics
	rows := [][]string{
		{"Sleep", fmt.Sprintf("%.1f h", m.AvgSleep)},
		{"Stress", fmt.Sprintf("%.1f / 10", m.AvgStress)},
		{"Workload", fmt.Sprintf("%.1f / 10", m.AvgWorkload)},
		{"Mood", fmt.Sprintf("%.1f / 10", m.AvgMood)},
	}
	b.WriteString(RenderTable([]string{"METRIC", "7-DAY AVG"}, rows))
	b.WriteString("\n")

	level := engine.RiskLevelFor(m.AvgBurnoutScore)
	fmt.Fprintf(&b, "%s %s  %s\n",
		Bold("Burnout score"),
		RenderScoreBar(m.AvgBurnoutScore, scoreBarWidth),
		RiskIndicator(level))
	fmt.Fprintf(&b, "%s %s  %s\n",
		Bold("Trend        "),
		TrendIndicator(resp.Summary.Trend),
		Dim(engine.TrendDescription(resp.Summary.Trend)))
	fmt.Fprintf(&b, "%s %s\n", Bold("Streak       "), formatStreak(resp.Streak))

	if !resp.CheckedInToday {
		b.WriteString(StyleYellow.Render("No check-in yet today."))
		if resp.DaysSinceLastCheckIn > 0 {
			b.WriteString(Dim(fmt.Sprintf(" Last check-in %d day(s) ago.", resp.DaysSinceLastCheckIn)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("Recommendations"))
	b.WriteString("\n\n")
	for _, rec := range resp.Summary.Recommendations {
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render("▸"), Bold(rec.Title))
		fmt.Fprintf(&b, "  %s\n", Dim(rec.Why))
		for _, step := range rec.Steps {
			fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("·"), step)
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim(Disclaimer))
	b.WriteString("\n")

	return b.String()
}

// FormatRedFlagAlert renders the red-flag banner with the self-care list.
func FormatRedFlagAlert(resp *contract.SummaryResponse) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render("▲ RED FLAG"))
	b.WriteString(" ")
	b.WriteString(StyleFg.Render(engine.RedFlagMessage(resp.RedFlag.Reason)))
	b.WriteString("\n")
	for _, s := range engine.SelfCareSuggestions() {
		fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("·"), s)
	}
	return b.String()
}

func formatStreak(streak int) string {
	if streak <= 0 {
		return Dim("no active streak")
	}
	return StyleGreen.Render(fmt.Sprintf("%d day(s)", streak))
}
