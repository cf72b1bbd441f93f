package tui

import (
	"fmt"
	"strings"
	"time"

	"vitalog/internal/report"
	"vitalog/internal/utils"
)

func (m *Model) View() string {
	day := m.now.In(m.loc).Format("2006-01-02")
	summary := report.Summarize(m.data, day, m.loc, m.now.UnixMilli())

	var b strings.Builder
	b.WriteString(titleStyle.Render("vitalog"))
	b.WriteString(mutedStyle.Render("  " + day))
	if m.settings.Profile.Name != "" {
		b.WriteString(mutedStyle.Render("  " + m.settings.Profile.Name))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(dangerStyle.Render("Error: "+m.err.Error()) + "\n\n")
	}

	for _, p := range m.panels {
		if !p.Enabled {
			continue
		}
		switch p.ID {
		case "summary":
			b.WriteString(m.viewSummary(summary))
		case "water":
			b.WriteString(m.viewWater(summary))
		case "mood":
			b.WriteString(m.viewMood(summary))
		case "goals":
			b.WriteString(m.viewGoals(day))
		case "focus":
			b.WriteString(m.viewFocus(summary))
		}
	}

	b.WriteString(m.help.View(keys))
	return docStyle.Render(b.String())
}

func (m *Model) viewSummary(s report.DaySummary) string {
	target := m.settings.Preferences.WaterTargetML
	line := fmt.Sprintf("%d ml water", s.TotalWaterML)
	if target > 0 {
		line = fmt.Sprintf("%d/%d ml water", s.TotalWaterML, target)
	}
	return panelTitleStyle.Render("☀ Today") + "\n" +
		fmt.Sprintf("  %s · %d/%d goals · %d min focused\n\n",
			line, s.CompletedGoalCount, s.GoalCount, s.CompletedFocusMin)
}

func (m *Model) viewWater(s report.DaySummary) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("💧 Water") + "\n")

	target := m.settings.Preferences.WaterTargetML
	if target > 0 {
		pct := s.TotalWaterML * 100 / target
		b.WriteString(fmt.Sprintf("  %s of %d ml (%d%%)\n", progressDoneStyle.Render(fmt.Sprintf("%d ml", s.TotalWaterML)), target, pct))
	} else {
		b.WriteString(fmt.Sprintf("  %d ml\n", s.TotalWaterML))
	}
	if s.SessionWaterML > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d ml in the last two hours\n", s.SessionWaterML)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewMood(s report.DaySummary) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("🙂 Mood") + "\n")
	if s.LatestMood == nil {
		b.WriteString(mutedStyle.Render("  no check-ins yet\n"))
	} else {
		e := s.LatestMood
		b.WriteString(fmt.Sprintf("  %s %d/10", e.Icon, e.Mood))
		if e.Notes != "" {
			b.WriteString(mutedStyle.Render("  " + e.Notes))
		}
		b.WriteString(mutedStyle.Render("  at " + utils.FormatMillis(e.Timestamp, m.loc)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewGoals(day string) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("🎯 Goals") + "\n")

	goals := report.GoalsForDay(m.data.GoalEntries, day, m.loc)
	if len(goals) == 0 {
		b.WriteString(mutedStyle.Render("  none for today\n"))
	}
	for _, g := range goals {
		if g.Completed {
			b.WriteString(progressDoneStyle.Render("  [x] "+g.Title) + "\n")
		} else {
			b.WriteString("  [ ] " + g.Title + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewFocus(s report.DaySummary) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("⏱ Focus") + "\n")
	b.WriteString(fmt.Sprintf("  %d sessions today, %d min completed\n", s.FocusSessionCount, s.CompletedFocusMin))

	if s.OpenFocus != nil {
		elapsed := m.now.Sub(time.UnixMilli(s.OpenFocus.StartTime))
		planned := time.Duration(s.OpenFocus.DurationMin) * time.Minute
		remaining := planned - elapsed
		if remaining > 0 {
			b.WriteString(fmt.Sprintf("  %s session running: %s left\n", s.OpenFocus.Kind, formatDuration(remaining)))
		} else {
			b.WriteString(dangerStyle.Render(fmt.Sprintf("  %s session overdue by %s\n", s.OpenFocus.Kind, formatDuration(-remaining))))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", mins, secs)
}
