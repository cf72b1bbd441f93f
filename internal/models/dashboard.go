package models

// Panel describes one dashboard section. The layout document is an ordered
// list of these, defaulted from DefaultPanels when absent or malformed.
type Panel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Enabled     bool   `json:"enabled"`
	Order       int    `json:"order"`
}

// DefaultPanels returns the built-in layout.
func DefaultPanels() []Panel {
	return []Panel{
		{ID: "summary", Name: "Summary", Description: "Today at a glance", Icon: "☀", Enabled: true, Order: 0},
		{ID: "water", Name: "Water", Description: "Water intake and current session", Icon: "💧", Enabled: true, Order: 1},
		{ID: "mood", Name: "Mood", Description: "Latest mood check-in", Icon: "🙂", Enabled: true, Order: 2},
		{ID: "goals", Name: "Goals", Description: "Today's goals and completions", Icon: "🎯", Enabled: true, Order: 3},
		{ID: "focus", Name: "Focus", Description: "Focus sessions and open timer", Icon: "⏱", Enabled: true, Order: 4},
	}
}
