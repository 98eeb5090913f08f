package progadmin

// Activity levels reported on the dashboard.
const (
	LevelLow    = 1
	LevelMedium = 2
	LevelHigh   = 3
)

var levelColors = map[int]string{
	LevelLow:    "red",
	LevelMedium: "yellow",
	LevelHigh:   "green",
}

// calculateLevel grades a school's activity inside a program. Fewer than five
// discovered problems pins the school at level 1 no matter what else it did.
func calculateLevel(problems, ideations, solutions int) int {
	if problems < 5 {
		return LevelLow
	}
	if problems > 25 && ideations > 15 && solutions > 10 {
		return LevelHigh
	}
	if problems > 10 && ideations > 5 && solutions > 3 {
		return LevelMedium
	}
	return LevelLow
}

// levelColor maps a level to its traffic-light color.
func levelColor(level int) string {
	return levelColors[level]
}
