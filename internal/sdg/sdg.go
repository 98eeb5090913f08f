// Package sdg holds the goal catalogue students pick from during problem
// discovery. Goals 1-17 are the UN Sustainable Development Goals; goal 18 is
// a programme-specific addition.
package sdg

// Goal is one selectable goal.
type Goal struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

var goals = []Goal{
	{1, "No Poverty"},
	{2, "Zero Hunger"},
	{3, "Good Health and Well-being"},
	{4, "Quality Education"},
	{5, "Gender Equality"},
	{6, "Clean Water and Sanitation"},
	{7, "Affordable and Clean Energy"},
	{8, "Decent Work and Economic Growth"},
	{9, "Industry, Innovation and Infrastructure"},
	{10, "Reduced Inequalities"},
	{11, "Sustainable Cities and Communities"},
	{12, "Responsible Consumption and Production"},
	{13, "Climate Action"},
	{14, "Life Below Water"},
	{15, "Life on Land"},
	{16, "Peace, Justice and Strong Institutions"},
	{17, "Partnerships for the Goals"},
	{18, "Women and Welfare"},
}

// Goals returns the full catalogue in goal-number order.
func Goals() []Goal {
	out := make([]Goal, len(goals))
	copy(out, goals)
	return out
}

// Valid reports whether n is a known goal number.
func Valid(n int) bool {
	return n >= 1 && n <= len(goals)
}

// Title returns the goal title, or "" for unknown numbers.
func Title(n int) string {
	if !Valid(n) {
		return ""
	}
	return goals[n-1].Title
}
