package domain

// DefaultPosition is the dashboard rank assigned to courses the user has
// never ordered explicitly. It sorts after every explicit position.
const DefaultPosition = 999

// Course is one enrollment as shown on the dashboard. Courses are rebuilt
// from the API on every fetch and never mutated afterwards.
type Course struct {
	ID       int64
	Name     string
	Code     string
	Color    string // custom hex color chosen by the user, "" when unset
	Position int
	Term     string
}
