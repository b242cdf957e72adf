package domain

import "time"

// SubmissionTypeUpload is the tag marking assignments that accept a file
// upload submission.
const SubmissionTypeUpload = "online_upload"

// Assignment is a task belonging to a course. DueAt and Points are optional;
// an assignment without a due time is never "due soon" or "overdue".
type Assignment struct {
	ID              int64
	CourseID        int64
	Name            string
	DueAt           *time.Time
	Points          *float64
	SubmissionTypes []string
	Description     string

	// HasSubmissions means some student somewhere submitted this assignment.
	// The API does not expose a reliable "submitted by me" signal, so this
	// flag is only ever used as a secondary filter for overdue display.
	HasSubmissions bool

	// Course metadata copied onto the assignment at merge time so display
	// code never has to join back to the course list.
	CourseName     string
	CourseCode     string
	CourseColor    string
	CoursePosition int
}

// AcceptsUpload reports whether the assignment can take a file submission.
func (a Assignment) AcceptsUpload() bool {
	for _, t := range a.SubmissionTypes {
		if t == SubmissionTypeUpload {
			return true
		}
	}
	return false
}

// AggregateResult is the outcome of fetching assignments across all active
// courses. SkippedCourses names courses whose assignment list could not be
// read due to a permissions error; a course with zero assignments is not
// skipped, it simply contributes nothing.
type AggregateResult struct {
	Assignments    []Assignment
	SkippedCourses []string
}
