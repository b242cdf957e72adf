package canvas

import (
	"context"
	"fmt"
	"time"

	"github.com/mpetrov/lectern/internal/domain"
)

// assignmentJSON mirrors the wire shape of an assignment.
type assignmentJSON struct {
	ID              int64      `json:"id"`
	CourseID        int64      `json:"course_id"`
	Name            string     `json:"name"`
	DueAt           *time.Time `json:"due_at"`
	PointsPossible  *float64   `json:"points_possible"`
	SubmissionTypes []string   `json:"submission_types"`
	Description     string     `json:"description"`
	HasSubmissions  bool       `json:"has_submitted_submissions"`
}

// ListAssignments fetches all assignments for one course. Course metadata is
// not attached here; the aggregator denormalizes it during the merge.
func (c *Client) ListAssignments(ctx context.Context, courseID int64) ([]domain.Assignment, error) {
	var raw []assignmentJSON
	path := fmt.Sprintf("/api/v1/courses/%d/assignments?per_page=100", courseID)
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}

	assignments := make([]domain.Assignment, 0, len(raw))
	for _, aj := range raw {
		assignments = append(assignments, domain.Assignment{
			ID:              aj.ID,
			CourseID:        aj.CourseID,
			Name:            aj.Name,
			DueAt:           aj.DueAt,
			Points:          aj.PointsPossible,
			SubmissionTypes: aj.SubmissionTypes,
			Description:     aj.Description,
			HasSubmissions:  aj.HasSubmissions,
		})
	}
	return assignments, nil
}
