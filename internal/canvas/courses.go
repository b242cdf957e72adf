package canvas

import (
	"context"
	"fmt"

	"github.com/mpetrov/lectern/internal/domain"
)

// courseJSON mirrors the wire shape of a course.
type courseJSON struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CourseCode string `json:"course_code"`
	Term       *struct {
		Name string `json:"name"`
	} `json:"term"`
}

// ListActiveCourses fetches every course the user is actively enrolled in.
// Colors and dashboard positions live on separate endpoints; courses come
// back with no color and the default position until the caller merges them.
func (c *Client) ListActiveCourses(ctx context.Context) ([]domain.Course, error) {
	var raw []courseJSON
	if err := c.get(ctx, "/api/v1/courses?enrollment_state=active&per_page=100", &raw); err != nil {
		return nil, err
	}

	courses := make([]domain.Course, 0, len(raw))
	for _, cj := range raw {
		course := domain.Course{
			ID:       cj.ID,
			Name:     cj.Name,
			Code:     cj.CourseCode,
			Position: domain.DefaultPosition,
		}
		if cj.Term != nil {
			course.Term = cj.Term.Name
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// CustomColors fetches the user's custom course colors, keyed "course_<id>".
func (c *Client) CustomColors(ctx context.Context) (map[string]string, error) {
	var resp struct {
		CustomColors map[string]string `json:"custom_colors"`
	}
	if err := c.get(ctx, "/api/v1/users/self/colors", &resp); err != nil {
		return nil, err
	}
	return resp.CustomColors, nil
}

// DashboardPositions fetches the user's course ordering, keyed "course_<id>".
func (c *Client) DashboardPositions(ctx context.Context) (map[string]int, error) {
	var resp struct {
		DashboardPositions map[string]int `json:"dashboard_positions"`
	}
	if err := c.get(ctx, "/api/v1/users/self/dashboard_positions", &resp); err != nil {
		return nil, err
	}
	return resp.DashboardPositions, nil
}

// CourseKey renders a course ID the way the colors and dashboard_positions
// endpoints key their maps.
func CourseKey(id int64) string {
	return fmt.Sprintf("course_%d", id)
}
