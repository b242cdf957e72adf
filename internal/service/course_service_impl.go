package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mpetrov/lectern/internal/canvas"
	"github.com/mpetrov/lectern/internal/domain"
)

type courseService struct {
	api Fetcher
}

func NewCourseService(api Fetcher) CourseService {
	return &courseService{api: api}
}

// FetchCourses joins the three independent dashboard fetches — course list,
// custom colors, positions — and merges them by course ID. A course missing
// from the color or position maps keeps "" and the default position. The
// position sort is stable, so ties keep fetch order.
func (s *courseService) FetchCourses(ctx context.Context) ([]domain.Course, error) {
	var (
		courses   []domain.Course
		colors    map[string]string
		positions map[string]int

		coursesErr, colorsErr, positionsErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		courses, coursesErr = s.api.ListActiveCourses(ctx)
	}()
	go func() {
		defer wg.Done()
		colors, colorsErr = s.api.CustomColors(ctx)
	}()
	go func() {
		defer wg.Done()
		positions, positionsErr = s.api.DashboardPositions(ctx)
	}()
	wg.Wait()

	if coursesErr != nil {
		return nil, fmt.Errorf("fetching courses: %w", coursesErr)
	}
	if colorsErr != nil {
		return nil, fmt.Errorf("fetching course colors: %w", colorsErr)
	}
	if positionsErr != nil {
		return nil, fmt.Errorf("fetching dashboard positions: %w", positionsErr)
	}

	for i := range courses {
		c := &courses[i]
		key := canvas.CourseKey(c.ID)
		if hex, ok := colors[key]; ok {
			c.Color = hex
		}
		if pos, ok := positions[key]; ok {
			c.Position = pos
		}
	}

	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].Position < courses[j].Position
	})
	return courses, nil
}

// courseResult is the outcome of one course's assignment fetch.
type courseResult struct {
	course      domain.Course
	assignments []domain.Assignment
	err         error
}

// fetchEach runs the per-course assignment fetches one course at a time.
// Sequential on purpose: partial-failure attribution stays trivial, and the
// fold below — not this loop — decides what counts as skip-worthy.
func (s *courseService) fetchEach(ctx context.Context, courses []domain.Course) []courseResult {
	results := make([]courseResult, 0, len(courses))
	for _, c := range courses {
		assignments, err := s.api.ListAssignments(ctx, c.ID)
		results = append(results, courseResult{course: c, assignments: assignments, err: err})
	}
	return results
}

// foldResults reduces per-course outcomes into the aggregate. A forbidden
// course is recorded by name; any other per-course failure is dropped
// without note. One broken course never aborts the whole aggregation.
func foldResults(results []courseResult) *domain.AggregateResult {
	out := &domain.AggregateResult{}
	for _, r := range results {
		if r.err != nil {
			if canvas.IsAccessRestricted(r.err) {
				out.SkippedCourses = append(out.SkippedCourses, r.course.Name)
			}
			continue
		}
		out.Assignments = append(out.Assignments, mergeCourse(r.course, r.assignments)...)
	}
	return out
}

// mergeCourse denormalizes course metadata onto each assignment so display
// code never joins back to the course list.
func mergeCourse(c domain.Course, assignments []domain.Assignment) []domain.Assignment {
	merged := make([]domain.Assignment, 0, len(assignments))
	for _, a := range assignments {
		a.CourseName = c.Name
		a.CourseCode = c.Code
		a.CourseColor = c.Color
		a.CoursePosition = c.Position
		merged = append(merged, a)
	}
	return merged
}

func (s *courseService) FetchAllAssignments(ctx context.Context) (*domain.AggregateResult, error) {
	courses, err := s.FetchCourses(ctx)
	if err != nil {
		return nil, err
	}
	return foldResults(s.fetchEach(ctx, courses)), nil
}

func (s *courseService) FetchCourseAssignments(ctx context.Context, course domain.Course) ([]domain.Assignment, error) {
	assignments, err := s.api.ListAssignments(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching assignments for %s: %w", course.Name, err)
	}
	return mergeCourse(course, assignments), nil
}
