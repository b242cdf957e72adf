package service

import (
	"context"

	"github.com/mpetrov/lectern/internal/canvas"
	"github.com/mpetrov/lectern/internal/domain"
)

// Fetcher is the slice of the API client the course service needs. The
// concrete implementation is *canvas.Client; tests substitute stubs.
type Fetcher interface {
	ListActiveCourses(ctx context.Context) ([]domain.Course, error)
	CustomColors(ctx context.Context) (map[string]string, error)
	DashboardPositions(ctx context.Context) (map[string]int, error)
	ListAssignments(ctx context.Context, courseID int64) ([]domain.Assignment, error)
}

type CourseService interface {
	// FetchCourses returns active courses with colors and dashboard
	// positions merged in, sorted by position.
	FetchCourses(ctx context.Context) ([]domain.Course, error)

	// FetchAllAssignments aggregates assignments across every active
	// course, skipping courses that fail instead of aborting.
	FetchAllAssignments(ctx context.Context) (*domain.AggregateResult, error)

	// FetchCourseAssignments returns one course's assignments with that
	// course's metadata merged on.
	FetchCourseAssignments(ctx context.Context, course domain.Course) ([]domain.Assignment, error)
}

type IdentityService interface {
	Whoami(ctx context.Context) (*canvas.User, error)
}

type SubmissionService interface {
	// SubmitFile attaches the file at path to an assignment via the
	// three-step upload handshake and returns the confirmed descriptor.
	SubmitFile(ctx context.Context, courseID, assignmentID int64, path string) (*canvas.SubmittedFile, error)
}
