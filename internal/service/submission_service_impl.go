package service

import (
	"context"

	"github.com/mpetrov/lectern/internal/canvas"
)

type submissionService struct {
	api *canvas.Client
}

func NewSubmissionService(api *canvas.Client) SubmissionService {
	return &submissionService{api: api}
}

// SubmitFile runs the three upload steps in order. Any failing step is
// fatal for the attempt; nothing is rolled back or retried.
func (s *submissionService) SubmitFile(ctx context.Context, courseID, assignmentID int64, path string) (*canvas.SubmittedFile, error) {
	sess, err := s.api.NewUploadSession(courseID, assignmentID, path)
	if err != nil {
		return nil, err
	}
	if err := sess.Initiate(ctx); err != nil {
		return nil, err
	}
	if err := sess.Transfer(ctx); err != nil {
		return nil, err
	}
	if err := sess.Confirm(ctx); err != nil {
		return nil, err
	}
	return sess.File, nil
}
