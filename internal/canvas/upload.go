package canvas

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
)

// UploadState identifies where a submission attempt is in the three-step
// upload handshake.
type UploadState int

const (
	UploadIdle UploadState = iota
	UploadAwaitingTarget
	UploadTransferring
	UploadConfirming
	UploadComplete
	UploadFailed
)

func (s UploadState) String() string {
	switch s {
	case UploadIdle:
		return "idle"
	case UploadAwaitingTarget:
		return "awaiting-target"
	case UploadTransferring:
		return "transferring"
	case UploadConfirming:
		return "confirming"
	case UploadComplete:
		return "complete"
	case UploadFailed:
		return "failed"
	}
	return "unknown"
}

// UploadTarget is the step-1 response: where to send the bytes and which
// form fields the storage endpoint requires ahead of the file part.
type UploadTarget struct {
	URL    string            `json:"upload_url"`
	Params map[string]string `json:"upload_params"`
}

// SubmittedFile is the confirmed file descriptor returned by step 3.
type SubmittedFile struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Filename    string `json:"filename"`
	ContentType string `json:"content-type"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
}

// UploadSession threads the server-issued state of one submission attempt
// through the three protocol steps: Initiate, Transfer, Confirm. Each step
// consumes the previous step's output; calling them out of order fails.
// Sessions are single use and hold no cleanup responsibility — a failed
// attempt leaves any partial upload for the remote side to garbage-collect.
type UploadSession struct {
	client       *Client
	courseID     int64
	assignmentID int64
	path         string
	name         string
	size         int64

	State    UploadState
	Target   *UploadTarget
	Location string
	File     *SubmittedFile
	Err      error
}

// NewUploadSession stats the file and prepares a session in the idle state.
func (c *Client) NewUploadSession(courseID, assignmentID int64, path string) (*UploadSession, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &UploadSession{
		client:       c,
		courseID:     courseID,
		assignmentID: assignmentID,
		path:         path,
		name:         filepath.Base(path),
		size:         info.Size(),
		State:        UploadIdle,
	}, nil
}

// fail marks the session terminally failed and returns err unchanged.
func (s *UploadSession) fail(err error) error {
	s.State = UploadFailed
	s.Err = err
	return err
}

// Initiate performs step 1: announce the file's name and size to the
// assignment's submission-files endpoint and receive the upload target.
func (s *UploadSession) Initiate(ctx context.Context) error {
	if s.State != UploadIdle {
		return s.fail(fmt.Errorf("initiate called in state %s", s.State))
	}

	path := fmt.Sprintf("/api/v1/courses/%d/assignments/%d/submissions/self/files",
		s.courseID, s.assignmentID)
	body := map[string]interface{}{"name": s.name, "size": s.size}

	var target UploadTarget
	if err := s.client.postJSON(ctx, path, body, &target); err != nil {
		return s.fail(err)
	}

	s.Target = &target
	s.State = UploadAwaitingTarget
	return nil
}

// Transfer performs step 2: POST a multipart body of every server-required
// field followed by the file part to the upload target. Params precede the
// file part — the storage endpoint ignores fields after the file. The
// response must be a redirect or success status carrying a Location header;
// anything else is fatal for the attempt.
func (s *UploadSession) Transfer(ctx context.Context) error {
	if s.State != UploadAwaitingTarget {
		return s.fail(fmt.Errorf("transfer called in state %s", s.State))
	}
	s.State = UploadTransferring

	f, err := os.Open(s.path)
	if err != nil {
		return s.fail(fmt.Errorf("opening file: %w", err))
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	// JSON objects decode into unordered maps; write params in sorted key
	// order so identical targets produce identical bodies.
	keys := make([]string, 0, len(s.Target.Params))
	for k := range s.Target.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, s.Target.Params[k]); err != nil {
			return s.fail(fmt.Errorf("writing form field %q: %w", k, err))
		}
	}

	part, err := w.CreateFormFile("file", s.name)
	if err != nil {
		return s.fail(fmt.Errorf("creating file part: %w", err))
	}
	if _, err := io.Copy(part, f); err != nil {
		return s.fail(fmt.Errorf("reading %s: %w", s.path, err))
	}
	if err := w.Close(); err != nil {
		return s.fail(fmt.Errorf("finalizing multipart body: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Target.URL, &buf)
	if err != nil {
		return s.fail(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	// The target is external storage, not the API; no auth header, and
	// redirects are surfaced rather than followed.
	resp, err := s.client.upload.Do(req)
	if err != nil {
		return s.fail(&RequestError{Err: err})
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	if !transferAccepted(resp.StatusCode) {
		return s.fail(&HTTPError{StatusCode: resp.StatusCode, Body: string(respBody)})
	}
	loc := resp.Header.Get("Location")
	if loc == "" {
		return s.fail(ErrUploadProtocol)
	}

	s.Location = loc
	s.State = UploadConfirming
	return nil
}

// transferAccepted reports whether the storage endpoint's status counts as
// success or redirect for step 2. Informational responses do not.
func transferAccepted(status int) bool {
	return status >= 200 && status < 400
}

// Confirm performs step 3: follow the location from step 2 and return to
// the API side, which answers with the confirmed file descriptor.
func (s *UploadSession) Confirm(ctx context.Context) error {
	if s.State != UploadConfirming {
		return s.fail(fmt.Errorf("confirm called in state %s", s.State))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Location, nil)
	if err != nil {
		return s.fail(fmt.Errorf("creating request: %w", err))
	}

	var file SubmittedFile
	if err := s.client.do(req, &file); err != nil {
		return s.fail(err)
	}

	s.File = &file
	s.State = UploadComplete
	return nil
}
