package canvas

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelf_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/self", r.URL.Path)
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": 7, "name": "Ada Lovelace", "primary_email": "ada@example.edu",
		})
	}))
	defer srv.Close()

	user, err := New(srv.URL, "sekrit").Self(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "Ada Lovelace", user.Name)
}

func TestListActiveCourses_Defaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses", r.URL.Path)
		assert.Equal(t, "active", r.URL.Query().Get("enrollment_state"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		w.Write([]byte(`[
			{"id": 1, "name": "Algorithms", "course_code": "CS-301", "term": {"name": "Spring 2026"}},
			{"id": 2, "name": "Ethics", "course_code": "PHI-201"}
		]`))
	}))
	defer srv.Close()

	courses, err := New(srv.URL, "t").ListActiveCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, "Spring 2026", courses[0].Term)
	assert.Equal(t, 999, courses[0].Position, "position defaults until merged")
	assert.Empty(t, courses[0].Color)
	assert.Empty(t, courses[1].Term)
}

func TestCustomColorsAndPositions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/users/self/colors":
			w.Write([]byte(`{"custom_colors": {"course_2": "#3366ff"}}`))
		case "/api/v1/users/self/dashboard_positions":
			w.Write([]byte(`{"dashboard_positions": {"course_2": 4}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "t")

	colors, err := c.CustomColors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"course_2": "#3366ff"}, colors)

	positions, err := c.DashboardPositions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"course_2": 4}, positions)
}

func TestListAssignments_WireMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses/5/assignments", r.URL.Path)
		w.Write([]byte(`[{
			"id": 50, "course_id": 5, "name": "Essay",
			"due_at": "2026-03-10T23:59:00Z",
			"points_possible": 25.5,
			"submission_types": ["online_upload"],
			"has_submitted_submissions": true
		}, {
			"id": 51, "course_id": 5, "name": "Reading", "due_at": null
		}]`))
	}))
	defer srv.Close()

	got, err := New(srv.URL, "t").ListAssignments(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)

	essay := got[0]
	require.NotNil(t, essay.DueAt)
	require.NotNil(t, essay.Points)
	assert.Equal(t, 25.5, *essay.Points)
	assert.True(t, essay.HasSubmissions)
	assert.True(t, essay.AcceptsUpload())

	reading := got[1]
	assert.Nil(t, reading.DueAt)
	assert.Nil(t, reading.Points)
	assert.False(t, reading.AcceptsUpload())
}

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		restricted bool
		unavail    bool
	}{
		{"forbidden", http.StatusForbidden, `{"status":"unauthorized"}`, true, false},
		{"unavailable", http.StatusServiceUnavailable, "down for maintenance", false, true},
		{"plain failure", http.StatusBadGateway, "bad gateway", false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, "t").Self(context.Background())
			require.Error(t, err)

			var he *HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tc.status, he.StatusCode)
			assert.Equal(t, tc.body, he.Body, "body is preserved verbatim")

			assert.Equal(t, tc.restricted, IsAccessRestricted(err))
			assert.Equal(t, tc.unavail, IsServiceUnavailable(err))
		})
	}
}

func TestNetworkErrorIsRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := New(srv.URL, "t").Self(context.Background())
	require.Error(t, err)

	var re *RequestError
	assert.ErrorAs(t, err, &re)
	assert.False(t, IsAccessRestricted(err))
}
