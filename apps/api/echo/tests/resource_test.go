package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mentorhub/mentorhub/core/resource"
	"github.com/mentorhub/mentorhub/core/user"
	testutil "github.com/mentorhub/mentorhub/tests"
)

func Test_resourceApi(t *testing.T) {
	app := setup(t)

	pc := testutil.CreateUser(t, usrRepo, "Priya Sharma", "priya", "priya@mentorhub.io", "", []string{user.RoleCoordinator}, true)
	mentee := testutil.CreateUser(t, usrRepo, "Alex Johnson", "alex", "alex@student.edu", "", []string{user.RoleMentee}, true)
	pcToken := getToken(t, pc)

	var created resource.Resource
	t.Run("publish", func(t *testing.T) {
		body := marchallObj(t, resource.NewResource{
			Title: "Intro to React", URL: "https://example.com/react", Type: resource.TypeVideo,
			Tags: []string{"react", "frontend"},
		})

		// staff only
		req, rec := newAuthRequest(http.MethodPost, "/v1/resources", getToken(t, mentee), body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusForbidden)
		}

		req, rec = newAuthRequest(http.MethodPost, "/v1/resources", pcToken, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; body %v", rec.Code, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if created.AddedBy != pc.ID {
			t.Errorf("failed! AddedBy = %q; want %q", created.AddedBy, pc.ID)
		}
	})

	t.Run("query and tags", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/resources?tag=frontend", getToken(t, mentee))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallList(t, created)}, rec)

		req, rec = newAuthRequest(http.MethodGet, "/v1/resources/tags", getToken(t, mentee))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallList(t, "react", "frontend")}, rec)
	})

	t.Run("recommend", func(t *testing.T) {
		body := []byte(`{"recommended":true}`)
		req, rec := newAuthRequest(http.MethodPut, "/v1/resources/"+itoa(created.ID)+"/recommend", pcToken, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body %v", rec.Code, rec.Body.String())
		}
		var r resource.Resource
		if err := json.Unmarshal(rec.Body.Bytes(), &r); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if !r.Recommended {
			t.Error("failed! resource not recommended")
		}
	})

	t.Run("destroy", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/resources/"+itoa(created.ID), pcToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("failed! code = %v", rec.Code)
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/resources/"+itoa(created.ID), pcToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusNotFound)
		}
	})
}

func Test_analyticsApi(t *testing.T) {
	app := setup(t)

	_ = testutil.CreateMentee(t, mentorshipRepo, "Alex Johnson", "alex@student.edu", "PESCE Mandya",
		"Computer Science", []string{"Web Development"})
	_ = testutil.CreateMentee(t, mentorshipRepo, "Maya Patel", "maya@student.edu", "PESCE Mandya",
		"Information Science", []string{"Machine Learning"})
	_ = testutil.CreateMentee(t, mentorshipRepo, "Ryan Davis", "ryan@student.edu", "VVCE Mys",
		"Computer Science", nil)

	pc := testutil.CreateUser(t, usrRepo, "Priya Sharma", "priya", "priya@mentorhub.io", "", []string{user.RoleCoordinator}, true)
	mentee := testutil.CreateUser(t, usrRepo, "Alex Johnson", "alex", "alex@student.edu", "", []string{user.RoleMentee}, true)
	pcToken := getToken(t, pc)

	t.Run("staff only", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/analytics/colleges", getToken(t, mentee))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusForbidden)
		}
	})

	t.Run("college distribution", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/analytics/colleges", pcToken)
		app.ServeHTTP(rec, req)
		tt := httpTest{
			wantCode: http.StatusOK,
			wantData: []byte(`[{"name":"PESCE Mandya","count":2},{"name":"VVCE Mys","count":1}]`),
		}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("program distribution", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/analytics/programs", pcToken)
		app.ServeHTTP(rec, req)
		tt := httpTest{
			wantCode: http.StatusOK,
			wantData: []byte(`[{"name":"Computer Science","count":2},{"name":"Information Science","count":1}]`),
		}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("attendance starts empty", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/analytics/attendance", pcToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("failed! code = %v", rec.Code)
		}
	})
}
