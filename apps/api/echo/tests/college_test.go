package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mentorhub/mentorhub/core/college"
	"github.com/mentorhub/mentorhub/core/user"
	testutil "github.com/mentorhub/mentorhub/tests"
)

func Test_collegeApi(t *testing.T) {
	app := setup(t)

	admin := testutil.CreateUser(t, usrRepo, "Admin", "admin", "admin@mentorhub.io", "", []string{user.RoleAdmin}, true)
	mentee := testutil.CreateUser(t, usrRepo, "Alex Johnson", "alex", "alex@student.edu", "", []string{user.RoleMentee}, true)
	adminToken := getToken(t, admin)

	var created college.College
	t.Run("create", func(t *testing.T) {
		body := marchallObj(t, college.NewCollege{Name: "PESCE Mandya", Code: "pes23", Location: "Mandya"})

		// admin only
		req, rec := newAuthRequest(http.MethodPost, "/v1/colleges", getToken(t, mentee), body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusForbidden)
		}

		req, rec = newAuthRequest(http.MethodPost, "/v1/colleges", adminToken, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; body %v", rec.Code, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if created.Code != "PES23" {
			t.Errorf("failed! Code = %q; want upper-cased PES23", created.Code)
		}
	})

	t.Run("query and retrieve", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/colleges", getToken(t, mentee))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallList(t, created)}, rec)

		req, rec = newAuthRequest(http.MethodGet, "/v1/colleges/"+itoa(created.ID), getToken(t, mentee))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, created)}, rec)

		req, rec = newAuthRequest(http.MethodGet, "/v1/colleges/999", getToken(t, mentee))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("update", func(t *testing.T) {
		inactive := false
		body := marchallObj(t, college.UpdateCollege{Location: "Mandya Karnataka", Active: &inactive})
		req, rec := newAuthRequest(http.MethodPut, "/v1/colleges/"+itoa(created.ID), adminToken, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body %v", rec.Code, rec.Body.String())
		}
		var updated college.College
		if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if updated.Location != "Mandya Karnataka" || updated.Active {
			t.Errorf("failed! updated = %+v", updated)
		}
		if updated.Name != created.Name {
			t.Errorf("failed! Name = %q; want unchanged %q", updated.Name, created.Name)
		}
	})
}
