package tests

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/mentorhub/mentorhub/core/mentorship"
	"github.com/mentorhub/mentorhub/core/user"
	testutil "github.com/mentorhub/mentorhub/tests"
)

func Test_mentorApi_apply(t *testing.T) {
	app := setup(t)

	reqMsg := "this field is required"
	tests := []httpTest{
		{
			name: "required fields", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, mentorship.NewMentor{}),
			wantData: []byte(`{"name":"` + reqMsg + `","email":"` + reqMsg + `","job":"` + reqMsg + `","expertise":"` + reqMsg + `"}`),
		},
		{
			name: "invalid email", wantCode: http.StatusBadRequest,
			body: marchallObj(t, mentorship.NewMentor{
				Name: "Priya Sharma", Email: "lol", Job: "Data Scientist", Expertise: []string{"Databases"},
			}),
			wantData: []byte(`{"email":"email must be a valid email address"}`),
		},
		{
			name: "application accepted", wantCode: http.StatusCreated,
			body: marchallObj(t, mentorship.NewMentor{
				Name: "Priya Sharma", Email: "priya@corp.com", Job: "Data Scientist",
				Company: "DataCorp", Expertise: []string{"Databases", "Machine Learning"},
			}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/mentors/apply"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusCreated {
				if rec.Code != tt.wantCode {
					t.Fatalf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				var mentor mentorship.Mentor
				if err := json.Unmarshal(rec.Body.Bytes(), &mentor); err != nil {
					t.Fatalf("json.Unmarshal() failed! err %v", err)
				}
				if mentor.Status != mentorship.StatusPending {
					t.Errorf("failed! Status = %v; want %v", mentor.Status, mentorship.StatusPending)
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_mentorApi_query(t *testing.T) {
	app := setup(t)

	john := testutil.CreateMentor(t, mentorshipRepo, "John Smith", "john@corp.com", "Senior Software Engineer",
		[]string{"Web Development", "System Design"}, 5, 8)
	sarah := testutil.CreateMentor(t, mentorshipRepo, "Sarah Johnson", "sarah@corp.com", "Data Scientist",
		[]string{"Machine Learning"}, 3, 3) // full
	david := testutil.CreateMentor(t, mentorshipRepo, "David Brown", "david@corp.com", "Staff Engineer",
		[]string{"Databases"}, 1, 3)

	mentee := testutil.CreateUser(t, usrRepo, "Alex Johnson", "alex", "alex@student.edu", "", []string{user.RoleMentee}, true)
	token := getToken(t, mentee)
	empty := marchallList(t, []interface{}{}...)

	path := func(search, expertise, status, withCapacity string) string {
		v := make(url.Values)
		if search != "" {
			v.Add("search", search)
		}
		if expertise != "" {
			v.Add("expertise", expertise)
		}
		if status != "" {
			v.Add("status", status)
		}
		if withCapacity != "" {
			v.Add("with_capacity", withCapacity)
		}
		return "/v1/mentors?" + v.Encode()
	}

	tests := []httpTest{
		{name: "Auth required", path: "/v1/mentors", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "Get all", path: "/v1/mentors", token: token, wantData: marchallList(t, john, sarah, david)},
		{name: "search (unknown)", path: path("lol", "", "", ""), token: token, wantData: empty},
		{name: "search on name", path: path("john", "", "", ""), token: token, wantData: marchallList(t, john, sarah)},
		{name: "search on job", path: path("engineer", "", "", ""), token: token, wantData: marchallList(t, john, david)},
		{name: "search on expertise", path: path("machine", "", "", ""), token: token, wantData: marchallList(t, sarah)},
		{name: "expertise facet", path: path("", "Databases", "", ""), token: token, wantData: marchallList(t, david)},
		{name: "expertise=all", path: path("", "all", "", ""), token: token, wantData: marchallList(t, john, sarah, david)},
		{name: "with capacity drops full mentors", path: path("", "", "", "true"), token: token, wantData: marchallList(t, john, david)},
		{name: "combo", path: path("john", "", "", "true"), token: token, wantData: marchallList(t, john)},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_mentorApi_approval(t *testing.T) {
	app := setup(t)

	admin := testutil.CreateUser(t, usrRepo, "Admin", "admin", "admin@mentorhub.io", "", []string{user.RoleAdmin}, true)
	mentee := testutil.CreateUser(t, usrRepo, "Alex Johnson", "alex", "alex@student.edu", "", []string{user.RoleMentee}, true)
	adminToken := getToken(t, admin)

	apply := func(t *testing.T, email string) mentorship.Mentor {
		t.Helper()
		body := marchallObj(t, mentorship.NewMentor{
			Name: "Priya Sharma", Email: email, Job: "Data Scientist", Expertise: []string{"Databases"},
		})
		req, rec := newRequest(http.MethodPost, "/v1/mentors/apply", body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("apply failed! code = %v", rec.Code)
		}
		var mentor mentorship.Mentor
		if err := json.Unmarshal(rec.Body.Bytes(), &mentor); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		return mentor
	}

	t.Run("approve", func(t *testing.T) {
		pending := apply(t, "priya@corp.com")

		// admin only
		req, rec := newAuthRequest(http.MethodPost, "/v1/mentors/"+itoa(pending.ID)+"/approve", getToken(t, mentee))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusForbidden)
		}

		req, rec = newAuthRequest(http.MethodPost, "/v1/mentors/"+itoa(pending.ID)+"/approve", adminToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body %v", rec.Code, rec.Body.String())
		}
		var mentor mentorship.Mentor
		if err := json.Unmarshal(rec.Body.Bytes(), &mentor); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if mentor.Status != mentorship.StatusActive {
			t.Errorf("failed! Status = %v; want %v", mentor.Status, mentorship.StatusActive)
		}

		// active is terminal
		req, rec = newAuthRequest(http.MethodPost, "/v1/mentors/"+itoa(pending.ID)+"/reject", adminToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusConflict {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusConflict)
		}
	})

	t.Run("reject", func(t *testing.T) {
		pending := apply(t, "mike@corp.com")

		req, rec := newAuthRequest(http.MethodPost, "/v1/mentors/"+itoa(pending.ID)+"/reject", adminToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body %v", rec.Code, rec.Body.String())
		}
		var mentor mentorship.Mentor
		if err := json.Unmarshal(rec.Body.Bytes(), &mentor); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if mentor.Status != mentorship.StatusRejected {
			t.Errorf("failed! Status = %v; want %v", mentor.Status, mentorship.StatusRejected)
		}

		// rejected is terminal
		req, rec = newAuthRequest(http.MethodPost, "/v1/mentors/"+itoa(pending.ID)+"/approve", adminToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusConflict {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusConflict)
		}
	})

	t.Run("unknown mentor", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/mentors/999/approve", adminToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("facets include approved mentors", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/mentors/facets", adminToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body %v", rec.Code, rec.Body.String())
		}
		var facets mentorship.FacetOptions
		if err := json.Unmarshal(rec.Body.Bytes(), &facets); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if len(facets.Expertise) == 0 {
			t.Error("failed! no expertise facets")
		}
	})
}
