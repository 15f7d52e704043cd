package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mentorhub/mentorhub/core/booking"
	"github.com/mentorhub/mentorhub/core/mentorship"
	"github.com/mentorhub/mentorhub/core/user"
	testutil "github.com/mentorhub/mentorhub/tests"
)

func Test_bookingApi_flow(t *testing.T) {
	app := setup(t)

	mentor := testutil.CreateMentor(t, mentorshipRepo, "John Smith", "john@corp.com", "Senior Engineer",
		[]string{"Web Development"}, 0, 5,
		mentorship.DayAvailability{Date: "2025-03-15", Slots: []string{"10:00", "14:00", "16:00"}},
		mentorship.DayAvailability{Date: "2025-03-17", Slots: []string{"11:00", "15:00"}},
	)
	mentee := testutil.CreateUser(t, usrRepo, "Alex Johnson", "alex", "alex@student.edu", "", []string{user.RoleMentee}, true)
	token := getToken(t, mentee)

	do := func(t *testing.T, method, path string, body []byte, wantCode int) []byte {
		t.Helper()
		req, rec := newAuthRequest(method, path, token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != wantCode {
			t.Fatalf("%s %s code = %v; wantCode %v; body %v", method, path, rec.Code, wantCode, rec.Body.String())
		}
		return rec.Body.Bytes()
	}
	workflowOf := func(t *testing.T, data []byte) booking.Workflow {
		t.Helper()
		var wf booking.Workflow
		if err := json.Unmarshal(data, &wf); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		return wf
	}

	// auth required on every endpoint
	req, rec := newRequest(http.MethodGet, "/v1/booking")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusUnauthorized)
	}

	// a fresh session starts at mentor selection
	wf := workflowOf(t, do(t, http.MethodGet, "/v1/booking", nil, http.StatusOK))
	if wf.Step != booking.StepSelectMentor {
		t.Fatalf("Step = %v; want %v", wf.Step, booking.StepSelectMentor)
	}

	// slot selection before a mentor is picked is out of order
	do(t, http.MethodPost, "/v1/booking/slot", []byte(`{"slot":"10:00"}`), http.StatusConflict)

	// unknown mentor
	do(t, http.MethodPost, "/v1/booking/mentor", []byte(`{"mentor_id":999}`), http.StatusNotFound)

	// pick the mentor
	wf = workflowOf(t, do(t, http.MethodPost, "/v1/booking/mentor", marchallObj(t, struct {
		MentorID int `json:"mentor_id"`
	}{mentor.ID}), http.StatusOK))
	if wf.Step != booking.StepSelectSlot {
		t.Fatalf("Step = %v; want %v", wf.Step, booking.StepSelectSlot)
	}

	// the date list comes from the mentor's availability snapshot
	var dates []string
	if err := json.Unmarshal(do(t, http.MethodGet, "/v1/booking/dates", nil, http.StatusOK), &dates); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}
	if len(dates) != 2 || dates[0] != "2025-03-15" {
		t.Fatalf("dates = %v", dates)
	}

	// next without a full selection
	do(t, http.MethodPost, "/v1/booking/next", nil, http.StatusBadRequest)

	// dates outside the snapshot are rejected
	do(t, http.MethodPost, "/v1/booking/date", []byte(`{"date":"2025-03-16"}`), http.StatusBadRequest)
	do(t, http.MethodPost, "/v1/booking/date", []byte(`{"date":"2025-03-15"}`), http.StatusOK)

	var slots []string
	if err := json.Unmarshal(do(t, http.MethodGet, "/v1/booking/slots?date=2025-03-15", nil, http.StatusOK), &slots); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("slots = %v", slots)
	}

	do(t, http.MethodPost, "/v1/booking/slot", []byte(`{"slot":"14:00"}`), http.StatusOK)

	// changing the date clears the chosen slot
	wf = workflowOf(t, do(t, http.MethodPost, "/v1/booking/date", []byte(`{"date":"2025-03-17"}`), http.StatusOK))
	if wf.Slot != "" {
		t.Fatalf("Slot = %q; want cleared", wf.Slot)
	}
	do(t, http.MethodPost, "/v1/booking/slot", []byte(`{"slot":"11:00"}`), http.StatusOK)

	wf = workflowOf(t, do(t, http.MethodPost, "/v1/booking/next", nil, http.StatusOK))
	if wf.Step != booking.StepDetails {
		t.Fatalf("Step = %v; want %v", wf.Step, booking.StepDetails)
	}

	// back preserves the selection
	wf = workflowOf(t, do(t, http.MethodPost, "/v1/booking/back", nil, http.StatusOK))
	if wf.Step != booking.StepSelectSlot || wf.Date != "2025-03-17" || wf.Slot != "11:00" {
		t.Fatalf("back lost state: %+v", wf)
	}
	do(t, http.MethodPost, "/v1/booking/next", nil, http.StatusOK)

	// topic is required, duration must be a valid choice
	do(t, http.MethodPost, "/v1/booking/submit", []byte(`{"topic":"   "}`), http.StatusBadRequest)
	do(t, http.MethodPost, "/v1/booking/submit", []byte(`{"topic":"Career advice","duration_minutes":25}`), http.StatusBadRequest)

	body := do(t, http.MethodPost, "/v1/booking/submit",
		[]byte(`{"topic":"  Career advice  ","notes":"resume attached"}`), http.StatusOK)
	var bookingReq booking.Request
	if err := json.Unmarshal(body, &bookingReq); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}
	if bookingReq.MentorID != mentor.ID || bookingReq.Date != "2025-03-17" || bookingReq.Time != "11:00" {
		t.Errorf("request = %+v", bookingReq)
	}
	if bookingReq.Topic != "Career advice" {
		t.Errorf("Topic = %q; want trimmed", bookingReq.Topic)
	}
	if bookingReq.DurationMinutes != booking.DefaultDurationMinutes {
		t.Errorf("DurationMinutes = %d; want default %d", bookingReq.DurationMinutes, booking.DefaultDurationMinutes)
	}

	// exactly one event was handed off
	if len(notifier.Bookings) != 1 {
		t.Fatalf("len(Bookings) = %d; want 1", len(notifier.Bookings))
	}
	ev := notifier.Bookings[0]
	if ev.MentorID != mentor.ID || ev.Date != "2025-03-17" || ev.Time != "11:00" || ev.Topic != "Career advice" {
		t.Errorf("event = %+v", ev)
	}

	// the workflow reset for the next booking
	wf = workflowOf(t, do(t, http.MethodGet, "/v1/booking", nil, http.StatusOK))
	if wf.Step != booking.StepSelectMentor || wf.MentorID != 0 {
		t.Errorf("workflow not reset: %+v", wf)
	}
}

func Test_bookingApi_reset(t *testing.T) {
	app := setup(t)

	mentor := testutil.CreateMentor(t, mentorshipRepo, "John Smith", "john@corp.com", "Senior Engineer", nil, 0, 5,
		mentorship.DayAvailability{Date: "2025-03-15", Slots: []string{"10:00"}})
	mentee := testutil.CreateUser(t, usrRepo, "Alex Johnson", "alex", "alex@student.edu", "", []string{user.RoleMentee}, true)
	token := getToken(t, mentee)

	body := marchallObj(t, struct {
		MentorID int `json:"mentor_id"`
	}{mentor.ID})
	req, rec := newAuthRequest(http.MethodPost, "/v1/booking/mentor", token, body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; body %v", rec.Code, rec.Body.String())
	}

	req, rec = newAuthRequest(http.MethodDelete, "/v1/booking", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("failed! code = %v", rec.Code)
	}

	req, rec = newAuthRequest(http.MethodGet, "/v1/booking", token)
	app.ServeHTTP(rec, req)
	var wf booking.Workflow
	if err := json.Unmarshal(rec.Body.Bytes(), &wf); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}
	if wf.Step != booking.StepSelectMentor || wf.MentorID != 0 {
		t.Errorf("workflow not reset: %+v", wf)
	}
}
