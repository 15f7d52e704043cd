package booking

import (
	"testing"

	"github.com/mentorhub/mentorhub/core/mentorship"
)

var testMentor = mentorship.Mentor{
	ID:   1,
	Name: "John Smith",
	Availability: []mentorship.DayAvailability{
		{Date: "2025-03-15", Slots: []string{"10:00", "14:00", "16:00"}},
		{Date: "2025-03-17", Slots: []string{"11:00", "15:00"}},
		{Date: "2025-03-20", Slots: []string{}},
	},
}

func startedWorkflow(t *testing.T) *Workflow {
	t.Helper()
	wf := new(Workflow)
	if err := wf.SelectMentor(testMentor); err != nil {
		t.Fatalf("SelectMentor() failed: %v", err)
	}
	return wf
}

func detailsWorkflow(t *testing.T) *Workflow {
	t.Helper()
	wf := startedWorkflow(t)
	if err := wf.SelectDate("2025-03-15"); err != nil {
		t.Fatalf("SelectDate() failed: %v", err)
	}
	if err := wf.SelectSlot("14:00"); err != nil {
		t.Fatalf("SelectSlot() failed: %v", err)
	}
	if err := wf.Next(); err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	return wf
}

func TestWorkflow_SelectMentor(t *testing.T) {
	wf := new(Workflow)
	if err := wf.SelectMentor(testMentor); err != nil {
		t.Fatalf("SelectMentor() failed: %v", err)
	}
	if wf.Step != StepSelectSlot {
		t.Errorf("Step = %v; want %v", wf.Step, StepSelectSlot)
	}
	if wf.MentorID != testMentor.ID {
		t.Errorf("MentorID = %v; want %v", wf.MentorID, testMentor.ID)
	}
	if len(wf.Availability) != len(testMentor.Availability) {
		t.Errorf("Availability not snapshotted")
	}

	if err := wf.SelectMentor(testMentor); err != ErrWrongStep {
		t.Errorf("SelectMentor() at wrong step: err = %v; want %v", err, ErrWrongStep)
	}
}

func TestWorkflow_SelectMentor_rePickPreserves(t *testing.T) {
	wf := startedWorkflow(t)
	if err := wf.SelectDate("2025-03-15"); err != nil {
		t.Fatalf("SelectDate() failed: %v", err)
	}
	if err := wf.SelectSlot("10:00"); err != nil {
		t.Fatalf("SelectSlot() failed: %v", err)
	}

	// back to mentor selection; picking the same mentor again keeps choices
	wf.Back()
	if err := wf.SelectMentor(testMentor); err != nil {
		t.Fatalf("SelectMentor() failed: %v", err)
	}
	if wf.Date != "2025-03-15" || wf.Slot != "10:00" {
		t.Errorf("re-picking same mentor lost choices: date=%q slot=%q", wf.Date, wf.Slot)
	}

	// picking a different mentor resets everything downstream
	wf.Back()
	other := testMentor
	other.ID = 2
	if err := wf.SelectMentor(other); err != nil {
		t.Fatalf("SelectMentor() failed: %v", err)
	}
	if wf.Date != "" || wf.Slot != "" {
		t.Errorf("picking different mentor kept choices: date=%q slot=%q", wf.Date, wf.Slot)
	}
	if wf.MentorID != 2 {
		t.Errorf("MentorID = %v; want 2", wf.MentorID)
	}
}

func TestWorkflow_SelectDate(t *testing.T) {
	wf := new(Workflow)
	if err := wf.SelectDate("2025-03-15"); err != ErrWrongStep {
		t.Errorf("SelectDate() at wrong step: err = %v; want %v", err, ErrWrongStep)
	}

	wf = startedWorkflow(t)
	if err := wf.SelectDate("2025-03-16"); err != ErrDateUnavailable {
		t.Errorf("unknown date: err = %v; want %v", err, ErrDateUnavailable)
	}
	// a day with no open slots is effectively unavailable
	if err := wf.SelectDate("2025-03-20"); err != ErrDateUnavailable {
		t.Errorf("empty day: err = %v; want %v", err, ErrDateUnavailable)
	}

	if err := wf.SelectDate("2025-03-15"); err != nil {
		t.Fatalf("SelectDate() failed: %v", err)
	}
	if err := wf.SelectSlot("14:00"); err != nil {
		t.Fatalf("SelectSlot() failed: %v", err)
	}

	// changing the date invalidates the chosen slot
	if err := wf.SelectDate("2025-03-17"); err != nil {
		t.Fatalf("SelectDate() failed: %v", err)
	}
	if wf.Slot != "" {
		t.Errorf("changing date kept slot %q", wf.Slot)
	}

	// re-selecting the same date keeps the slot
	if err := wf.SelectSlot("11:00"); err != nil {
		t.Fatalf("SelectSlot() failed: %v", err)
	}
	if err := wf.SelectDate("2025-03-17"); err != nil {
		t.Fatalf("SelectDate() failed: %v", err)
	}
	if wf.Slot != "11:00" {
		t.Errorf("re-selecting same date lost slot: %q", wf.Slot)
	}
}

func TestWorkflow_SelectSlot(t *testing.T) {
	wf := startedWorkflow(t)
	if err := wf.SelectSlot("10:00"); err != ErrIncompleteSelection {
		t.Errorf("slot before date: err = %v; want %v", err, ErrIncompleteSelection)
	}

	if err := wf.SelectDate("2025-03-15"); err != nil {
		t.Fatalf("SelectDate() failed: %v", err)
	}
	if err := wf.SelectSlot("11:00"); err != ErrSlotUnavailable {
		t.Errorf("slot of another day: err = %v; want %v", err, ErrSlotUnavailable)
	}
	if err := wf.SelectSlot("16:00"); err != nil {
		t.Errorf("SelectSlot() failed: %v", err)
	}
}

func TestWorkflow_Next(t *testing.T) {
	wf := startedWorkflow(t)
	if err := wf.Next(); err != ErrIncompleteSelection {
		t.Errorf("Next() without selection: err = %v; want %v", err, ErrIncompleteSelection)
	}

	if err := wf.SelectDate("2025-03-15"); err != nil {
		t.Fatalf("SelectDate() failed: %v", err)
	}
	if err := wf.Next(); err != ErrIncompleteSelection {
		t.Errorf("Next() without slot: err = %v; want %v", err, ErrIncompleteSelection)
	}

	if err := wf.SelectSlot("10:00"); err != nil {
		t.Fatalf("SelectSlot() failed: %v", err)
	}
	if err := wf.Next(); err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if wf.Step != StepDetails {
		t.Errorf("Step = %v; want %v", wf.Step, StepDetails)
	}
	if err := wf.Next(); err != ErrWrongStep {
		t.Errorf("Next() at details: err = %v; want %v", err, ErrWrongStep)
	}
}

func TestWorkflow_Back(t *testing.T) {
	wf := detailsWorkflow(t)

	wf.Back()
	if wf.Step != StepSelectSlot {
		t.Errorf("Step = %v; want %v", wf.Step, StepSelectSlot)
	}
	if wf.Date != "2025-03-15" || wf.Slot != "14:00" {
		t.Errorf("Back() lost choices: date=%q slot=%q", wf.Date, wf.Slot)
	}

	wf.Back()
	if wf.Step != StepSelectMentor {
		t.Errorf("Step = %v; want %v", wf.Step, StepSelectMentor)
	}
	if wf.MentorID != testMentor.ID {
		t.Errorf("Back() lost mentor: %v", wf.MentorID)
	}

	// no-op at the first step
	wf.Back()
	if wf.Step != StepSelectMentor {
		t.Errorf("Step = %v; want %v", wf.Step, StepSelectMentor)
	}
}

func TestWorkflow_Submit(t *testing.T) {
	wf := startedWorkflow(t)
	if _, err := wf.Submit("Career advice", "", 0); err != ErrWrongStep {
		t.Errorf("Submit() at wrong step: err = %v; want %v", err, ErrWrongStep)
	}

	wf = detailsWorkflow(t)
	if _, err := wf.Submit("   ", "", 0); err != ErrTopicRequired {
		t.Errorf("whitespace topic: err = %v; want %v", err, ErrTopicRequired)
	}
	if _, err := wf.Submit("Career advice", "", 25); err != ErrInvalidDuration {
		t.Errorf("invalid duration: err = %v; want %v", err, ErrInvalidDuration)
	}

	req, err := wf.Submit("  Career advice  ", "  Looking forward  ", 0)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	want := Request{
		MentorID:        testMentor.ID,
		Date:            "2025-03-15",
		Time:            "14:00",
		Topic:           "Career advice",
		Notes:           "Looking forward",
		DurationMinutes: DefaultDurationMinutes,
		IdempotencyKey:  req.IdempotencyKey,
	}
	if req != want {
		t.Errorf("Request = %+v; want %+v", req, want)
	}
	if req.IdempotencyKey == "" {
		t.Error("IdempotencyKey not set")
	}
	if wf.Step != StepSelectMentor || wf.MentorID != 0 || wf.Availability != nil ||
		wf.Date != "" || wf.Slot != "" || wf.Topic != "" || wf.Notes != "" || wf.DurationMinutes != 0 {
		t.Errorf("workflow not reset after submit: %+v", wf)
	}
}

func TestWorkflow_Submit_explicitDuration(t *testing.T) {
	for _, d := range Durations {
		wf := detailsWorkflow(t)
		req, err := wf.Submit("Career advice", "", d)
		if err != nil {
			t.Fatalf("Submit(%d) failed: %v", d, err)
		}
		if req.DurationMinutes != d {
			t.Errorf("DurationMinutes = %d; want %d", req.DurationMinutes, d)
		}
	}
}
