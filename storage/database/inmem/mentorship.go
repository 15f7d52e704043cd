package inmemdb

import (
	"context"
	"sort"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/mentorhub/mentorhub/core/mentorship"
)

type mentorshipRepository struct {
	mentors *mentorTable
	mentees *menteeTable
}

func NewMentorshipRepository(db *DB) mentorship.Repository {
	return &mentorshipRepository{mentors: db.mentor, mentees: db.mentee}
}

func (repo *mentorshipRepository) queryMentors() []mentorship.Mentor {
	mentors := make([]mentorship.Mentor, 0, len(repo.mentors.rows))
	for _, m := range repo.mentors.rows {
		mentors = append(mentors, *m)
	}
	sort.Slice(mentors, func(i, j int) bool { return mentors[i].ID < mentors[j].ID })
	return mentors
}

func (repo *mentorshipRepository) queryMentees() []mentorship.Mentee {
	mentees := make([]mentorship.Mentee, 0, len(repo.mentees.rows))
	for _, m := range repo.mentees.rows {
		mentees = append(mentees, *m)
	}
	sort.Slice(mentees, func(i, j int) bool { return mentees[i].ID < mentees[j].ID })
	return mentees
}

// Mentors

func (repo *mentorshipRepository) QueryAllMentors(_ context.Context) ([]mentorship.Mentor, error) {
	repo.mentors.mutex.RLock()
	defer repo.mentors.mutex.RUnlock()
	return repo.queryMentors(), nil
}

func (repo *mentorshipRepository) GetMentorByID(_ context.Context, id int) (mentorship.Mentor, error) {
	repo.mentors.mutex.RLock()
	defer repo.mentors.mutex.RUnlock()

	if m, ok := repo.mentors.rows[id]; ok {
		return *m, nil
	}
	return mentorship.Mentor{}, mentorship.ErrMentorNotFound
}

func (repo *mentorshipRepository) GetMentorByEmail(_ context.Context, email string) (mentorship.Mentor, error) {
	repo.mentors.mutex.RLock()
	defer repo.mentors.mutex.RUnlock()

	for _, m := range repo.queryMentors() {
		if m.Email == email {
			return m, nil
		}
	}
	return mentorship.Mentor{}, mentorship.ErrMentorNotFound
}

func (repo *mentorshipRepository) CreateMentor(_ context.Context, m mentorship.Mentor) (mentorship.Mentor, error) {
	repo.mentors.mutex.Lock()
	defer repo.mentors.mutex.Unlock()

	repo.mentors.seq++
	m.ID = repo.mentors.seq
	repo.mentors.rows[m.ID] = &m
	return m, nil
}

func (repo *mentorshipRepository) UpdateMentorStatus(_ context.Context, id int, status mentorship.Status) (mentorship.Mentor, error) {
	repo.mentors.mutex.Lock()
	defer repo.mentors.mutex.Unlock()

	m, ok := repo.mentors.rows[id]
	if !ok {
		return mentorship.Mentor{}, mentorship.ErrMentorNotFound
	}
	m.Status = status
	m.UpdatedAt = time.Now().UTC()
	return *m, nil
}

func (repo *mentorshipRepository) SetMentorAvailability(_ context.Context, id int, avail []mentorship.DayAvailability) (mentorship.Mentor, error) {
	repo.mentors.mutex.Lock()
	defer repo.mentors.mutex.Unlock()

	m, ok := repo.mentors.rows[id]
	if !ok {
		return mentorship.Mentor{}, mentorship.ErrMentorNotFound
	}
	m.Availability = avail
	m.UpdatedAt = time.Now().UTC()
	return *m, nil
}

// Mentees

func (repo *mentorshipRepository) QueryAllMentees(_ context.Context) ([]mentorship.Mentee, error) {
	repo.mentees.mutex.RLock()
	defer repo.mentees.mutex.RUnlock()
	return repo.queryMentees(), nil
}

func (repo *mentorshipRepository) GetMenteeByID(_ context.Context, id int) (mentorship.Mentee, error) {
	repo.mentees.mutex.RLock()
	defer repo.mentees.mutex.RUnlock()

	if m, ok := repo.mentees.rows[id]; ok {
		return *m, nil
	}
	return mentorship.Mentee{}, mentorship.ErrMenteeNotFound
}

func (repo *mentorshipRepository) CreateMentee(_ context.Context, m mentorship.Mentee) (mentorship.Mentee, error) {
	repo.mentees.mutex.Lock()
	defer repo.mentees.mutex.Unlock()

	repo.mentees.seq++
	m.ID = repo.mentees.seq
	repo.mentees.rows[m.ID] = &m
	return m, nil
}

// AssignMentor takes both table locks so the capacity check and the link are
// one atomic step, mirroring the SQL implementation's transaction.
func (repo *mentorshipRepository) AssignMentor(_ context.Context, menteeID, mentorID int) (mentorship.Mentee, error) {
	repo.mentors.mutex.Lock()
	defer repo.mentors.mutex.Unlock()
	repo.mentees.mutex.Lock()
	defer repo.mentees.mutex.Unlock()

	mentor, ok := repo.mentors.rows[mentorID]
	if !ok {
		return mentorship.Mentee{}, mentorship.ErrMentorNotFound
	}
	mentee, ok := repo.mentees.rows[menteeID]
	if !ok {
		return mentorship.Mentee{}, mentorship.ErrMenteeNotFound
	}

	if !mentor.HasCapacity() {
		return mentorship.Mentee{}, mentorship.ErrCapacityExceeded
	}
	if mentee.Assigned() {
		return mentorship.Mentee{}, mentorship.ErrAlreadyAssigned
	}

	now := time.Now().UTC()
	mentor.MenteeCount++
	mentor.UpdatedAt = now
	mentee.MentorID = null.IntFrom(mentorID)
	mentee.UpdatedAt = now
	return *mentee, nil
}
