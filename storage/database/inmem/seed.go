package inmemdb

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/mentorhub/mentorhub/core/college"
	"github.com/mentorhub/mentorhub/core/meeting"
	"github.com/mentorhub/mentorhub/core/mentorship"
	"github.com/mentorhub/mentorhub/core/resource"
	"github.com/mentorhub/mentorhub/core/user"
)

// Seed loads a development dataset: six active mentors, one pending
// application, a mix of assigned and unassigned mentees, and a meeting
// history spanning all three statuses.
func Seed(db *DB, usrSvc user.ServiceInterface) error {
	ctx := context.Background()
	now := time.Now().UTC()

	people := NewMentorshipRepository(db)
	meetings := NewMeetingRepository(db, people)
	colleges := NewCollegeRepository(db)
	resources := NewResourceRepository(db)

	for _, c := range []college.College{
		{Name: "PESCE Mandya", Code: "PES23", Location: "Mandya, Karnataka", StudentCount: 42, MentorCount: 8, Active: true},
		{Name: "VVCE Mys", Code: "VVC23", Location: "Mysore, Karnataka", StudentCount: 35, MentorCount: 6, Active: true},
		{Name: "MSRIT Banglore", Code: "MSR23", Location: "Bangalore, Karnataka", StudentCount: 56, MentorCount: 12, Active: true},
	} {
		c.CreatedAt, c.UpdatedAt = now, now
		if _, err := colleges.CreateCollege(ctx, c); err != nil {
			return err
		}
	}

	mentors := []mentorship.Mentor{
		{
			Name: "John Smith", Email: "john.smith@techcorp.com", Job: "Senior Software Engineer", Company: "Tech Corp",
			Expertise: []string{"Web Development", "Machine Learning", "Mobile Apps"},
			Status:    mentorship.StatusActive, Rating: 4.8, MenteeCount: 5, MaxMentees: 8,
			Availability: []mentorship.DayAvailability{
				{Date: "2025-03-15", Slots: []string{"10:00", "14:00", "16:00"}},
				{Date: "2025-03-16", Slots: []string{"09:00", "11:00", "15:00"}},
				{Date: "2025-03-17", Slots: []string{"10:00", "13:00", "17:00"}},
			},
		},
		{
			Name: "Sarah Johnson", Email: "sarah.johnson@productinc.com", Job: "Product Manager", Company: "Product Inc",
			Expertise: []string{"Product Management", "UX Design", "Agile Methodologies"},
			Status:    mentorship.StatusActive, Rating: 4.9, MenteeCount: 3, MaxMentees: 5,
			Availability: []mentorship.DayAvailability{
				{Date: "2025-03-15", Slots: []string{"09:00", "13:00", "15:00"}},
				{Date: "2025-03-16", Slots: []string{"10:00", "14:00", "16:00"}},
				{Date: "2025-03-17", Slots: []string{"11:00", "15:00", "17:00"}},
			},
		},
		{
			Name: "Michael Chen", Email: "michael.chen@dataanalytics.co", Job: "Data Scientist", Company: "Data Analytics Co",
			Expertise: []string{"Data Science", "AI", "Machine Learning"},
			Status:    mentorship.StatusActive, Rating: 4.7, MenteeCount: 2, MaxMentees: 5,
			Availability: []mentorship.DayAvailability{
				{Date: "2025-03-15", Slots: []string{"11:00", "15:00", "17:00"}},
				{Date: "2025-03-16", Slots: []string{"09:00", "13:00", "16:00"}},
				{Date: "2025-03-17", Slots: []string{"10:00", "14:00", "16:00"}},
			},
		},
		{
			Name: "Emily Davis", Email: "emily.davis@designstudio.com", Job: "UX Designer", Company: "Design Studio",
			Expertise: []string{"UI/UX", "Graphic Design", "User Research"},
			Status:    mentorship.StatusActive, Rating: 4.6, MenteeCount: 4, MaxMentees: 6,
			Availability: []mentorship.DayAvailability{
				{Date: "2025-03-15", Slots: []string{"09:00", "12:00", "16:00"}},
				{Date: "2025-03-16", Slots: []string{"10:00", "14:00", "17:00"}},
				{Date: "2025-03-17", Slots: []string{"11:00", "15:00", "18:00"}},
			},
		},
		{
			Name: "Jennifer Lee", Email: "jennifer.lee@websolutions.com", Job: "Frontend Developer", Company: "Web Solutions",
			Expertise: []string{"React", "JavaScript", "Web Development"},
			Status:    mentorship.StatusActive, Rating: 4.5, MenteeCount: 2, MaxMentees: 4,
			Availability: []mentorship.DayAvailability{
				{Date: "2025-03-16", Slots: []string{"11:00", "15:00"}},
				{Date: "2025-03-18", Slots: []string{"09:00", "13:00", "16:00"}},
			},
		},
		{
			Name: "David Brown", Email: "david.brown@serversystems.com", Job: "Backend Engineer", Company: "Server Systems",
			Expertise: []string{"Node.js", "Databases", "System Analysis"},
			Status:    mentorship.StatusActive, Rating: 4.4, MenteeCount: 1, MaxMentees: 3,
			Availability: []mentorship.DayAvailability{
				{Date: "2025-03-16", Slots: []string{"09:00", "13:00"}},
				{Date: "2025-03-18", Slots: []string{"10:00", "15:00"}},
			},
		},
		{
			Name: "Priya Sharma", Email: "priya.sharma@cloudworks.io", Job: "DevOps Engineer", Company: "CloudWorks",
			Expertise: []string{"DevOps", "Kubernetes", "CI/CD"},
			Status:    mentorship.StatusPending, MaxMentees: 5,
		},
	}
	for _, m := range mentors {
		m.CreatedAt, m.UpdatedAt = now, now
		if _, err := people.CreateMentor(ctx, m); err != nil {
			return err
		}
	}

	mentees := []mentorship.Mentee{
		// unassigned
		{Name: "Ryan Davis", Email: "r.davis@college1.edu", College: "PESCE Mandya", Program: "Computer Engineering", Year: "4th Year",
			Interests: []string{"Embedded Systems", "IoT"}},
		{Name: "Ethan Wilson", Email: "e.wilson@college1.edu", College: "PESCE Mandya", Program: "Information Systems", Year: "3rd Year",
			Interests: []string{"Database Management", "System Analysis"}},
		{Name: "Maya Patel", Email: "m.patel@college2.edu", College: "VVCE Mys", Program: "Computer Science", Year: "2nd Year",
			Interests: []string{"AI", "Machine Learning"}},
		{Name: "Daniel Kim", Email: "d.kim@college3.edu", College: "MSRIT Banglore", Program: "Software Engineering", Year: "1st Year",
			Interests: []string{"Web Development", "Mobile Apps"}},
		{Name: "Zoe Rodriguez", Email: "z.rodriguez@college2.edu", College: "VVCE Mys", Program: "Cybersecurity", Year: "3rd Year",
			Interests: []string{"Network Security", "Ethical Hacking"}},
		// assigned
		{Name: "Alex Johnson", Email: "a.johnson@college1.edu", College: "PESCE Mandya", Program: "Computer Science", Year: "3rd Year",
			Interests: []string{"Web Development", "Machine Learning"}, MentorID: null.IntFrom(1)},
		{Name: "Jessica Williams", Email: "j.williams@college2.edu", College: "VVCE Mys", Program: "Information Science", Year: "4th Year",
			Interests: []string{"Product Management", "UX Design"}, MentorID: null.IntFrom(2)},
		{Name: "Emma Martinez", Email: "e.martinez@college3.edu", College: "MSRIT Banglore", Program: "Computer Science", Year: "2nd Year",
			Interests: []string{"Machine Learning", "Data Science"}, MentorID: null.IntFrom(3)},
		{Name: "Tyler Brown", Email: "t.brown@college2.edu", College: "VVCE Mys", Program: "Design", Year: "3rd Year",
			Interests: []string{"UI/UX", "Graphic Design"}, MentorID: null.IntFrom(4)},
		{Name: "Sophia Garcia", Email: "s.garcia@college3.edu", College: "MSRIT Banglore", Program: "Computer Science", Year: "4th Year",
			Interests: []string{"React", "Web Development"}, MentorID: null.IntFrom(5)},
		{Name: "Olivia Thompson", Email: "o.thompson@college2.edu", College: "VVCE Mys", Program: "Information Systems", Year: "4th Year",
			Interests: []string{"Databases", "System Analysis"}, MentorID: null.IntFrom(6)},
	}
	for _, m := range mentees {
		m.CreatedAt, m.UpdatedAt = now, now
		if _, err := people.CreateMentee(ctx, m); err != nil {
			return err
		}
	}

	type seedMeeting struct {
		mentorID, menteeID int
		startsAt           string
		duration           int
		status             meeting.Status
		topic              string
		rating             int
	}
	for _, sm := range []seedMeeting{
		{1, 6, "2025-03-10T10:00:00Z", 30, meeting.StatusCompleted, "Career guidance in software development", 5},
		{2, 7, "2025-03-10T14:00:00Z", 45, meeting.StatusScheduled, "Product management career path", 0},
		{3, 8, "2025-03-11T11:00:00Z", 30, meeting.StatusScheduled, "Machine learning project review", 0},
		{4, 9, "2025-03-09T15:30:00Z", 60, meeting.StatusCancelled, "UI/UX portfolio review", 0},
		{5, 10, "2025-03-08T13:00:00Z", 30, meeting.StatusCompleted, "Frontend development best practices", 4},
		{6, 11, "2025-03-07T09:00:00Z", 45, meeting.StatusCompleted, "Database optimization strategies", 4},
		{1, 1, "2025-03-12T16:00:00Z", 30, meeting.StatusScheduled, "Interview preparation", 0},
		{2, 2, "2025-03-13T11:30:00Z", 45, meeting.StatusScheduled, "Product roadmap planning", 0},
	} {
		startsAt, err := time.Parse(time.RFC3339, sm.startsAt)
		if err != nil {
			return err
		}
		m, err := meetings.CreateMeeting(ctx, meeting.Meeting{
			MentorID:        sm.mentorID,
			MenteeID:        sm.menteeID,
			StartsAt:        startsAt,
			DurationMinutes: sm.duration,
			Status:          meeting.StatusScheduled,
			Topic:           sm.topic,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return err
		}
		if sm.status != meeting.StatusScheduled {
			switch sm.status {
			case meeting.StatusCompleted:
				err = m.Complete()
			case meeting.StatusCancelled:
				err = m.Cancel()
			}
			if err == nil && sm.rating > 0 {
				err = m.SubmitFeedback(sm.rating, "")
			}
			if err != nil {
				return err
			}
			if _, err = meetings.UpdateMeeting(ctx, m); err != nil {
				return err
			}
		}
	}

	for _, r := range []resource.Resource{
		{Title: "React Fundamentals", Description: "Official introduction to building interfaces with React.",
			URL: "https://reactjs.org/docs/getting-started.html", Type: resource.TypeDocumentation,
			Tags: []string{"React", "Web Development", "Frontend"}, Recommended: true},
		{Title: "Data Science Crash Course", Description: "Hands-on micro-courses covering the data science toolkit.",
			URL: "https://www.kaggle.com/learn/overview", Type: resource.TypeCourse,
			Tags: []string{"Data Science", "Machine Learning", "Python"}},
		{Title: "UI/UX Design Principles", Description: "The ten usability heuristics every designer should know.",
			URL: "https://www.nngroup.com/articles/ten-usability-heuristics/", Type: resource.TypeArticle,
			Tags: []string{"UI/UX", "Design", "User Research"}},
		{Title: "Product Management Handbook", Description: "A practical guide to the product management discipline.",
			URL: "https://www.productplan.com/learn/product-management-handbook/", Type: resource.TypeEbook,
			Tags: []string{"Product Management", "Strategy", "Roadmapping"}},
		{Title: "Introduction to Machine Learning", Description: "Lecture series introducing core ML concepts.",
			URL: "https://www.youtube.com/watch?v=example", Type: resource.TypeVideo,
			Tags: []string{"Machine Learning", "AI", "Data Science"}},
		{Title: "Web Development Roadmap 2025", Description: "Step by step path to becoming a web developer.",
			URL: "https://roadmap.sh/frontend", Type: resource.TypeGuide,
			Tags: []string{"Web Development", "Frontend", "Backend", "DevOps"}, Recommended: true},
	} {
		r.CreatedAt, r.UpdatedAt = now, now
		if _, err := resources.CreateResource(ctx, r); err != nil {
			return err
		}
	}

	if usrSvc != nil {
		_, err := usrSvc.Create(ctx, user.NewUser{
			Name:            "MentorHub Admin",
			Username:        "mentorhubadmin",
			Email:           "admin@mentorhub.local",
			Password:        "LocalAdmin1!",
			PasswordConfirm: "LocalAdmin1!",
			Roles:           []string{user.RoleAdminOwner},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
