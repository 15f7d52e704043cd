// Package inmemdb provides map-backed repositories for local development and
// tests. Iteration is by ascending primary key so query results are
// deterministic.
package inmemdb

import (
	"sync"

	"github.com/mentorhub/mentorhub/core/college"
	"github.com/mentorhub/mentorhub/core/meeting"
	"github.com/mentorhub/mentorhub/core/mentorship"
	"github.com/mentorhub/mentorhub/core/resource"
	"github.com/mentorhub/mentorhub/core/user"
)

type (
	userTable struct {
		mutex sync.RWMutex
		rows  map[string]*user.User
	}

	mentorTable struct {
		mutex sync.RWMutex
		seq   int
		rows  map[int]*mentorship.Mentor
	}

	menteeTable struct {
		mutex sync.RWMutex
		seq   int
		rows  map[int]*mentorship.Mentee
	}

	meetingTable struct {
		mutex sync.RWMutex
		seq   int
		rows  map[int]*meeting.Meeting
	}

	collegeTable struct {
		mutex sync.RWMutex
		seq   int
		rows  map[int]*college.College
	}

	resourceTable struct {
		mutex sync.RWMutex
		seq   int
		rows  map[int]*resource.Resource
	}

	DB struct {
		user     *userTable
		mentor   *mentorTable
		mentee   *menteeTable
		meeting  *meetingTable
		college  *collegeTable
		resource *resourceTable
	}
)

func NewDB() *DB {
	return &DB{
		user:     &userTable{rows: make(map[string]*user.User)},
		mentor:   &mentorTable{rows: make(map[int]*mentorship.Mentor)},
		mentee:   &menteeTable{rows: make(map[int]*mentorship.Mentee)},
		meeting:  &meetingTable{rows: make(map[int]*meeting.Meeting)},
		college:  &collegeTable{rows: make(map[int]*college.College)},
		resource: &resourceTable{rows: make(map[int]*resource.Resource)},
	}
}
