package tests

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mentorhub/mentorhub/apps/api/echo"
	"github.com/mentorhub/mentorhub/core"
	"github.com/mentorhub/mentorhub/core/booking"
	"github.com/mentorhub/mentorhub/core/college"
	"github.com/mentorhub/mentorhub/core/meeting"
	"github.com/mentorhub/mentorhub/core/mentorship"
	"github.com/mentorhub/mentorhub/core/resource"
	"github.com/mentorhub/mentorhub/core/user"
	emailsvc "github.com/mentorhub/mentorhub/services/email"
	notifsvc "github.com/mentorhub/mentorhub/services/notifier"
	inmemdb "github.com/mentorhub/mentorhub/storage/database/inmem"
)

var (
	usrRepo        user.Repository
	mentorshipRepo mentorship.Repository
	meetingRepo    meeting.Repository
	notifier       *notifsvc.LogNotifier

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
)

func setup(t *testing.T) Server {
	t.Helper()

	// set up DB & repos
	db := inmemdb.NewDB()
	usrRepo = inmemdb.NewUserRepository(db)
	mentorshipRepo = inmemdb.NewMentorshipRepository(db)
	meetingRepo = inmemdb.NewMeetingRepository(db, mentorshipRepo)
	collegeRepo := inmemdb.NewCollegeRepository(db)
	resourceRepo := inmemdb.NewResourceRepository(db)

	// set up services
	logger := core.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))
	mailSvc := emailsvc.NewConsoleServiceMock()
	notifier = notifsvc.NewLogNotifier(logger)
	usrSvc := user.NewServiceMock(usrRepo, mailSvc, logger)
	mentorshipSvc := mentorship.NewService(mentorshipRepo, notifier, mailSvc)
	bookingSvc := booking.NewService(mentorshipRepo, notifier)
	meetingSvc := meeting.NewService(meetingRepo)
	collegeSvc := college.NewService(collegeRepo)
	resourceSvc := resource.NewService(resourceRepo)

	// set up server
	return NewServer(
		&Options{
			DisableReqLogs: true,
			Logger:         logger,
			UserSvc:        usrSvc,
			MentorshipSvc:  mentorshipSvc,
			BookingSvc:     bookingSvc,
			MeetingSvc:     meetingSvc,
			CollegeSvc:     collegeSvc,
			ResourceSvc:    resourceSvc,
		},
	)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func itoa(id int) string { return strconv.Itoa(id) }

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	claims := GetUserClaims(usr)
	token, err := GenerateToken(claims)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

// nolint
func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
