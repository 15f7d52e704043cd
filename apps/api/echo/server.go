package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/mentorhub/mentorhub/core"
	"github.com/mentorhub/mentorhub/core/booking"
	"github.com/mentorhub/mentorhub/core/college"
	"github.com/mentorhub/mentorhub/core/meeting"
	"github.com/mentorhub/mentorhub/core/mentorship"
	"github.com/mentorhub/mentorhub/core/resource"
	"github.com/mentorhub/mentorhub/core/user"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool

		Logger        core.Logger
		UserSvc       user.ServiceInterface
		MentorshipSvc mentorship.ServiceInterface
		BookingSvc    booking.ServiceInterface
		MeetingSvc    meeting.ServiceInterface
		CollegeSvc    college.ServiceInterface
		ResourceSvc   resource.ServiceInterface
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
		ShutdownSignal() <-chan struct{}
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		shutdown chan struct{}
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		shutdown: make(chan struct{}, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerUserAPI(v1, jwt, s.opts.UserSvc)
	registerMentorAPI(v1, jwt, s.opts.MentorshipSvc)
	registerMenteeAPI(v1, jwt, s.opts.MentorshipSvc)
	registerBookingAPI(v1, jwt, s.opts.MentorshipSvc, s.opts.BookingSvc)
	registerMeetingAPI(v1, jwt, s.opts.MeetingSvc)
	registerCollegeAPI(v1, jwt, s.opts.CollegeSvc)
	registerResourceAPI(v1, jwt, s.opts.ResourceSvc)
	registerAnalyticsAPI(v1, jwt, s.opts.MentorshipSvc, s.opts.MeetingSvc)
}

// ShutdownSignal is closed-ish: receives once when an integrity error asks the
// main goroutine to stop the server.
func (s *server) ShutdownSignal() <-chan struct{} { return s.shutdown }

func (s *server) signalShutdown() {
	select {
	case s.shutdown <- struct{}{}:
	default:
	}
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to MentorHub API!")
}
