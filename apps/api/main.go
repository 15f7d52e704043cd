package main

import (
	"context"
	"log"
	"net/mail"
	"os"
	"os/signal"
	"syscall"

	echoapi "github.com/mentorhub/mentorhub/apps/api/echo"
	"github.com/mentorhub/mentorhub/core"
	"github.com/mentorhub/mentorhub/core/booking"
	"github.com/mentorhub/mentorhub/core/college"
	"github.com/mentorhub/mentorhub/core/meeting"
	"github.com/mentorhub/mentorhub/core/mentorship"
	"github.com/mentorhub/mentorhub/core/resource"
	"github.com/mentorhub/mentorhub/core/user"
	emailsvc "github.com/mentorhub/mentorhub/services/email"
	logsvc "github.com/mentorhub/mentorhub/services/logger"
	notifsvc "github.com/mentorhub/mentorhub/services/notifier"
	"github.com/mentorhub/mentorhub/storage/database"
	inmemdb "github.com/mentorhub/mentorhub/storage/database/inmem"
	sqlxrepos "github.com/mentorhub/mentorhub/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile)
	if err := run(std); err != nil {
		std.Fatalf("%+v", err)
	}
}

func run(std *log.Logger) error {
	conf := core.Conf

	// logger
	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = core.NewStdLogger(std)
	}

	// email
	var mailSvc core.EmailService
	if conf.SendgridApiKey != "" {
		mailSvc = emailsvc.NewSendgridService(logger)
	} else {
		mailSvc = emailsvc.NewConsoleService()
	}

	// storage
	var (
		usrRepo        user.Repository
		mentorshipRepo mentorship.Repository
		meetingRepo    meeting.Repository
		collegeRepo    college.Repository
		resourceRepo   resource.Repository
		seed           func(usrSvc user.ServiceInterface) error
	)
	if conf.Database.InMemory {
		db := inmemdb.NewDB()
		usrRepo = inmemdb.NewUserRepository(db)
		mentorshipRepo = inmemdb.NewMentorshipRepository(db)
		meetingRepo = inmemdb.NewMeetingRepository(db, mentorshipRepo)
		collegeRepo = inmemdb.NewCollegeRepository(db)
		resourceRepo = inmemdb.NewResourceRepository(db)
		seed = func(usrSvc user.ServiceInterface) error { return inmemdb.Seed(db, usrSvc) }
	} else {
		if err := database.CreateIfNotExist(conf); err != nil {
			return err
		}
		db, err := database.Open(conf)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		if err = database.Migrate(db, conf); err != nil {
			return err
		}

		usrRepo = sqlxrepos.NewUserRepository(db)
		mentorshipRepo = sqlxrepos.NewMentorshipRepository(db)
		meetingRepo = sqlxrepos.NewMeetingRepository(db)
		collegeRepo = sqlxrepos.NewCollegeRepository(db)
		resourceRepo = sqlxrepos.NewResourceRepository(db)
	}

	// notifier
	var notifier interface {
		booking.Notifier
		mentorship.Notifier
	}
	if conf.Debug {
		notifier = notifsvc.NewLogNotifier(logger)
	} else {
		coordTeam := mail.Address{Name: "Coordination Team", Address: conf.DefaultFromEmail.Address}
		notifier = notifsvc.NewEmailNotifier(mailSvc, mentorshipRepo, coordTeam, logger)
	}

	// services
	usrSvc := user.NewService(usrRepo, mailSvc, logger)
	mentorshipSvc := mentorship.NewService(mentorshipRepo, notifier, mailSvc)
	bookingSvc := booking.NewService(mentorshipRepo, notifier)
	meetingSvc := meeting.NewService(meetingRepo)
	collegeSvc := college.NewService(collegeRepo)
	resourceSvc := resource.NewService(resourceRepo)

	if seed != nil {
		if err := seed(usrSvc); err != nil {
			return err
		}
	}

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:       conf.Server.Addr(),
			Logger:        logger,
			UserSvc:       usrSvc,
			MentorshipSvc: mentorshipSvc,
			BookingSvc:    bookingSvc,
			MeetingSvc:    meetingSvc,
			CollegeSvc:    collegeSvc,
			ResourceSvc:   resourceSvc,
		},
	)
	go app.Start()

	// block until a termination signal or an integrity shutdown request
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-quit:
		std.Printf("received signal %v; shutting down", sig)
	case <-app.ShutdownSignal():
		std.Print("integrity issue detected; shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	return app.Stop(ctx)
}
