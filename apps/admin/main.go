package main

import (
	"log"
	"os"

	"github.com/mentorhub/mentorhub/core"
	"github.com/mentorhub/mentorhub/core/mentorship"
	"github.com/mentorhub/mentorhub/core/user"
	emailsvc "github.com/mentorhub/mentorhub/services/email"
	notifsvc "github.com/mentorhub/mentorhub/services/notifier"
	"github.com/mentorhub/mentorhub/storage/database"
	sqlxrepos "github.com/mentorhub/mentorhub/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	db, err := database.Open(core.Conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(db.Ping())

	stdLog := core.NewStdLogger(logger)
	mailSvc := emailsvc.NewConsoleService()
	usrRepo := sqlxrepos.NewUserRepository(db)
	mentorshipRepo := sqlxrepos.NewMentorshipRepository(db)

	// start CLI
	cli := commandLine{
		db:            db,
		usrRepo:       usrRepo,
		usrSvc:        user.NewService(usrRepo, mailSvc, stdLog),
		mentorshipSvc: mentorship.NewService(mentorshipRepo, notifsvc.NewLogNotifier(stdLog), mailSvc),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
