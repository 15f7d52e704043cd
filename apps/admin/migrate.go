package main

import (
	"github.com/mentorhub/mentorhub/core"
	"github.com/mentorhub/mentorhub/storage/database"
)

func (cli *commandLine) migrate() error {
	return database.Migrate(cli.db, core.Conf)
}
