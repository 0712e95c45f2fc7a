package main

import (
	"log"
	"os"

	urfave "github.com/urfave/cli/v2"

	"github.com/kutbudev/gorevce/cli"
)

func main() {
	app := &urfave.App{
		Name:  "gorevce-local",
		Usage: "Manage your to-do list directly against the local database",
		Commands: []*urfave.Command{
			cli.NewTaskCommand(),
			cli.NewTagCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
