package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/dirscope/dirscope/internal/cli"
)

var version = "dev"

func main() {
	configureLogrus()

	if err := cli.New(version).Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func configureLogrus() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(log.InfoLevel)
}
