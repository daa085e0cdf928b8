package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("Notifier exited with error")
		os.Exit(1)
	}
}
