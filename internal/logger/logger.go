package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

const projectName = "starshow"

var (
	once    sync.Once
	project *logrus.Logger
)

// GetProjectLogger returns the shared logger every package writes through.
func GetProjectLogger() *logrus.Entry {
	once.Do(func() {
		project = logrus.New()
		project.SetOutput(os.Stderr)
		project.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		})
		project.SetLevel(logrus.InfoLevel)
	})
	return project.WithField("app", projectName)
}

// SetLevel parses a logrus level name ("debug", "info", ...) and applies it.
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	GetProjectLogger().Logger.SetLevel(lvl)
	return nil
}
