package configs

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the standard logrus logger used across the app.
// Debug mode switches to the text formatter and lowers the level.
func InitLogger(debug bool) *logrus.Logger {
	l := logrus.StandardLogger()
	l.SetOutput(os.Stdout)
	if debug {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}
