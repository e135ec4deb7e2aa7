package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger. Production environments
// log JSON; everything else keeps the default text formatter for readability.
func Setup(level, environment string) {
	if environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// WithRequestID returns an entry tagged with the request id set by the
// middleware chain.
func WithRequestID(requestID string) *logrus.Entry {
	return logrus.WithField("request_id", requestID)
}
