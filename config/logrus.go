package config

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

const (
	green  = "\033[32m" // 200 series
	yellow = "\033[33m" // 300 series
	red    = "\033[31m" // 400 and 500 series
	reset  = "\033[0m"
)

// PrintLogInfo logs the outcome of a handler call, keyed by the acting
// user's email when one is known.
func PrintLogInfo(email *string, statusCode int, functionName string) {
	var logColor string

	switch {
	case statusCode < fiber.StatusMultipleChoices:
		logColor = green
	case statusCode < fiber.StatusBadRequest:
		logColor = yellow
	default:
		logColor = red
	}

	user := "Unknown"
	if email != nil {
		user = *email
	}

	GetLogrusInstance().Infof("User: %s, (%s) => Status: %s[%d] - %s%s",
		user, functionName, logColor, statusCode, http.StatusText(statusCode), reset)
}
