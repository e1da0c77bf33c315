package fiberlog

import "github.com/sirupsen/logrus"

// Config selects the logger and the fields written for every api request.
// A nil Logger writes through the logrus standard logger.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault never includes the request body: login and user payloads carry passwords.
var ConfigDefault = Config{
	Tags: []string{
		RequestID,
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagUser,
	},
}
