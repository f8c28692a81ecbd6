package game

import "github.com/sirupsen/logrus"

var logger = logrus.WithField("component", "game")

// SetLogger replaces the entry dealing and play are logged through.
func SetLogger(l *logrus.Entry) {
	if l != nil {
		logger = l
	}
}
