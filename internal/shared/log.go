package shared

import "github.com/sirupsen/logrus"

var logger = logrus.WithField("component", "shared")

// SetLogger replaces the entry the card model logs through.
func SetLogger(l *logrus.Entry) {
	if l != nil {
		logger = l
	}
}
