package lib

import "github.com/sirupsen/logrus"

var log = logrus.WithField("component", "label")
