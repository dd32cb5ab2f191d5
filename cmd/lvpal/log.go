// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpal/palindrome"
)

// newLogger builds a logger on w. trace raises the level to at least debug.
func newLogger(w io.Writer, level string, trace bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("lvpal: %w", err)
	}
	if trace && lvl < logrus.DebugLevel {
		lvl = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return log, nil
}

// cellTracer logs every decided DP cell at debug level.
func cellTracer(log logrus.FieldLogger) func(palindrome.Cell) {
	return func(c palindrome.Cell) {
		log.WithFields(logrus.Fields{
			"i":          c.I,
			"j":          c.J,
			"palindrome": c.Palindrome,
			"best":       c.Best.String(),
		}).Debug("cell decided")
	}
}
