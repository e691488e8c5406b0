package solvium

import (
	"io"

	"github.com/sirupsen/logrus"
)

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// truncateToken shortens a solution token for log lines. Full tokens stay out
// of logs; the prefix is enough to correlate with the caller's usage.
func truncateToken(token string) string {
	const keep = 12
	if len(token) <= keep {
		return token
	}
	return token[:keep] + "..."
}
