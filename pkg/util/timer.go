package util

import (
	"fmt"
	"time"
)

/*
	usage:

	func foo() {
		defer util.Timer(log, "foo")()
		// code to measure
	}

*/

// Printer is satisfied by *logger.Logger.
type Printer interface {
	Infof(format string, args ...interface{})
}

// Timer starts a clock and returns a func that logs the elapsed time.
func Timer(p Printer, msg string) func() {
	start := time.Now()
	return func() {
		p.Infof("%v: %v", msg, time.Since(start))
	}
}

func FormatTime(msg string, t1, t2 time.Time) string {
	return fmt.Sprintf("%s: %0.6f sec",
		msg, // the message to print
		float64(t2.Sub(t1).Nanoseconds())/float64(time.Second.Nanoseconds()), // the seconds
	)
}
