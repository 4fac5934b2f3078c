package execlog

import (
	"fmt"
	"time"
)

// Timer frames a block of work: it emits "[name] start" immediately and
// returns a func that emits "[name] done in <seconds>s" when called.
// Intended for defer:
//
//	defer execlog.Timer("load dataset", lg)()
//
// With a nil sink the messages fall back to plain stdout prints, so the
// helper stays usable before any logger exists. Purely advisory; it
// never alters the work it frames.
func Timer(name string, sink Sink) func() {
	start := time.Now()
	emit(sink, fmt.Sprintf("[%s] start", name))

	return func() {
		emit(sink, fmt.Sprintf("[%s] done in %.2fs", name, time.Since(start).Seconds()))
	}
}

// emit routes a timer message to the sink, or stdout when none is set.
func emit(sink Sink, msg string) {
	if sink == nil {
		fmt.Println(msg)
		return
	}
	sink.Info(msg)
}
