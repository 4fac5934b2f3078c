// Package execlog provides the execution-side plumbing that callers wrap
// around the pure seqtab computations: a leveled logging facility with
// console and optional file sinks, and a scoped timing helper.
//
// ✨ Key features:
//   - Setup: console sink (stderr) at a minimum severity, plus an
//     optional file sink with its own minimum severity and destination
//   - Logger: fans every call out to all configured sinks
//   - Sink: the minimal leveled surface the timer consumes, satisfied by
//     both *Logger and charmbracelet's *log.Logger directly
//   - Timer: frames a block of work with "[name] start" and
//     "[name] done in …" messages
//
// ⚙️ Usage:
//
//	lg, err := execlog.Setup(execlog.Options{
//	  ConsoleLevel: "info",
//	  FileLevel:    "debug",
//	  Path:         "run.log",
//	})
//	if err != nil { ... }
//	defer lg.Close()
//
//	defer execlog.Timer("unstack correlations", lg)()
//	// ... work ...
//
// Loggers are plain values passed to whoever needs them — no process
// globals. The core packages (intervals, corrtab) never import execlog;
// purity there is part of their contract.
package execlog
