package interp

import (
	"strconv"
	"strings"
)

// jobState describes the lifecycle state of a tracked background job.
type jobState int

const (
	jobRunning jobState = iota
	jobStopped
	jobDone
)

func (r *Runner) jobState(bg *bgProc) jobState {
	select {
	case <-bg.done:
		return jobDone
	default:
	}
	if bg.stopped {
		return jobStopped
	}
	return jobRunning
}

func (s jobState) String() string {
	switch s {
	case jobStopped:
		return "Stopped"
	case jobDone:
		return "Done"
	default:
		return "Running"
	}
}

// resolveJobArg parses a "%n", "gN" or bare job number argument into a
// bgProcs index, returning false if it does not name a tracked job.
func (r *Runner) resolveJobArg(arg string) (int, bool) {
	arg = strings.TrimPrefix(arg, "%")
	arg = strings.TrimPrefix(arg, "g")
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 || n > len(r.bgProcs) {
		return 0, false
	}
	return n - 1, true
}

// jobFailf writes a diagnostic to stderr and returns the matching failure
// exitStatus, mirroring the failf closure the builtin dispatch switch uses.
func (r *Runner) jobFailf(code uint8, format string, a ...any) exitStatus {
	r.errf(format, a...)
	return exitStatus{code: code}
}

// jobsBuiltin implements the "jobs" built-in: list tracked background jobs.
func (r *Runner) jobsBuiltin(args []string) exitStatus {
	long := false
	fp := flagParser{remaining: args}
	for fp.more() {
		switch flag := fp.flag(); flag {
		case "-l":
			long = true
		default:
			return r.jobFailf(2, "jobs: invalid option %q\n", flag)
		}
	}
	for i := range r.bgProcs {
		bg := &r.bgProcs[i]
		if bg.disowned {
			continue
		}
		state := r.jobState(bg)
		if long {
			r.outf("[%d] g%d %s %s\n", i+1, i+1, state, bg.text)
		} else {
			r.outf("[%d] %s %s\n", i+1, state, bg.text)
		}
	}
	return exitStatus{}
}

// fgBuiltin implements "fg": wait for a background job as if it were run in
// the foreground, surfacing its exit status.
func (r *Runner) fgBuiltin(args []string) exitStatus {
	idx := len(r.bgProcs) - 1
	if len(args) > 0 {
		var ok bool
		idx, ok = r.resolveJobArg(args[0])
		if !ok {
			return r.jobFailf(1, "fg: %s: no such job\n", args[0])
		}
	}
	if idx < 0 {
		return r.jobFailf(1, "fg: no current job\n")
	}
	bg := &r.bgProcs[idx]
	bg.stopped = false
	r.outf("%s\n", bg.text)
	<-bg.done
	return *bg.exit
}

// bgBuiltin implements "bg": resume a stopped job without waiting on it.
func (r *Runner) bgBuiltin(args []string) exitStatus {
	idx := len(r.bgProcs) - 1
	if len(args) > 0 {
		var ok bool
		idx, ok = r.resolveJobArg(args[0])
		if !ok {
			return r.jobFailf(1, "bg: %s: no such job\n", args[0])
		}
	}
	if idx < 0 {
		return r.jobFailf(1, "bg: no current job\n")
	}
	bg := &r.bgProcs[idx]
	if r.jobState(bg) != jobStopped {
		return exitStatus{}
	}
	bg.stopped = false
	r.outf("[%d] %s\n", idx+1, bg.text)
	return exitStatus{}
}

// disownBuiltin implements "disown": stop tracking a job so shell exit no
// longer implicitly waits on or reports it.
func (r *Runner) disownBuiltin(args []string) exitStatus {
	if len(args) == 0 {
		for i := range r.bgProcs {
			r.bgProcs[i].disowned = true
		}
		return exitStatus{}
	}
	for _, arg := range args {
		idx, ok := r.resolveJobArg(arg)
		if !ok {
			return r.jobFailf(1, "disown: %s: no such job\n", arg)
		}
		r.bgProcs[idx].disowned = true
	}
	return exitStatus{}
}

// killBuiltin implements enough of "kill" to act on tracked background jobs
// started with "&": %N job specifiers cancel the job's goroutine context.
// Raw host pids would require a real process table this interpreter does
// not have (jobs here are goroutines, not forked processes, per the
// spawner abstraction), so they are rejected with a clear error rather than
// silently ignored.
func (r *Runner) killBuiltin(args []string) exitStatus {
	fp := flagParser{remaining: args}
	for fp.more() {
		switch flag := fp.flag(); flag {
		case "-l":
			for i := range r.bgProcs {
				r.outf("%d\n", i+1)
			}
			return exitStatus{}
		default:
			// a signal name/number prefix such as -TERM or -9; accepted
			// but this runtime only ever cancels the job's context.
		}
	}
	for _, arg := range fp.args() {
		if !strings.HasPrefix(arg, "%") {
			return r.jobFailf(1, "kill: %s: only job specifiers (%%N) are supported\n", arg)
		}
		idx, ok := r.resolveJobArg(arg)
		if !ok {
			return r.jobFailf(1, "kill: %s: no such job\n", arg)
		}
		bg := &r.bgProcs[idx]
		if bg.cancel != nil {
			bg.cancel()
		}
	}
	return exitStatus{}
}
