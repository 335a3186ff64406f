// Package jobs runs external media-processing tools as monitored
// background jobs: progress parsed from the child's output, pause and
// resume through process signals, and a clean killed state when the user
// stops a job. The queue and list presentation around jobs is out of
// scope; a Job only reports to its callbacks.
package jobs

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"
	"time"
)

// State is a job's lifecycle phase.
type State int

const (
	// Ready means the job has not started yet.
	Ready State = iota
	// Running means the child process is executing.
	Running
	// Paused means the child process is suspended.
	Paused
	// Finished means the child exited successfully.
	Finished
	// Failed means the child exited with an error.
	Failed
	// Stopped means the job was killed on request.
	Stopped
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Job is one external process run to completion in the background.
// Callbacks fire on the job's own monitoring goroutine.
type Job struct {
	// ParseProgress, when set, is called with each line of the child's
	// output and returns a completion percentage when the line carries
	// one. Set it before Start.
	ParseProgress func(line string) (percent int, ok bool)

	// OnProgress, when set, is called whenever the percentage advances.
	OnProgress func(percent int)

	// OnFinished, when set, is called once when the job leaves the
	// running states. ok is true only on a successful exit.
	OnFinished func(j *Job, ok bool)

	mu      sync.Mutex
	label   string
	cmd     *exec.Cmd
	state   State
	percent int
	killed  bool
	ran     bool
	started time.Time
	elapsed time.Duration
	done    chan struct{}
}

// NewJob prepares a job running the named program with args. The label is
// a human-readable description for logs and lists.
func NewJob(label, name string, args ...string) *Job {
	return &Job{
		label: label,
		cmd:   exec.Command(name, args...),
		done:  make(chan struct{}),
	}
}

// Start launches the child process and begins monitoring it. A job can
// only be started once.
func (j *Job) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.ran {
		return fmt.Errorf("job %q already ran", j.label)
	}
	stdout, err := j.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("job %q stdout: %w", j.label, err)
	}
	j.cmd.Stderr = j.cmd.Stdout
	if err := j.cmd.Start(); err != nil {
		return fmt.Errorf("job %q start: %w", j.label, err)
	}
	j.ran = true
	j.killed = false
	j.state = Running
	j.started = time.Now()
	slog.Debug("job started", "label", j.label, "pid", j.cmd.Process.Pid)
	go j.monitor(stdout)
	return nil
}

// monitor consumes the child's output for progress and reaps the process.
func (j *Job) monitor(out io.Reader) {
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		line := scanner.Text()
		if j.ParseProgress == nil {
			continue
		}
		if pct, ok := j.ParseProgress(line); ok {
			j.setPercent(pct)
		}
	}
	err := j.cmd.Wait()

	j.mu.Lock()
	j.elapsed = time.Since(j.started)
	switch {
	case j.killed:
		j.state = Stopped
	case err != nil:
		j.state = Failed
	default:
		j.state = Finished
		j.percent = 100
	}
	state := j.state
	j.mu.Unlock()

	slog.Debug("job finished", "label", j.label, "state", state, "error", err)
	if j.OnFinished != nil {
		j.OnFinished(j, state == Finished)
	}
	close(j.done)
}

func (j *Job) setPercent(pct int) {
	j.mu.Lock()
	advanced := pct > j.percent
	if advanced {
		j.percent = pct
	}
	j.mu.Unlock()
	if advanced && j.OnProgress != nil {
		j.OnProgress(pct)
	}
}

// Stop kills the child process. The job ends in the Stopped state rather
// than Failed.
func (j *Job) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.state != Running && j.state != Paused {
		return
	}
	j.killed = true
	if err := j.cmd.Process.Kill(); err != nil {
		slog.Error("job kill failed", "label", j.label, "error", err)
	}
}

// Pause suspends the child process. Only supported where process signals
// are; elsewhere it is a no-op returning an error.
func (j *Job) Pause() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.state != Running {
		return fmt.Errorf("job %q is not running", j.label)
	}
	if err := suspendProcess(j.cmd.Process); err != nil {
		return fmt.Errorf("job %q pause: %w", j.label, err)
	}
	j.state = Paused
	return nil
}

// Resume continues a paused child process.
func (j *Job) Resume() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.state != Paused {
		return fmt.Errorf("job %q is not paused", j.label)
	}
	if err := resumeProcess(j.cmd.Process); err != nil {
		return fmt.Errorf("job %q resume: %w", j.label, err)
	}
	j.state = Running
	return nil
}

// Done returns a channel closed when the job ends, however it ends.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Label returns the job's description.
func (j *Job) Label() string {
	return j.label
}

// State returns the job's current lifecycle phase.
func (j *Job) State() State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// Percent returns the last reported completion percentage.
func (j *Job) Percent() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.percent
}

// Ran reports whether the job was ever started.
func (j *Job) Ran() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.ran
}

// Elapsed returns the total run time of a job that has ended, or the time
// since start of one still running.
func (j *Job) Elapsed() time.Duration {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.state == Running || j.state == Paused {
		return time.Since(j.started)
	}
	return j.elapsed
}
