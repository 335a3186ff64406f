//go:build unix
// +build unix

package jobs

import (
	"os"
	"syscall"
)

// suspendProcess pauses a child with SIGSTOP.
func suspendProcess(p *os.Process) error {
	return p.Signal(syscall.SIGSTOP)
}

// resumeProcess continues a stopped child with SIGCONT.
func resumeProcess(p *os.Process) error {
	return p.Signal(syscall.SIGCONT)
}
