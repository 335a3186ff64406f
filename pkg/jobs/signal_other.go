//go:build !unix
// +build !unix

package jobs

import (
	"fmt"
	"os"
)

// Pause and resume rely on stop signals, which this platform lacks.

func suspendProcess(p *os.Process) error {
	return fmt.Errorf("pause is not supported on this platform")
}

func resumeProcess(p *os.Process) error {
	return fmt.Errorf("resume is not supported on this platform")
}
