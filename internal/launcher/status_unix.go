//go:build unix

package launcher

import (
	"os/exec"
	"syscall"
)

// terminatedStatus follows the shell: a child killed by signal n exits 128+n.
func terminatedStatus(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
