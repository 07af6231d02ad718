//go:build !unix

package launcher

import "os/exec"

// terminatedStatus is 1 where processes are not killed by signals.
func terminatedStatus(*exec.ExitError) int {
	return 1
}
