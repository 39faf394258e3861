package minase

import "syscall"

// killPid sends SIGKILL to pid, ignoring errors -- called in cancelCurrent's
// spin-loop for a job that has a recorded pid.
func killPid(pid int) {
	_ = syscall.Kill(pid, syscall.SIGKILL)
}
