//go:build !windows

package player

import (
	"os/exec"
	"syscall"
)

// sysProcAttr detaches the player from the terminal's process group so that
// ctrl+c in the TUI reaches curtain only.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
	}
}

func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	return cmd.Process.Kill()
}
