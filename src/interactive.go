package minase

import (
	"os"
	"os/exec"
)

// interactiveCmd wraps an os/exec.Cmd with stdio connected straight to the
// controlling terminal, for the foreground children that need the terminal
// handed over to them (shell, editor, pager, opener) -- spec.md 4.6
// "terminal etiquette": these are different from procexec's captured-output
// children (cp/mv/rm, sixel converter, archive lister), which never touch
// the terminal directly.
type interactiveCmd struct {
	cmd *exec.Cmd
}

func procexecCommand(name string, args ...string) (*interactiveCmd, error) {
	path, err := lookPathOrMissing(name)
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(path, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return &interactiveCmd{cmd: cmd}, nil
}

func procexecCommandDir(name string, dir string) (*interactiveCmd, error) {
	cmd, err := procexecCommand(name)
	if err != nil {
		return nil, err
	}
	cmd.cmd.Dir = dir
	return cmd, nil
}

func procexecCommandArgsDir(name string, args []string, dir string) (*interactiveCmd, error) {
	cmd, err := procexecCommand(name, args...)
	if err != nil {
		return nil, err
	}
	cmd.cmd.Dir = dir
	return cmd, nil
}

func (c *interactiveCmd) run() error {
	return c.cmd.Run()
}

func lookPathOrMissing(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", New(KindMissingDependency, "lookPathOrMissing", "install '"+name+"'")
	}
	return path, nil
}
