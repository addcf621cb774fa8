package main

import (
	"bufio"
	"os"
	"os/exec"

	"github.com/creack/pty"

	"ansirender/internal/applog"
	"ansirender/node"
)

// attachPTY spawns an interactive shell behind a pty and streams its
// output into target's shadow text, line by line, until the shell
// exits or stop is closed. It runs in its own goroutine.
func attachPTY(target *node.Node, stop <-chan struct{}) {
	log := applog.GetLogger()

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell)
	f, err := pty.Start(cmd)
	if err != nil {
		log.Warn("pty: failed to start %s: %v", shell, err)
		return
	}
	defer f.Close()

	go func() {
		<-stop
		_ = cmd.Process.Kill()
	}()

	var lines [][]rune
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, []rune(scanner.Text()))
		if len(lines) > 200 {
			lines = lines[len(lines)-200:]
		}
		target.Shadow().SetText(lines)
	}
}
