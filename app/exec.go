package app

import (
	"os/exec"
	"strings"
)

// scriptResult is the outcome of a host script run in the background.
type scriptResult struct {
	label  string
	output string
	err    error
}

// firstLine trims the output down to its first non-empty line.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// startScript runs a host script off the tick loop. The result arrives
// on the script channel and is routed by Update; the loop never blocks
// on the host.
func (a *App) startScript(label, path string, args ...string) {
	if path == "" {
		a.toast.Show(label+": no script configured", toastTicks)
		return
	}
	a.log.WithField("script", path).Debugf("%s started", label)
	go func() {
		out, err := exec.Command("sh", append([]string{path}, args...)...).CombinedOutput()
		a.scripts <- scriptResult{label: label, output: string(out), err: err}
	}()
}

// spawnScript fires a host script without waiting on it. Quit actions
// hand the machine over to the script and never see it finish.
func (a *App) spawnScript(path string, args ...string) error {
	return exec.Command("sh", append([]string{path}, args...)...).Start()
}

// handleScript routes one finished script. The active screen gets first
// refusal; unclaimed results become a notification.
func (a *App) handleScript(res scriptResult) {
	if res.err != nil {
		a.log.WithField("label", res.label).Warnf("script failed: %v", res.err)
	}
	if rec, ok := a.screens[a.shown].(scriptReceiver); ok && rec.ScriptDone(a, res) {
		return
	}
	if res.err != nil {
		a.toast.Show(res.label+" failed", toastFailTicks)
		return
	}
	a.toast.Show(res.label+" done", toastTicks)
}

func (a *App) drainScripts() {
	for {
		select {
		case res := <-a.scripts:
			a.handleScript(res)
		default:
			return
		}
	}
}
