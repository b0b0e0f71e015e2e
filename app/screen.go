package app

import "github.com/hajimehoshi/ebiten/v2"

// Screen is one full-screen state of the shell. The active screen gets
// Update and Draw every tick; Activate and Deactivate run when the
// navigation machine moves onto or off it.
type Screen interface {
	Activate(a *App)
	Deactivate(a *App)
	Update(a *App)
	Draw(a *App, dst *ebiten.Image)
}

// scriptReceiver is implemented by screens that consume host script
// output, like the wifi screen's scan results.
type scriptReceiver interface {
	ScriptDone(a *App, res scriptResult) bool
}
