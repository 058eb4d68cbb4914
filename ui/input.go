package ui

import (
	"rainbow-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var commandKeys = []struct {
	key  int32
	kind game.EventKind
}{
	{rl.KeyUp, game.MoveUp},
	{rl.KeyDown, game.MoveDown},
	{rl.KeyLeft, game.MoveLeft},
	{rl.KeyRight, game.MoveRight},
	{rl.KeyP, game.TogglePause},
	{rl.KeyR, game.Restart},
	{rl.KeyQ, game.Quit},
	{rl.KeyEscape, game.Quit},
}

// PollEvents collects this frame's key presses as controller events. While
// the name prompt is up letters are text, so only Esc quits there.
func PollEvents(mode game.Mode) []game.Event {
	var events []game.Event

	if mode == game.NamePrompt {
		if rl.IsKeyPressed(rl.KeyEscape) {
			events = append(events, game.Key(game.Quit))
		}
		for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
			events = append(events, game.Char(rune(c)))
		}
		if rl.IsKeyPressed(rl.KeyBackspace) {
			events = append(events, game.Key(game.Backspace))
		}
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
			events = append(events, game.Key(game.Confirm))
		}
		return events
	}

	for _, k := range commandKeys {
		if rl.IsKeyPressed(k.key) {
			events = append(events, game.Key(k.kind))
		}
	}
	return events
}
