package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DrawStatus draws lines of text in the bottom-left corner.
func DrawStatus(lines ...string) {
	const size = 16
	y := int32(rl.GetScreenHeight()) - int32(len(lines))*(size+4) - 10
	for _, line := range lines {
		rl.DrawText(line, 10, y, size, rl.DarkGray)
		y += size + 4
	}
}
