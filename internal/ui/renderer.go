package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpgcore/internal/entity"
	"github.com/samdwyer/rpgcore/internal/game"
)

const hpBarWidth = 12

// Renderer draws a battle to the screen. It is a pure view over the data
// model and mutates nothing.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderBattle draws both rosters, the round counter, and the round log.
func (r *Renderer) RenderBattle(b *game.Battle) {
	r.screen.Clear()

	header := fmt.Sprintf("Round %d  [%s]", b.Round, b.Phase)
	r.drawText(0, 0, header, tcell.StyleDefault.Bold(true))

	y := 2
	y = r.drawRoster(0, y, "HEROES", b.Heroes)
	y++
	y = r.drawRoster(0, y, "FOES", b.Foes)
	y++

	for _, msg := range b.Log {
		r.drawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		y++
	}

	r.screen.Show()
}

// drawRoster draws one side's combatants and returns the next free row.
func (r *Renderer) drawRoster(x, y int, title string, roster []*entity.Character) int {
	r.drawText(x, y, title, tcell.StyleDefault.Foreground(tcell.ColorDarkGray).Bold(true))
	y++

	for _, c := range roster {
		style := tcell.StyleDefault.Foreground(c.Color())
		if !c.IsAlive() {
			style = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		}

		r.screen.SetContent(x, y, c.Symbol, style.Bold(true))

		line := fmt.Sprintf(" %-14s Lv%-2d %s %3d/%-3d", c.Name, c.Level, hpBar(c.HP, c.MaxHP), c.HP, c.MaxHP)
		if c.IsFrozen() {
			line += " *frozen*"
		}
		r.drawText(x+1, y, line, style)
		y++
	}
	return y
}

// drawText writes a string starting at the given cell.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// hpBar renders current/max HP as a fixed-width bar.
func hpBar(hp, maxHP int) string {
	if maxHP <= 0 {
		return ""
	}
	filled := hp * hpBarWidth / maxHP
	if hp > 0 && filled == 0 {
		filled = 1
	}
	bar := make([]rune, hpBarWidth)
	for i := range bar {
		if i < filled {
			bar[i] = '='
		} else {
			bar[i] = '-'
		}
	}
	return "[" + string(bar) + "]"
}
