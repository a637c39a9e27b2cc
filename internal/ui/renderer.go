package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravewalk/internal/anim"
	"github.com/samdwyer/gravewalk/internal/game"
	"github.com/samdwyer/gravewalk/internal/gamedata"
	"github.com/samdwyer/gravewalk/internal/grid"
)

const (
	heroGlyph     = '@'
	deadHeroGlyph = 'X'
	floorGlyph    = '.'
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	props  *gamedata.PropRegistry
	mobs   *gamedata.MobRegistry
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, props *gamedata.PropRegistry, mobs *gamedata.MobRegistry) *Renderer {
	return &Renderer{screen: screen, props: props, mobs: mobs}
}

// Center returns the screen cell the hero is drawn on. The last row is
// reserved for the status line.
func (r *Renderer) Center() (x, y int) {
	width, height := r.screen.Size()
	return width / 2, (height - 1) / 2
}

// toScreen maps a grid cell to screen coordinates with the camera on focus.
func (r *Renderer) toScreen(c, focus grid.Vec) (x, y int) {
	cx, cy := r.Center()
	return cx + (c.X - focus.X), cy - (c.Y - focus.Y)
}

// Render draws the board around the hero, then the status line.
func (r *Renderer) Render(s *game.Session) {
	r.screen.Clear()

	hero := s.Hero()
	focus := hero.Position
	scene := s.Scene()

	// Floor
	floor := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	h := s.Bounds().HalfSize
	for y := -h; y <= h; y++ {
		for x := -h; x <= h; x++ {
			sx, sy := r.toScreen(grid.Vec{X: x, Y: y}, focus)
			r.set(sx, sy, floorGlyph, floor)
		}
	}

	for _, p := range s.Props() {
		if !scene.Present(p.Handle) {
			continue
		}
		glyph, style := '#', tcell.StyleDefault.Foreground(tcell.ColorGray)
		if def := r.props.Get(p.Type); def != nil {
			glyph = def.GlyphRune()
			style = tcell.StyleDefault.Foreground(def.TCellColor())
		}
		sx, sy := r.toScreen(p.Position, focus)
		r.set(sx, sy, glyph, style)
	}

	for _, m := range s.Mobs() {
		body := m.Body()
		if !scene.Present(body.Handle) {
			continue
		}
		glyph, style := 'm', tcell.StyleDefault.Foreground(tcell.ColorGreen)
		if def := r.mobs.GetByName(m.Name()); def != nil {
			glyph = def.GlyphRune()
			if !body.IsAlive() {
				glyph = def.CorpseRune()
			}
			style = tcell.StyleDefault.Foreground(def.TCellColor())
		}
		if kind, ok := s.Animating(body.Handle); ok && kind == anim.KindAttack {
			style = style.Reverse(true)
		}
		sx, sy := r.toScreen(body.Position, focus)
		r.set(sx, sy, glyph, style)
	}

	if scene.Present(hero.Handle) {
		glyph, style := heroGlyph, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		if !hero.IsAlive() {
			glyph, style = deadHeroGlyph, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		}
		sx, sy := r.toScreen(focus, focus)
		r.set(sx, sy, glyph, style)
	}

	r.renderStatus(s)
	r.screen.Show()
}

func (r *Renderer) renderStatus(s *game.Session) {
	_, height := r.screen.Size()
	msg := fmt.Sprintf("Score: %d  Action: %d  Time: %.1fs",
		s.Score(), s.Action(), s.Elapsed().Seconds())
	if s.Phase() == game.PhaseGameOver {
		msg += fmt.Sprintf("  Killed by %s. Press r to restart, q to quit.", s.LastKilledBy())
	}
	r.RenderMessage(msg, height-1)
}

// set draws a cell, dropping anything off screen.
func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	width, height := r.screen.Size()
	if x < 0 || y < 0 || x >= width || y >= height-1 {
		return
	}
	r.screen.SetContent(x, y, ch, style)
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
