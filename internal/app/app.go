// Package app runs the terminal front end: input, frame ticks, and rendering.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gravewalk/internal/config"
	"github.com/samdwyer/gravewalk/internal/game"
	"github.com/samdwyer/gravewalk/internal/gamedata"
	"github.com/samdwyer/gravewalk/internal/logger"
	"github.com/samdwyer/gravewalk/internal/telemetry"
	"github.com/samdwyer/gravewalk/internal/ui"
)

// App owns the screen and the running session.
type App struct {
	cfg      config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *game.Session
	running  bool
}

// New creates an app drawing to the terminal.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	a, err := NewWithScreen(ctx, cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return a, nil
}

// NewWithScreen creates an app drawing to an already initialized screen.
func NewWithScreen(ctx context.Context, cfg config.Config, screen *ui.Screen) (*App, error) {
	props, err := gamedata.LoadPropRegistry()
	if err != nil {
		return nil, fmt.Errorf("load props: %w", err)
	}
	mobs, err := gamedata.LoadMobRegistry()
	if err != nil {
		return nil, fmt.Errorf("load mobs: %w", err)
	}

	session, err := game.New(ctx, cfg.Game())
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	return &App{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, props, mobs),
		session:  session,
		running:  true,
	}, nil
}

// Session returns the running session.
func (a *App) Session() *game.Session { return a.session }

// Run executes the main loop until the player quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("app")
	ctx, span := tracer.Start(ctx, "app.run")
	defer span.End()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(a.cfg.Tick)
	defer ticker.Stop()
	last := time.Now()

	a.renderer.Render(a.session)
	for a.running {
		select {
		case <-ctx.Done():
			a.running = false
		case ev, ok := <-events:
			if !ok {
				a.running = false
				continue
			}
			a.handleEvent(ctx, ev)
		case now := <-ticker.C:
			a.session.Tick(ctx, now.Sub(last))
			last = now
			a.renderer.Render(a.session)
		}
	}

	span.SetAttributes(
		attribute.String("session.id", a.session.ID()),
		attribute.Int("score", a.session.Score()),
		attribute.String("phase", a.session.Phase().String()),
	)
	logger.Log.WithField("score", a.session.Score()).Info("Quit")
	return nil
}

// handleEvent processes a single input event.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (a *App) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			a.running = false
			return
		case 'r', 'R':
			a.session.Restart(ctx)
			return
		}
	}

	if dir, ok := ui.DirectionForKey(ev); ok {
		a.session.Move(ctx, dir)
	}
}

// Close cleans up app resources.
func (a *App) Close() {
	if a.screen != nil {
		a.screen.Close()
	}
}
