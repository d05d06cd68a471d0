package term

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"entropia/session"
)

// FrameRate is the terminal redraw rate.
const FrameRate = 30

// Run drives s from screen until the player quits or ctx is cancelled. The caller owns the
// screen and must Init it before and Fini it after.
func Run(ctx context.Context, s *session.Session, screen tcell.Screen, logger *log.Logger) error {
	screen.HideCursor()
	surface := NewSurface(screen, s.View())
	input := NewInput()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch a := input.Press(ev, time.Now()); a {
				case actQuit:
					return nil
				case actRestart, actNewMaze:
					fresh := a == actNewMaze
					if err := s.Reset(fresh); err != nil {
						return fmt.Errorf("term: %w", err)
					}
					logger.Debug("Restarted from terminal", "freshMap", fresh)
				}
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.Update(dt, input.Intent(now))

			screen.Clear()
			s.Draw(surface)
			drawHUD(screen, s.Snapshot())
			screen.Show()
		}
	}
}

func drawHUD(screen tcell.Screen, snap session.Snapshot) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	line := fmt.Sprintf(" lives %d  enemies %d  time %.0fs  %s ",
		snap.Player.Lives, len(snap.Enemies), snap.Elapsed, snap.Status)
	if snap.Status.Terminal() {
		line += " r: restart  n: new maze  q: quit "
	}
	for i, r := range line {
		screen.SetContent(i, 0, r, nil, style)
	}
}
