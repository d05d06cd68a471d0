package term

import (
	"context"
	"image/color"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"entropia/config"
	"entropia/render"
	"entropia/session"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestSurfaceScalesToCells(t *testing.T) {
	screen := newScreen(t)
	s := NewSurface(screen, render.View{Width: 800, Height: 400})

	red := color.RGBA{R: 255, A: 255}
	s.FillRect(0, 0, 800, 200, red)
	screen.Show()

	want := tcell.NewRGBColor(255, 0, 0)
	if got := background(screen, 5, 5); got != want {
		t.Fatalf("cell (5, 5) background %v, want %v", got, want)
	}
	if got := background(screen, 79, 11); got != want {
		t.Fatalf("cell (79, 11) background %v, want %v", got, want)
	}
	if got := background(screen, 5, 20); got == want {
		t.Fatal("fill leaked into the bottom half")
	}
}

func TestSurfaceKeepsThinRects(t *testing.T) {
	screen := newScreen(t)
	s := NewSurface(screen, render.View{Width: 800, Height: 400})

	s.FillRect(400, 200, 1, 1, color.RGBA{G: 255, A: 255})
	screen.Show()
	if got := background(screen, 40, 12); got != tcell.NewRGBColor(0, 255, 0) {
		t.Fatalf("thin rect not drawn, background %v", got)
	}
}

func TestCellSpanClips(t *testing.T) {
	cases := []struct {
		a, b   float64
		limit  int
		lo, hi int
	}{
		{0, 10, 80, 0, 10},
		{-5, 3, 80, 0, 3},
		{75, 90, 80, 75, 80},
		{4.2, 4.3, 80, 4, 5},
	}
	for _, c := range cases {
		lo, hi := cellSpan(c.a, c.b, c.limit)
		if lo != c.lo || hi != c.hi {
			t.Errorf("cellSpan(%v, %v, %d) = [%d, %d), want [%d, %d)", c.a, c.b, c.limit, lo, hi, c.lo, c.hi)
		}
	}
}

func TestInputHoldsKeys(t *testing.T) {
	in := NewInput()
	t0 := time.Now()

	in.Press(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), t0)
	in.Press(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), t0)
	intent := in.Intent(t0.Add(10 * time.Millisecond))
	if !intent.Forward || !intent.TurnLeft || intent.Backward || intent.TurnRight {
		t.Fatalf("unexpected intent %+v", intent)
	}

	if intent := in.Intent(t0.Add(2 * holdTime)); intent.Forward || intent.TurnLeft {
		t.Fatalf("keys still held after release window: %+v", intent)
	}
}

func TestInputFireOnce(t *testing.T) {
	in := NewInput()
	now := time.Now()
	if a := in.Press(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), now); a != actFire {
		t.Fatalf("space mapped to %v", a)
	}
	if !in.Intent(now).Fire {
		t.Fatal("fire press lost")
	}
	if in.Intent(now).Fire {
		t.Fatal("fire press repeated")
	}
}

func TestRunQuits(t *testing.T) {
	screen := newScreen(t)
	s, err := session.New(config.Default(), session.WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), s, screen, log.New(io.Discard))
	}()

	time.Sleep(50 * time.Millisecond)
	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	s, err := session.New(config.Default(), session.WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := Run(ctx, s, screen, log.New(io.Discard)); err != nil {
		t.Fatal(err)
	}
}
