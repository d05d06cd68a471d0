package render

import (
	"image/color"
	"sort"

	"golang.org/x/image/colornames"

	"entropia/model"
)

// sideShade darkens walls hit on a horizontal grid line so corners read clearly.
const sideShade = 0.7

// Palette is the flat colour set for the backdrop and walls.
type Palette struct {
	Ceiling color.RGBA
	Floor   color.RGBA
	Wall    color.RGBA
}

var DefaultPalette = Palette{
	Ceiling: colornames.Midnightblue,
	Floor:   colornames.Darkslategray,
	Wall:    colornames.Lightgray,
}

// DrawCommand is one filled rectangle in screen pixels.
type DrawCommand struct {
	Kind       Kind
	X, Y, W, H float32
	Color      color.RGBA
}

// Frame is the complete, ordered output of one render pass.
type Frame struct {
	Commands []DrawCommand
	// Sprites are the visible billboards, far to near.
	Sprites []Sprite
	ZBuffer ZBuffer
	Hits    []Hit
}

// Draw issues every command to s in order.
func (f Frame) Draw(s Surface) {
	for _, c := range f.Commands {
		s.FillRect(c.X, c.Y, c.W, c.H, c.Color)
	}
}

// Renderer turns a World into a Frame. It reuses its caster buffers between frames but
// every Frame it returns owns its own slices.
type Renderer struct {
	view      View
	caster    *Caster
	projector Projector
	Palette   Palette
}

func NewRenderer(v View) *Renderer {
	return &Renderer{
		view:      v,
		caster:    NewCaster(v),
		projector: Projector{View: v},
		Palette:   DefaultPalette,
	}
}

func (r *Renderer) View() View {
	return r.view
}

// Frame renders w from the player's pose. The z-buffer is rebuilt before any sprite is tested.
func (r *Renderer) Frame(w *model.World) Frame {
	pose := w.Player.Pose()
	zbuf := r.caster.Cast(w.Grid, pose)

	f := Frame{
		Commands: make([]DrawCommand, 0, 2+r.view.Rays),
		ZBuffer:  append(ZBuffer(nil), zbuf...),
		Hits:     append([]Hit(nil), r.caster.Hits()...),
	}

	width, height := float32(r.view.Width), float32(r.view.Height)
	f.Commands = append(f.Commands,
		DrawCommand{Kind: KindCeiling, W: width, H: height / 2, Color: r.Palette.Ceiling},
		DrawCommand{Kind: KindFloor, Y: height / 2, W: width, H: height / 2, Color: r.Palette.Floor},
	)

	for i, h := range f.Hits {
		if !h.Hit {
			continue
		}
		x0, x1 := r.view.Column(i)
		if x1 <= x0 {
			continue
		}
		wallHeight := r.view.WallHeight(h.Distance)
		intensity := r.view.Shade(h.Distance)
		if h.Side == SideY {
			intensity *= sideShade
		}
		f.Commands = append(f.Commands, DrawCommand{
			Kind:  KindWall,
			X:     float32(x0),
			Y:     float32((float64(r.view.Height) - wallHeight) / 2),
			W:     float32(x1 - x0),
			H:     float32(wallHeight),
			Color: shadeColor(r.Palette.Wall, intensity),
		})
	}

	f.Sprites = r.sprites(w, pose, f.ZBuffer)
	for _, s := range f.Sprites {
		f.Commands = append(f.Commands, DrawCommand{
			Kind:  s.Kind,
			X:     float32(s.X),
			Y:     float32(s.Y),
			W:     float32(s.W),
			H:     float32(s.H),
			Color: s.Color,
		})
	}
	return f
}

func (r *Renderer) sprites(w *model.World, pose model.Pose, zbuf ZBuffer) []Sprite {
	var out []Sprite
	add := func(id model.Handle, x, y float64, class Class) {
		if s, ok := r.projector.Project(pose, x, y, class, zbuf); ok {
			s.ID = id
			out = append(out, s)
		}
	}

	w.Enemies.Each(func(id model.Handle, e *model.Enemy) bool {
		add(id, e.Position.X, e.Position.Y, EnemyClass)
		return true
	})
	w.Projectiles.Each(func(id model.Handle, p *model.Projectile) bool {
		if p.State != model.Active {
			return true
		}
		class := PlayerShotClass
		if p.Owner == model.OwnerEnemy {
			class = EnemyShotClass
		}
		add(id, p.Position.X, p.Position.Y, class)
		return true
	})
	if w.Pickup != nil {
		add(0, w.Pickup.Position.X, w.Pickup.Position.Y, PickupClass)
	}

	// painter's order: farthest first, ties broken by kind then handle
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Depth != b.Depth {
			return a.Depth > b.Depth
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.ID < b.ID
	})
	return out
}
