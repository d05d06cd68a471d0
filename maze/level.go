package maze

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	// level images may be png or bmp
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"entropia/model"
)

// ErrLevel is wrapped by every level decoding failure.
var ErrLevel = errors.New("maze: invalid level")

// Level image colours. Every pixel is one cell.
var (
	ColorOpen   = color.RGBA{255, 255, 255, 255}
	ColorWall   = color.RGBA{0, 0, 0, 255}
	ColorEnemy  = color.RGBA{255, 0, 0, 255}
	ColorExit   = color.RGBA{0, 255, 0, 255}
	ColorPlayer = color.RGBA{0, 0, 255, 255}
)

// Level is a hand-authored map. Entity markers are open cells in Grid.
type Level struct {
	Grid    *model.Grid
	Player  Point
	Enemies []Point
	Exit    Point
	HasExit bool
}

// LoadLevel decodes the level image at path.
func LoadLevel(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lvl, err := DecodeLevel(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

// DecodeLevel reads a level image. Exactly one player marker is required; at most one exit
// is allowed. Any colour outside the level palette is an error.
func DecodeLevel(r io.Reader) (*Level, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLevel, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrLevel)
	}

	lvl := &Level{}
	players := 0
	rows := make([][]model.Cell, height)
	for y := 0; y < height; y++ {
		rows[y] = make([]model.Cell, width)
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			p := Point{X: x, Y: y}

			switch c {
			case ColorOpen:
			case ColorWall:
				rows[y][x] = model.Wall
			case ColorEnemy:
				lvl.Enemies = append(lvl.Enemies, p)
			case ColorExit:
				if lvl.HasExit {
					return nil, fmt.Errorf("%w: second exit at %v", ErrLevel, p)
				}
				lvl.Exit, lvl.HasExit = p, true
			case ColorPlayer:
				lvl.Player = p
				players++
			default:
				return nil, fmt.Errorf("%w: unknown colour %v at %v", ErrLevel, c, p)
			}
		}
	}
	if players != 1 {
		return nil, fmt.Errorf("%w: want one player start, found %d", ErrLevel, players)
	}

	lvl.Grid, err = model.NewGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLevel, err)
	}
	return lvl, nil
}
