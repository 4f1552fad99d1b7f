package render

import (
	"fmt"
	"strings"
)

// HUDRows is the number of terminal rows reserved below the picture.
const HUDRows = 3

// HalfBlock draws the upper pixel in the foreground and the lower pixel in
// the background, giving two square-ish pixels per terminal cell.
const HalfBlock = '▀'

// Cell represents a single terminal cell with full RGB color.
type Cell struct {
	Ch            rune
	FgR, FgG, FgB uint8
	BgR, BgG, BgB uint8
	Bold          bool
}

var sentinel = Cell{Ch: '\x00', FgR: 255, BgB: 255, Bold: true}

// HUD is the status line data drawn under the picture.
type HUD struct {
	Shader  string
	Index   int // position of Shader in the shader list
	Count   int // shaders available
	T       float64
	Speed   float64
	Paused  bool
	Viewers int
	Banner  string // drawn over the top of the picture when non-empty
}

// Engine is a per-session double-buffer diff renderer.
type Engine struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{}
	e.Resize(width, height)
	return e
}

// Resize adjusts the renderer for a new terminal size. The next Render
// redraws every cell.
func (e *Engine) Resize(width, height int) {
	e.width = max(width, 0)
	e.height = max(height, 0)
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.firstFrame = true
}

// Size returns the terminal dimensions the engine draws into.
func (e *Engine) Size() (width, height int) {
	return e.width, e.height
}

// PictureSize returns the pixel dimensions of the picture area: one pixel
// per column and two per row above the HUD.
func (e *Engine) PictureSize() (w, h int) {
	return e.width, max(e.height-HUDRows, 0) * 2
}

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := 0; y < e.height; y++ {
		buf[y] = make([]Cell, e.width)
		for x := 0; x < e.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Render produces the ANSI byte output for the current frame: img drawn
// with half blocks into the picture area, then the HUD. Only cells that
// changed since the previous frame are emitted.
func (e *Engine) Render(img *Image, hud HUD) string {
	pictureRows := max(e.height-HUDRows, 0)
	for row := 0; row < pictureRows; row++ {
		for x := 0; x < e.width; x++ {
			top := img.At(x, row*2)
			bottom := img.At(x, row*2+1)
			e.next[row][x] = Cell{
				Ch:  HalfBlock,
				FgR: top.R, FgG: top.G, FgB: top.B,
				BgR: bottom.R, BgG: bottom.G, BgB: bottom.B,
			}
		}
	}

	if hud.Banner != "" && pictureRows > 1 {
		e.drawBanner(1, hud.Banner)
	}
	e.drawHUD(hud)

	return e.flush()
}

// flush diffs next against current, emits the changed cells and swaps the
// buffers.
func (e *Engine) flush() string {
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}

func (e *Engine) drawBanner(row int, text string) {
	text = " " + text + " "
	n := len([]rune(text))
	col := (e.width - n) / 2
	if col < 0 {
		col = 0
	}
	e.writeText(row, col, e.width, text, 255, 255, 255, 20, 20, 30, true)
}

// --- HUD ---

func (e *Engine) drawHUD(hud HUD) {
	hudY := e.height - HUDRows
	if hudY < 0 {
		return
	}

	bgR, bgG, bgB := uint8(15), uint8(18), uint8(30)

	// Row 0: separator, a thin gradient line
	for x := 0; x < e.width; x++ {
		t := uint8(60 - x*40/max(e.width, 1))
		e.next[hudY][x] = Cell{
			Ch: '━', FgR: 40 + t, FgG: 70 + t, FgB: 90 + t,
			BgR: bgR, BgG: bgG, BgB: bgB,
		}
	}
	for row := 1; row < HUDRows; row++ {
		for x := 0; x < e.width; x++ {
			e.next[hudY+row][x] = Cell{Ch: ' ', BgR: bgR, BgG: bgG, BgB: bgB}
		}
	}

	// Row 1: shader, clock and viewer count
	row1 := hudY + 1
	col := e.writeText(row1, 1, e.width, hud.Shader, 255, 200, 120, bgR, bgG, bgB, true)
	col = e.writeText(row1, col, e.width, fmt.Sprintf(" [%d/%d]", hud.Index+1, hud.Count), 130, 130, 145, bgR, bgG, bgB, false)
	col = e.writeText(row1, col, e.width, "  │  ", 60, 65, 85, bgR, bgG, bgB, false)
	col = e.writeText(row1, col, e.width, fmt.Sprintf("t=%.1fs x%g", hud.T, hud.Speed), 180, 180, 195, bgR, bgG, bgB, false)
	if hud.Paused {
		col = e.writeText(row1, col, e.width, "  PAUSED", 240, 190, 60, bgR, bgG, bgB, true)
	}
	col = e.writeText(row1, col, e.width, "  │  ", 60, 65, 85, bgR, bgG, bgB, false)
	e.writeText(row1, col, e.width, fmt.Sprintf("%d watching", hud.Viewers), 180, 180, 195, bgR, bgG, bgB, false)

	// Row 2: controls
	e.writeText(hudY+2, 1, e.width, "←→/AD Shader  │  Space Pause  │  +/- Speed  │  Q Quit", 130, 130, 145, bgR, bgG, bgB, false)
}

// writeText writes colored text into a bounded region [col, maxCol). Returns the next column position.
func (e *Engine) writeText(row, col, maxCol int, text string, fgR, fgG, fgB, bgR, bgG, bgB uint8, bold bool) int {
	for _, r := range text {
		if col >= maxCol || col >= e.width {
			break
		}
		if row >= 0 && row < e.height && col >= 0 {
			e.next[row][col] = Cell{Ch: r, FgR: fgR, FgG: fgG, FgB: fgB, BgR: bgR, BgG: bgG, BgB: bgB, Bold: bold}
		}
		col++
	}
	return col
}
