package rollcube

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/rollcube/internal/core"
)

// Tile cell size on screen.
const (
	cellW   = 4
	cellH   = 2
	hudRows = 3
)

// Palette is indexed by visit count - 1.
var Palette = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorPurple,
	core.ColorViolet,
	core.ColorPink,
}

// TileColor returns the color for a visit count.
func TileColor(visits int) core.Color {
	if visits <= 0 {
		return core.ColorGray
	}
	return Palette[(visits-1)%len(Palette)]
}

// Render draws a top-down view: HUD, board and cube. It only reads state.
func (g *Game) Render(dst *core.Screen) {
	info := g.Session()
	pose := g.roller.Pose()

	dst.DrawTextColored(1, 0, fmt.Sprintf("Moves taken: %d/%d", info.Moves, info.MoveLimit), core.ColorDarkBlue)
	best := "-"
	if info.HasBest {
		best = fmt.Sprintf("%d", info.HighScore)
	}
	dst.DrawTextColored(1, 1,
		fmt.Sprintf("Squares remaining: %d  Best: %s  Roll: %d frames", info.Remaining, best, info.Speed),
		core.ColorDarkBlue)

	ox, oy := g.boardOrigin(dst, pose)
	g.drawBoard(dst, ox, oy)
	g.drawCube(dst, ox, oy, pose)

	switch {
	case g.paused:
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorWhite)
	case info.End == Won:
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, " YOU WIN! ", core.ColorDarkBlue)
		dst.DrawTextCentered(mid, fmt.Sprintf(" Moves taken: %d ", info.Moves), core.ColorDarkBlue)
		dst.DrawTextCentered(mid+1, " Space: new board ", core.ColorGray)
	case info.End == Lost:
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, " OUT OF MOVES ", core.ColorRed)
		dst.DrawTextCentered(mid, fmt.Sprintf(" %d squares left ", info.Remaining), core.ColorRed)
		dst.DrawTextCentered(mid+1, " Space: new board ", core.ColorGray)
	}

	dst.DrawTextColored(1, dst.Height()-1, "arrows: roll  +/-: speed  space: reset  p: pause  q: quit", core.ColorGray)
}

// screenCell maps a board coordinate to its cell's top-left, relative to
// the board origin. +x is up the screen, +z is to the left.
func (g *Game) screenCell(x, z float64) (float64, float64) {
	rows, cols := RowRange(g.grid.Size()), ColRange(g.grid.Size())
	return (float64(rows.Max) - z) * cellW, (float64(cols.Max) - x) * cellH
}

// boardOrigin centers the board when it fits and otherwise follows the
// cube's smoothed offset so the cube stays in view.
func (g *Game) boardOrigin(dst *core.Screen, pose Pose) (int, int) {
	size := g.grid.Size()
	boardW := size*cellW + 2
	boardH := size*cellH + 2
	areaH := dst.Height() - hudRows - 1

	var ox, oy int
	if boardW <= dst.Width() {
		ox = (dst.Width() - boardW) / 2
	} else {
		cx, _ := g.screenCell(0, pose.SmoothZ)
		ox = int(core.ClampF(float64(dst.Width())/2-cx, float64(dst.Width()-boardW), 0))
	}
	if boardH <= areaH {
		oy = hudRows + (areaH-boardH)/2
	} else {
		_, cy := g.screenCell(pose.SmoothX, 0)
		oy = hudRows + int(core.ClampF(float64(areaH)/2-cy, float64(areaH-boardH), 0))
	}
	return ox + 1, oy + 1
}

func (g *Game) drawBoard(dst *core.Screen, ox, oy int) {
	size := g.grid.Size()
	dst.DrawBox(core.NewRect(ox-1, oy-1, size*cellW+2, size*cellH+2), core.ColorGray)

	for _, c := range g.grid.Coords() {
		sx, sy := g.screenCell(float64(c.X), float64(c.Z))
		x, y := ox+int(sx), oy+int(sy)
		visits := g.grid.VisitCount(c)
		if visits == 0 {
			dst.SetColored(x+1, y, '·', core.ColorGray)
			continue
		}
		dst.DrawRect(core.NewRect(x, y, cellW-1, cellH-1), '▒', TileColor(visits))
	}
}

// rollEndpoints returns the visual start and end cells of the roll in
// flight. Down and Left have already moved the logical cell.
func rollEndpoints(p Pose) (from, to Coord) {
	switch p.State {
	case RollingUp:
		return p.Pos, Coord{X: p.Pos.X + 1, Z: p.Pos.Z}
	case RollingRight:
		return p.Pos, Coord{X: p.Pos.X, Z: p.Pos.Z - 1}
	case RollingDown:
		return Coord{X: p.Pos.X + 1, Z: p.Pos.Z}, p.Pos
	case RollingLeft:
		return Coord{X: p.Pos.X, Z: p.Pos.Z - 1}, p.Pos
	default:
		return p.Pos, p.Pos
	}
}

// cubeGlyphs shows how far the cube has tipped over its leading edge.
var cubeGlyphs = []rune{'█', '▓', '▒', '▓'}

func (g *Game) drawCube(dst *core.Screen, ox, oy int, pose Pose) {
	from, to := rollEndpoints(pose)
	t := float64(ease.InOutQuad(float32(pose.Progress), 0, 1, 1))
	x := float64(from.X) + float64(to.X-from.X)*t
	z := float64(from.Z) + float64(to.Z-from.Z)*t

	sx, sy := g.screenCell(x, z)
	cx, cy := ox+int(math.Round(sx)), oy+int(math.Round(sy))

	glyph := cubeGlyphs[0]
	if pose.State != Idle {
		i := int(math.Abs(pose.Angle)/QuarterTurn*float64(len(cubeGlyphs))) % len(cubeGlyphs)
		glyph = cubeGlyphs[i]
	}
	dst.DrawRect(core.NewRect(cx, cy, cellW-1, cellH-1), glyph, core.ColorYellow)
}
