package spacytrade

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/spacy-trade/internal/core"
)

type glyph struct {
	r rune
	c core.Color
}

var kindGlyphs = [...]glyph{
	KindGold:   {'◆', core.ColorBrightYellow},
	KindIron:   {'◆', core.ColorWhite},
	KindCopper: {'◆', core.ColorCopper},
	KindCoal:   {'●', core.ColorGray},
	KindRock:   {'▒', core.ColorDarkGray},
}

var shipGlyphs = [...]rune{
	FacingUp:    '▲',
	FacingDown:  '▼',
	FacingLeft:  '◀',
	FacingRight: '▶',
}

// Render draws the arena, HUD, trade panel and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	snap := g.session.Snapshot()

	cols, rows := arenaCells(dst.Width(), dst.Height())
	vp := viewport{cols: cols, rows: rows, top: hudRows, arena: snap.Arena}

	for _, e := range snap.Entities {
		g.drawEntity(dst, vp, e)
	}
	g.drawHUD(dst, snap)
	if cols < dst.Width() {
		g.drawPanel(dst, snap, cols)
	}
	g.drawFooter(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		drawCenteredMessage(dst, "BANKRUPT",
			fmt.Sprintf("Revenue $%s  |  Press R to restart", humanize.Comma(snap.Stats.Revenue)))
	}
}

// viewport maps arena units (origin centered, +Y up) to screen cells.
type viewport struct {
	cols, rows int
	top        int
	arena      Arena
}

func (v viewport) cell(p core.Vec2) (int, int) {
	ux := v.arena.W / float64(v.cols)
	uy := v.arena.H / float64(v.rows)
	x := int(math.Floor((p.X + v.arena.HalfW()) / ux))
	y := int(math.Floor((v.arena.HalfH() - p.Y) / uy))
	return x, y + v.top
}

func (v viewport) inside(x, y int) bool {
	return x >= 0 && x < v.cols && y >= v.top && y < v.top+v.rows
}

// cellRect covers the entity's scaled box, at least one cell.
func (v viewport) cellRect(pos, size core.Vec2, scale float64) core.Rect {
	half := size.Scale(scale / 2)
	x0, y0 := v.cell(core.V(pos.X-half.X, pos.Y+half.Y))
	x1, y1 := v.cell(core.V(pos.X+half.X, pos.Y-half.Y))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (g *Game) drawEntity(dst *core.Screen, vp viewport, e EntityView) {
	scale := g.cfg.Physics.ContactScale
	switch e.Role {
	case RoleBase:
		r := vp.cellRect(e.Pos, e.Size, scale)
		fillClipped(dst, vp, r, '█', core.ColorBlue)
		label := "BASE"
		lx := r.X + (r.W-len(label))/2
		ly := r.Y + r.H/2
		for i, ch := range label {
			if vp.inside(lx+i, ly) {
				dst.SetColored(lx+i, ly, ch, core.ColorBrightWhite)
			}
		}
	case RolePlayer:
		x, y := vp.cell(e.Pos)
		if vp.inside(x, y) {
			dst.SetColored(x, y, shipGlyphs[e.Facing], core.ColorBrightCyan)
		}
	case RoleDrifter:
		gl := kindGlyphs[e.Kind]
		if e.Kind == KindRock {
			fillClipped(dst, vp, vp.cellRect(e.Pos, e.Size, scale), gl.r, gl.c)
			return
		}
		x, y := vp.cell(e.Pos)
		if vp.inside(x, y) {
			dst.SetColored(x, y, gl.r, gl.c)
		}
	}
}

func fillClipped(dst *core.Screen, vp viewport, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if vp.inside(x, y) {
				dst.SetColored(x, y, ch, c)
			}
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	cashColor := core.ColorBrightGreen
	if snap.Cash < g.cfg.Upkeep.Cost {
		cashColor = core.ColorBrightRed
	}

	x := 1
	x = drawSegment(dst, x, 0, g.Title(), core.ColorBrightCyan)
	x = drawSegment(dst, x, 0, "$"+humanize.Comma(snap.Cash), cashColor)
	x = drawSegment(dst, x, 0, fmt.Sprintf("ship %d/%d", snap.MobileTotal(), snap.MobileCap), core.ColorDefault)
	x = drawSegment(dst, x, 0, fmt.Sprintf("base %d/%d", snap.BaseTotal(), snap.BaseCap), core.ColorDefault)
	x = drawSegment(dst, x, 0, fmt.Sprintf("upkeep %.0fs", math.Ceil(snap.NextUpkeepIn)), core.ColorGray)
	drawSegment(dst, x, 0, fmt.Sprintf("market %.0fs", math.Ceil(snap.NextMarketIn)), core.ColorGray)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDarkGray)
}

func drawSegment(dst *core.Screen, x, y int, text string, c core.Color) int {
	dst.DrawTextColored(x, y, text, c)
	return x + len([]rune(text)) + 3
}

func (g *Game) drawPanel(dst *core.Screen, snap Snapshot, left int) {
	height := dst.Height() - hudRows - footerRows
	dst.DrawBox(core.NewRect(left, hudRows, dst.Width()-left, height), core.ColorDarkGray)
	x := left + 2
	y := hudRows + 1

	dst.DrawTextColored(x, y, "MARKET", core.ColorBrightCyan)
	y++
	titles := snap.PriceTitles()
	for _, k := range Resources {
		gl := kindGlyphs[k]
		dst.SetColored(x, y, gl.r, gl.c)
		dst.DrawText(x+2, y, titles[k])
		dst.DrawTextColored(x+29, y, fmt.Sprintf("%3d", snap.Base[k]), core.ColorGray)
		y++
	}

	if g.session.offers == nil {
		return
	}
	y++
	dst.DrawTextColored(x, y, "OFFERS", core.ColorBrightCyan)
	y++
	if len(snap.Offers) == 0 {
		dst.DrawTextColored(x, y, "no offers", core.ColorGray)
		return
	}
	for i, o := range snap.Offers {
		c := core.ColorDefault
		marker := "  "
		if i == g.selected {
			c = core.ColorBrightYellow
			marker = "> "
		}
		dst.DrawTextColored(x, y, marker+o.Title(), c)
		dst.DrawTextColored(x+30, y, fmt.Sprintf("%2.0fs", math.Ceil(o.ExpiresIn)), core.ColorGray)
		y++
	}
}

func (g *Game) drawFooter(dst *core.Screen) {
	hint := "WASD move  1-4 sell  !@#$ buy  P pause  Q quit"
	if g.session.offers != nil {
		hint = "WASD move  1-4 sell  !@#$ buy  tab/enter/x offers  P pause  Q quit"
	}
	dst.DrawTextColored(1, dst.Height()-1, hint, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightRed)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
