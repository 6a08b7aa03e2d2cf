package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"gotac/pkg/compiler"
	"gotac/pkg/utils"
)

const (
	screenWidth  = 640
	screenHeight = 480
	lineHeight   = 16
	margin       = 8
)

var (
	background = color.RGBA{0x12, 0x14, 0x1c, 0xff}
	foreground = color.RGBA{0xd8, 0xde, 0xe9, 0xff}
	labelColor = color.RGBA{0x88, 0xc0, 0xd0, 0xff}
	errorColor = color.RGBA{0xbf, 0x61, 0x6a, 0xff}
	statusBar  = color.RGBA{0x3b, 0x42, 0x52, 0xff}
)

type rowKind int

const (
	rowInstruction rowKind = iota
	rowLabel
	rowDiagnostic
)

type row struct {
	kind rowKind
	text string
}

// Viewer shows the TAC listing of one source file and recompiles it on F5.
type Viewer struct {
	path   string
	opts   []compiler.Option
	rows   []row
	scroll int
	status string
	face   *text.GoXFace // built on first Draw
}

func newViewer(path string, opts ...compiler.Option) *Viewer {
	v := &Viewer{path: path, opts: opts}
	v.reload()
	return v
}

// reload reads and compiles the source file again, keeping the scroll
// position where possible.
func (v *Viewer) reload() {
	fullPath, src, err := utils.ReadSource(v.path)
	if err != nil {
		v.rows = []row{{kind: rowDiagnostic, text: err.Error()}}
		v.status = "read failed"
		v.scrollBy(0)
		return
	}

	res := compiler.Compile(src, v.opts...)
	v.rows = v.rows[:0]
	for _, ins := range res.Instructions {
		kind := rowInstruction
		if len(ins) > 0 && ins[len(ins)-1] == ':' {
			kind = rowLabel
		}
		v.rows = append(v.rows, row{kind: kind, text: ins})
	}
	for _, d := range res.Diagnostics {
		v.rows = append(v.rows, row{kind: rowDiagnostic, text: fmt.Sprintf("line %d: %v", compiler.DiagnosticLine(d), d)})
	}
	v.status = fmt.Sprintf("%s  %d instructions, %d diagnostics  [F5 reload]", fullPath, len(res.Instructions), len(res.Diagnostics))
	v.scrollBy(0)
}

// visibleRows is how many rows fit below the status bar.
func (v *Viewer) visibleRows() int {
	return (screenHeight - 2*margin - lineHeight) / lineHeight
}

func (v *Viewer) scrollBy(n int) {
	v.scroll += n
	if limit := len(v.rows) - v.visibleRows(); v.scroll > limit {
		v.scroll = limit
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		v.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		v.scrollBy(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		v.scrollBy(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		v.scrollBy(v.visibleRows())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		v.scrollBy(-v.visibleRows())
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		v.scrollBy(-int(dy * 3))
	}
	return nil
}

func (v *Viewer) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, v.face, op)
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.face == nil {
		v.face = text.NewGoXFace(basicfont.Face7x13)
	}
	screen.Fill(background)

	bar := screen.SubImage(image.Rect(0, 0, screenWidth, lineHeight+margin)).(*ebiten.Image)
	bar.Fill(statusBar)
	v.drawText(screen, v.status, margin, margin/2, foreground)

	y := margin + lineHeight + margin/2
	end := v.scroll + v.visibleRows()
	if end > len(v.rows) {
		end = len(v.rows)
	}
	for _, r := range v.rows[v.scroll:end] {
		x := margin + 2*7 // instructions indent under their label
		c := color.Color(foreground)
		switch r.kind {
		case rowLabel:
			x = margin
			c = labelColor
		case rowDiagnostic:
			x = margin
			c = errorColor
		}
		v.drawText(screen, r.text, x, y, c)
		y += lineHeight
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	callResults := flag.Bool("call-results", false, "assign call results to their temporaries")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: desktop [-call-results] <source file>")
	}

	var opts []compiler.Option
	if *callResults {
		opts = append(opts, compiler.WithCallResults())
	}
	viewer := newViewer(flag.Arg(0), opts...)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("gotac TAC viewer")
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
