// Package terminal shows a rendered diagram in a scrollable full-screen view.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"umlbox/presenter"
)

// ReloadFunc renders the diagram again, e.g. after the source file changed.
type ReloadFunc func() (presenter.ViewModel, error)

// Preview is a read-only viewer for a ViewModel. The last screen row is a
// status line; everything above it shows the diagram.
type Preview struct {
	screen   tcell.Screen
	title    string
	lines    [][]rune
	offsetX  int
	offsetY  int
	reload   ReloadFunc
	message  string
	showHelp bool
}

// NewPreview creates a preview drawing on screen. The screen must already be
// initialised.
func NewPreview(screen tcell.Screen, title string, vm presenter.ViewModel) *Preview {
	return &Preview{screen: screen, title: title, lines: vm.Cells()}
}

// SetReload enables the 'r' key.
func (p *Preview) SetReload(fn ReloadFunc) {
	p.reload = fn
}

// Offset returns the current scroll position.
func (p *Preview) Offset() (x, y int) {
	return p.offsetX, p.offsetY
}

// Run draws and handles events until the user quits.
func (p *Preview) Run() error {
	for {
		p.Draw()
		p.screen.Show()

		switch ev := p.screen.PollEvent().(type) {
		case nil:
			// Screen was finalised
			return nil
		case *tcell.EventResize:
			p.clampOffsets()
			p.screen.Sync()
		case *tcell.EventKey:
			if p.HandleKey(ev) {
				return nil
			}
		}
	}
}

// HandleKey applies a key press and reports whether the preview should close.
func (p *Preview) HandleKey(ev *tcell.EventKey) bool {
	if p.showHelp {
		p.showHelp = false
		return false
	}

	_, pageHeight := p.viewport()
	half := max(pageHeight/2, 1)

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		p.offsetY--
	case tcell.KeyDown:
		p.offsetY++
	case tcell.KeyLeft:
		p.offsetX--
	case tcell.KeyRight:
		p.offsetX++
	case tcell.KeyCtrlU, tcell.KeyPgUp:
		p.offsetY -= half
	case tcell.KeyCtrlD, tcell.KeyPgDn:
		p.offsetY += half
	case tcell.KeyHome:
		p.offsetX, p.offsetY = 0, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			p.offsetY--
		case 'j':
			p.offsetY++
		case 'h':
			p.offsetX--
		case 'l':
			p.offsetX++
		case 'K':
			p.offsetY -= half
		case 'J':
			p.offsetY += half
		case 'g':
			p.offsetY = 0
		case 'G':
			p.offsetY = len(p.lines)
		case 'r':
			p.doReload()
		case '?':
			p.showHelp = true
		}
	}

	p.clampOffsets()
	return false
}

func (p *Preview) doReload() {
	if p.reload == nil {
		p.message = "reload not available"
		return
	}
	vm, err := p.reload()
	if err != nil {
		p.message = err.Error()
		return
	}
	p.lines = vm.Cells()
	p.message = "reloaded"
}

// viewport returns the size of the diagram area.
func (p *Preview) viewport() (width, height int) {
	w, h := p.screen.Size()
	return w, max(h-1, 0)
}

func (p *Preview) clampOffsets() {
	width, height := p.viewport()

	widest := 0
	for _, line := range p.lines {
		widest = max(widest, runewidth.StringWidth(string(line)))
	}

	p.offsetX = min(max(p.offsetX, 0), max(widest-width, 0))
	p.offsetY = min(max(p.offsetY, 0), max(len(p.lines)-height, 0))
}

// Draw paints the visible part of the diagram and the status line.
func (p *Preview) Draw() {
	p.screen.Clear()
	if p.showHelp {
		p.drawHelp()
		return
	}

	width, height := p.viewport()
	style := tcell.StyleDefault

	for row := 0; row < height && p.offsetY+row < len(p.lines); row++ {
		x := -p.offsetX
		for _, r := range p.lines[p.offsetY+row] {
			w := runewidth.RuneWidth(r)
			if x >= 0 && x+w <= width {
				p.screen.SetContent(x, row, r, nil, style)
			}
			x += w
			if x >= width {
				break
			}
		}
	}

	p.drawStatus(height)
}

func (p *Preview) drawStatus(row int) {
	width, _ := p.screen.Size()
	style := tcell.StyleDefault.Reverse(true)

	title := p.title
	if title == "" {
		title = "untitled"
	}
	status := fmt.Sprintf("[ %s ] line %d/%d", title, min(p.offsetY+1, len(p.lines)), len(p.lines))
	if p.message != "" {
		status += " | " + p.message
	}
	status += " | ? help, q quit"

	p.putString(0, row, runewidth.Truncate(status, width, "…"), style)
	for x := runewidth.StringWidth(status); x < width; x++ {
		p.screen.SetContent(x, row, ' ', nil, style)
	}
}

var helpLines = []string{
	"umlbox preview",
	"══════════════",
	"",
	"  ↑ ↓ ← →, h j k l  Scroll one cell",
	"  K / J, Ctrl+U / Ctrl+D  Scroll half a page",
	"  g / G             Go to top / bottom",
	"  Home              Go to top left",
	"  r                 Reload the diagram",
	"  q, Esc, Ctrl+C    Quit",
	"",
	"Press any key to continue...",
}

func (p *Preview) drawHelp() {
	for row, line := range helpLines {
		p.putString(0, row, line, tcell.StyleDefault)
	}
}

func (p *Preview) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// Show opens the terminal, runs a preview of vm and restores the terminal on
// return.
func Show(title string, vm presenter.ViewModel, reload ReloadFunc) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	defer screen.Fini()

	p := NewPreview(screen, title, vm)
	p.SetReload(reload)
	return p.Run()
}
