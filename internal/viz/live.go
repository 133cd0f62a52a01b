package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/chaosgen/internal/chaos"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	trailLength     = 60
	rateDelta       = 0.002
	startDelta      = 0.05
)

type TickMsg time.Time

// Model drives the live orbit explorer: a cobweb rendering of the map
// on the left, orbit statistics on the right.
type Model struct {
	m         chaos.Map
	x0        float64
	x         float64
	steps     int
	history   []float64
	canvas    *Canvas
	running   bool
	showHelp  bool
	recording bool
	frames    []*image.Paletted
}

func NewModel(rate, x0 float64) (Model, error) {
	m, err := chaos.New(rate)
	if err != nil {
		return Model{}, err
	}
	if x0 < -1 || x0 > 1 {
		return Model{}, fmt.Errorf("viz: start %v outside [-1, 1]", x0)
	}

	return Model{
		m:       m,
		x0:      x0,
		x:       x0,
		canvas:  NewCanvas(width, height),
		history: make([]float64, 0, historyCapacity),
		running: true,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the orbit.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "up", "k":
			m.adjustRate(rateDelta)
		case "down", "j":
			m.adjustRate(-rateDelta)
		case "left", "h":
			m.adjustStart(-startDelta)
		case "right", "l":
			m.adjustStart(startDelta)
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		m.draw()
		if m.recording {
			m.captureFrame()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// advance applies the map once and records the new position.
func (m *Model) advance() {
	m.x = m.m.Apply(m.x)
	m.steps++
	m.history = append(m.history, m.x)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) adjustRate(delta float64) {
	rate := m.m.Rate() + delta
	if rate < 1.0 {
		rate = 1.0
	}
	if rate > 2.0 {
		rate = 2.0
	}
	nm, err := chaos.New(rate)
	if err != nil {
		return
	}
	m.m = nm
}

func (m *Model) adjustStart(delta float64) {
	x0 := m.x0 + delta
	if x0 < -1 {
		x0 = -1
	}
	if x0 > 1 {
		x0 = 1
	}
	m.x0 = x0
	m.reset()
}

// reset restarts the orbit from the starting point.
func (m *Model) reset() {
	m.x = m.x0
	m.steps = 0
	m.history = m.history[:0]
}

// project maps the unit square [-1, 1] x [-1, 1] to sub-pixel coordinates.
func (m *Model) project(x, y float64) (int, int) {
	cw, ch := width*2, height*4
	px := int((x + 1) / 2 * float64(cw-1))
	py := int((1 - y) / 2 * float64(ch-1))
	return px, py
}

// draw renders the map curve, the diagonal, and the recent cobweb trail.
func (m *Model) draw() {
	m.canvas.Clear()

	m.canvas.PlotFunc(m.m.Apply, -1, 1, -1, 1)
	m.canvas.PlotFunc(func(x float64) float64 { return x }, -1, 1, -1, 1)

	tail := m.history
	if len(tail) > trailLength {
		tail = tail[len(tail)-trailLength:]
	}
	for i := 0; i+1 < len(tail); i++ {
		x, y := tail[i], tail[i+1]
		px0, py0 := m.project(x, x)
		px1, py1 := m.project(x, y)
		px2, py2 := m.project(y, y)
		m.canvas.DrawLine(px0, py0, px1, py1)
		m.canvas.DrawLine(px1, py1, px2, py2)
	}

	cx, cy := m.project(m.x, m.x)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			m.canvas.Set(cx+dx, cy+dy)
		}
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("ORBIT EXPLORER") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.recording {
		status += "  ● REC"
	}
	s.WriteString(status + "\n\n")

	if len(m.history) > 1 {
		recent := m.history
		if len(recent) > 120 {
			recent = recent[len(recent)-120:]
		}
		chart := asciigraph.Plot(recent, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("orbit"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	rate := m.m.Rate()
	s.WriteString(labelStyle.Render("Rate") + valueStyle.Render(fmt.Sprintf("%.4f", rate)))
	if chaos.InTheoreticalRange(rate) {
		s.WriteString(valueStyle.Render("  in window"))
	} else {
		s.WriteString(alertStyle.Render("  outside window"))
	}
	s.WriteString("\n")

	span := chaos.GoldenRatio - chaos.SqrtTwo
	s.WriteString(labelStyle.Render("Window") + progressBar((rate-chaos.SqrtTwo)/span, 14) + "\n")
	s.WriteString(labelStyle.Render("Start") + valueStyle.Render(fmt.Sprintf("%+.2f", m.x0)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d", m.steps)) + "\n")
	s.WriteString(labelStyle.Render("x") + valueStyle.Render(fmt.Sprintf("%+.6f", m.x)) + "\n")
	s.WriteString(labelStyle.Render("Lyapunov") + valueStyle.Render(fmt.Sprintf("%.4f", math.Log(rate))) + "\n")

	if len(m.history) > 0 {
		s.WriteString("\n" + sparkline(m.history, 30) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\n↑↓:Rate ←→:Start G:Record ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume iteration   ║
║  R        - Reset the orbit          ║
║  Q        - Quit                     ║
║  Up/K     - Raise the rate           ║
║  Down/J   - Lower the rate           ║
║  Left/H   - Move the start left      ║
║  Right/L  - Move the start right     ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func (m *Model) captureFrame() {
	charW, charH := 8, 16
	imgW, imgH := width*charW, height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			r := m.canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			dotW, dotH := charW/2, charH/4
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create("orbit.gif")
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
}
