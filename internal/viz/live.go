package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravitylab/internal/config"
	"github.com/san-kum/gravitylab/internal/export"
	"github.com/san-kum/gravitylab/internal/interact"
	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/physics"
	"github.com/san-kum/gravitylab/internal/scene"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	panelWidth      = 45

	// canvas origin inside the terminal, from canvasStyle padding
	canvasLeft = 2
	canvasTop  = 1
)

type TickMsg time.Time

// Model is the live terminal view: one renderer drawing the shared
// parameters onto a braille canvas every tick.
type Model struct {
	cfg      config.Config
	store    *params.Store
	renderer *scene.Renderer
	canvas   *Canvas
	surface  *BrailleSurface
	drag     *interact.Drag
	frame    scene.Frame

	width, height int
	selected      int
	showHelp      bool
	recording     bool
	frames        []*image.Paletted
	forceHistory  []float64
	stabHistory   []float64
	notice        string
	rows          *paramRows
}

// paramRows caches the parameter block of the panel. It only changes when
// the store version or the selection moves.
type paramRows struct {
	version  uint64
	selected int
	text     string
	ok       bool
}

// NewModel builds the view from cfg. The star field is drawn once from
// cfg.Seed, or from the clock when the seed is zero.
func NewModel(cfg config.Config) Model {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	store := params.NewStore(cfg.Params)
	store.OnMerge(logMerge)
	canvas := NewCanvas(width, height)
	return Model{
		cfg:          cfg,
		store:        store,
		renderer:     scene.NewRenderer(scene.NewStarField(cfg.Stars, rand.New(rand.NewSource(seed)))),
		canvas:       canvas,
		surface:      NewBrailleSurface(canvas, cfg.ViewportScale),
		drag:         interact.NewDrag(store.SetDistance),
		width:        width + panelWidth + 2*canvasLeft + 1,
		height:       height + 2*canvasTop,
		forceHistory: make([]float64, 0, historyCapacity),
		stabHistory:  make([]float64, 0, historyCapacity),
		rows:         &paramRows{},
	}
}

func logMerge(prev, next params.Parameters) {
	for _, k := range params.Keys {
		if a, b := k.Value(prev), k.Value(next); a != b {
			log.Printf("viz: %s %g -> %g", k, a, b)
		}
	}
}

func (m Model) Store() *params.Store { return m.store }
func (m Model) Frame() scene.Frame   { return m.frame }

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		m.step()
		return m, m.tick()
	}
	return m, nil
}

// resize fits the canvas into whatever the panel leaves over.
func (m *Model) resize() {
	cols := m.width - panelWidth - 2*canvasLeft - 1
	rows := m.height - 2*canvasTop
	if cols < 10 {
		cols = 10
	}
	if rows < 5 {
		rows = 5
	}
	if cols == m.canvas.Width && rows == m.canvas.Height {
		return
	}
	m.canvas.Resize(cols, rows)
	log.Printf("viz: canvas %dx%d cells", cols, rows)
}

func (m *Model) step() {
	p := m.store.Snapshot()
	m.frame = m.renderer.Render(m.surface, p)
	tel := physics.Compute(p)
	m.forceHistory = push(m.forceHistory, tel.Force)
	m.stabHistory = push(m.stabHistory, tel.Stability)
	if m.recording {
		m.captureFrame()
	}
}

func push(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pt := m.surface.ToScene(msg.X-canvasLeft, msg.Y-canvasTop)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.onCanvas(msg.X, msg.Y) {
			return
		}
		m.drag.PointerDown(m.store.Snapshot().AutoOrbit, m.frame.EarthX)
	case tea.MouseActionMotion:
		m.drag.PointerMove(pt.X)
	case tea.MouseActionRelease:
		m.drag.PointerUp()
	}
}

func (m *Model) onCanvas(x, y int) bool {
	col, row := x-canvasLeft, y-canvasTop
	return col >= 0 && row >= 0 && col < m.canvas.Width && row < m.canvas.Height
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.store.Snapshot()
	switch msg.String() {
	case "q", "ctrl+c":
		m.drag.Cancel()
		if m.recording {
			m.stopRecording()
		}
		return m, tea.Quit
	case "a":
		if !p.AutoOrbit {
			m.drag.Cancel()
		}
		m.store.Merge(params.Update{AutoOrbit: params.Bool(!p.AutoOrbit)})
	case "v":
		m.store.Merge(params.Update{ShowVectors: params.Bool(!p.ShowVectors)})
	case "f":
		m.store.Merge(params.Update{ShowField: params.Bool(!p.ShowField)})
	case "p":
		m.store.Merge(params.Update{ShowPath: params.Bool(!p.ShowPath)})
	case "tab":
		m.selected = (m.selected + 1) % len(params.Keys)
	case "shift+tab":
		m.selected = (m.selected + len(params.Keys) - 1) % len(params.Keys)
	case "up", "k":
		m.store.Merge(params.Keys[m.selected].Nudge(p, 1))
	case "down", "j":
		m.store.Merge(params.Keys[m.selected].Nudge(p, -1))
	case "K":
		m.store.Merge(params.Keys[m.selected].Nudge(p, 10))
	case "J":
		m.store.Merge(params.Keys[m.selected].Nudge(p, -10))
	case "r":
		m.store.Reset()
		m.forceHistory = m.forceHistory[:0]
		m.stabHistory = m.stabHistory[:0]
		m.notice = "parameters reset"
	case "g":
		if m.recording {
			m.stopRecording()
		} else {
			m.recording = true
			m.frames = make([]*image.Paletted, 0)
			m.notice = ""
		}
	case "s":
		m.snapshot()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) stopRecording() {
	path, err := m.saveGIF()
	switch {
	case err != nil:
		m.notice = "gif: " + err.Error()
		log.Printf("viz: save gif: %v", err)
	case path != "":
		m.notice = "saved " + path
	}
	m.recording = false
	m.frames = nil
}

// snapshot writes the current frame as SVG without advancing the live view.
func (m *Model) snapshot() {
	path := filepath.Join(m.cfg.DataDir, "snapshots", fmt.Sprintf("snapshot_%d.svg", time.Now().Unix()))
	err := export.WriteSnapshot(path, m.renderer.Fork(), m.store.Snapshot(), m.cfg.Width, m.cfg.Height)
	if err != nil {
		m.notice = "snapshot: " + err.Error()
		log.Printf("viz: snapshot: %v", err)
		return
	}
	m.notice = "saved " + path
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.Render())
	statsView := statsStyle.Render(m.panel())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

func (m Model) panel() string {
	p := m.store.Snapshot()
	tel := physics.Compute(p)

	var s strings.Builder
	s.WriteString(headerStyle.Render("EARTH · MOON") + "\n")
	s.WriteString(StatusChip(tel.Status) + "\n")
	s.WriteString(forceStyle.Render(fmt.Sprintf("%.2f", tel.Force)) + " " + captionStyle.Render("N(s)") + "\n")
	s.WriteString(captionStyle.Render("GRAVITATIONAL MAGNITUDE") + "\n\n")

	s.WriteString(labelStyle.Render("Stability") + StabilityBar(tel.Stability, 20) + valueStyle.Render(fmt.Sprintf(" %.0f%%", tel.Stability)) + "\n")
	s.WriteString(labelStyle.Render("Radius") + valueStyle.Render(Thousands(int64(physics.RadiusKM(p.Distance)))+" KM") + "\n")
	s.WriteString(labelStyle.Render("Earth") + earthStyle.Render(fmt.Sprintf("%.2f M⊕", p.EarthMass)) + "\n")
	s.WriteString(labelStyle.Render("Moon") + moonStyle.Render(fmt.Sprintf("%.3f M⊕", p.MoonMass)) + "\n")
	s.WriteString(labelStyle.Render("Velocity") + speedStyle.Render(fmt.Sprintf("%.2f v_f", p.Velocity)) + "\n")
	s.WriteString(labelStyle.Render("Engine") + valueStyle.Render(engineStatus(p, m.drag.State())) + "\n")

	if len(m.forceHistory) > 1 {
		chart := asciigraph.Plot(m.forceHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Force"))
		s.WriteString("\n" + graphStyle.Render(chart) + "\n")
	}
	if len(m.stabHistory) > 1 {
		chart := asciigraph.Plot(m.stabHistory, asciigraph.Height(3), asciigraph.Width(30), asciigraph.LowerBound(0), asciigraph.UpperBound(100), asciigraph.Caption("Stability"))
		s.WriteString("\n" + graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	s.WriteString(m.paramBlock(p))

	if m.recording {
		s.WriteString("\n" + recordingStyle.Render(fmt.Sprintf("● REC %d frames", len(m.frames))) + "\n")
	}
	if m.notice != "" {
		s.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}
	s.WriteString(helpStyle.Render("A:Orbit V:Vectors F:Field P:Path\nTab ↑↓:Tune R:Reset G:GIF S:SVG\n?:Help Q:Quit"))
	return s.String()
}

func (m Model) paramBlock(p params.Parameters) string {
	v := m.store.Version()
	if c := m.rows; c.ok && c.version == v && c.selected == m.selected {
		return c.text
	}
	var s strings.Builder
	for i, k := range params.Keys {
		lo, hi, _ := k.Range()
		val := k.Value(p)
		line := fmt.Sprintf("%-9s %s %s", k, RangeBar(val, lo, hi, 10), formatValue(k, val))
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + line + "\n")
		}
	}
	s.WriteString("  " + toggles(p) + "\n")
	*m.rows = paramRows{version: v, selected: m.selected, text: s.String(), ok: true}
	return m.rows.text
}

func engineStatus(p params.Parameters, st interact.State) string {
	switch {
	case p.AutoOrbit:
		return "DYNAMICS: RUNNING"
	case st == interact.Dragging:
		return "DRAGGING"
	default:
		return "DYNAMICS: SUSPENDED"
	}
}

func formatValue(k params.Key, v float64) string {
	switch k {
	case params.KeyEarthMass:
		return fmt.Sprintf("%.2fx", v)
	case params.KeyMoonMass:
		return fmt.Sprintf("%.3fx", v)
	case params.KeyDistance:
		return fmt.Sprintf("%.0fu", v)
	default:
		return fmt.Sprintf("%.2fv", v)
	}
}

func toggles(p params.Parameters) string {
	box := func(on bool, name string) string {
		if on {
			return "[x] " + name
		}
		return "[ ] " + name
	}
	return strings.Join([]string{
		box(p.ShowVectors, "vec"),
		box(p.ShowField, "field"),
		box(p.ShowPath, "path"),
		box(p.AutoOrbit, "orbit"),
	}, " ")
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  A        - Toggle auto-orbit        ║
║  V / F / P - Vectors, field, path    ║
║  Tab      - Select parameter         ║
║  Up/K     - Increase parameter       ║
║  Down/J   - Decrease parameter       ║
║  Shift+K/J - Ten steps at once       ║
║  R        - Reset physical values    ║
║  G        - Toggle GIF recording     ║
║  S        - Save SVG snapshot        ║
║  Mouse    - Drag moon (orbit off)    ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// captureFrame rasterises the canvas with 4x4 pixel dots.
func (m *Model) captureFrame() {
	const charW, charH = 8, 16
	c := m.canvas
	img := image.NewPaletted(image.Rect(0, 0, c.Width*charW, c.Height*charH), palette.Plan9)
	dotW, dotH := charW/2, charH/4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			bg := img.Palette.Index(rgb(c.bg[row][col].Clamped().RGB255()))
			fg := img.Palette.Index(rgb(c.fg[row][col].Clamped().RGB255()))
			pattern := int(c.Grid[row][col] - blank)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					idx := bg
					if pattern&pixelMap[dy][dx] != 0 {
						idx = fg
					}
					baseX, baseY := col*charW+dx*dotW, row*charH+dy*dotH
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+px, baseY+py, uint8(idx))
						}
					}
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func rgb(r, g, b uint8) color.Color { return color.RGBA{R: r, G: g, B: b, A: 255} }

func (m *Model) saveGIF() (string, error) {
	if len(m.frames) == 0 {
		return "", nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	if err := os.MkdirAll(m.cfg.DataDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(m.cfg.DataDir, fmt.Sprintf("orbit_%d.gif", time.Now().Unix()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return path, gif.EncodeAll(f, &anim)
}

// Run starts the full-screen view. With a non-empty logPath the standard
// logger writes there; otherwise it is silenced so nothing disturbs the
// terminal.
func Run(cfg config.Config, logPath string) error {
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "gravitylab")
		if err != nil {
			return fmt.Errorf("viz: open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.drag.Cancel()
	}
	return err
}
