// Package gui is the windowed front end: the same scene drawn by raylib
// into a resizable window, with mouse drag and keyboard tuning.
package gui

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravitylab/internal/config"
	"github.com/san-kum/gravitylab/internal/export"
	"github.com/san-kum/gravitylab/internal/interact"
	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/physics"
	"github.com/san-kum/gravitylab/internal/scene"
)

var (
	ColText    = rl.NewColor(203, 213, 225, 255)
	ColTextDim = rl.NewColor(71, 85, 105, 255)
	ColAccent  = rl.NewColor(96, 165, 250, 255)
	ColPanel   = rl.NewColor(2, 6, 23, 200)
)

type App struct {
	Store    *params.Store
	Renderer *scene.Renderer
	Surface  *Surface
	Drag     *interact.Drag
	Frame    scene.Frame

	ParamSel   int
	Telemetry  []float64 // force history for the strip chart
	MaxHistory int
	ShowHelp   bool
	Notice     string

	cfg  config.Config
	quit bool
}

// initWindow opens a resizable window sized from the config.
func initWindow(cfg config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "gravitylab")
	fps := cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono when present and falls back to raylib's
// built-in face.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg config.Config) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	store := params.NewStore(cfg.Params)
	return &App{
		Store:      store,
		Renderer:   scene.NewRenderer(scene.NewStarField(cfg.Stars, rand.New(rand.NewSource(seed)))),
		Surface:    &Surface{Font: loadFont()},
		Drag:       interact.NewDrag(store.SetDistance),
		MaxHistory: 240,
		Telemetry:  make([]float64, 0, 240),
		cfg:        cfg,
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config) {
	initWindow(cfg)
	defer rl.CloseWindow()
	app := NewApp(cfg)
	app.RunLoop()
}

func (a *App) RunLoop() {
	defer a.Drag.Cancel()
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	p := a.Store.Snapshot()

	if rl.IsWindowResized() {
		log.Printf("gui: window %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
		return
	case rl.IsKeyPressed(rl.KeyA):
		if !p.AutoOrbit {
			a.Drag.Cancel()
		}
		a.Store.Merge(params.Update{AutoOrbit: params.Bool(!p.AutoOrbit)})
	case rl.IsKeyPressed(rl.KeyV):
		a.Store.Merge(params.Update{ShowVectors: params.Bool(!p.ShowVectors)})
	case rl.IsKeyPressed(rl.KeyF):
		a.Store.Merge(params.Update{ShowField: params.Bool(!p.ShowField)})
	case rl.IsKeyPressed(rl.KeyP):
		a.Store.Merge(params.Update{ShowPath: params.Bool(!p.ShowPath)})
	case rl.IsKeyPressed(rl.KeyTab):
		a.ParamSel = (a.ParamSel + 1) % len(params.Keys)
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK):
		a.Store.Merge(params.Keys[a.ParamSel].Nudge(p, a.steps()))
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ):
		a.Store.Merge(params.Keys[a.ParamSel].Nudge(p, -a.steps()))
	case rl.IsKeyPressed(rl.KeyR):
		a.Store.Reset()
		a.Telemetry = a.Telemetry[:0]
	case rl.IsKeyPressed(rl.KeyS):
		a.snapshot()
	case rl.IsKeyPressed(rl.KeySlash):
		a.ShowHelp = !a.ShowHelp
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.Drag.PointerDown(a.Store.Snapshot().AutoOrbit, a.Frame.EarthX)
	}
	if a.Drag.State() == interact.Dragging {
		a.Drag.PointerMove(float64(rl.GetMousePosition().X))
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.Drag.PointerUp()
	}
}

// steps is ten with shift held, else one.
func (a *App) steps() int {
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		return 10
	}
	return 1
}

func (a *App) snapshot() {
	path := filepath.Join(a.cfg.DataDir, "snapshots", fmt.Sprintf("snapshot_%d.svg", time.Now().Unix()))
	w, h := a.Surface.Size()
	if err := export.WriteSnapshot(path, a.Renderer.Fork(), a.Store.Snapshot(), w, h); err != nil {
		a.Notice = "snapshot: " + err.Error()
		log.Printf("gui: snapshot: %v", err)
		return
	}
	a.Notice = "saved " + path
}

func (a *App) Draw() {
	rl.BeginDrawing()
	p := a.Store.Snapshot()
	a.Frame = a.Renderer.Render(a.Surface, p)
	a.Telemetry = append(a.Telemetry, physics.Compute(p).Force)
	if len(a.Telemetry) > a.MaxHistory {
		a.Telemetry = a.Telemetry[1:]
	}
	a.DrawHUD(p)
	rl.EndDrawing()
}

func (a *App) DrawHUD(p params.Parameters) {
	tel := physics.Compute(p)
	w := int(rl.GetScreenWidth())
	h := int(rl.GetScreenHeight())

	rl.DrawRectangle(int32(w-300), 20, 280, 250, ColPanel)
	x, y := w-285, 34
	a.drawText("ORBITAL TELEMETRY", x, y, 14, ColTextDim)
	a.drawText(tel.Status.String(), x+180, y, 14, hexColor(tel.Status.Color()))
	a.drawText(fmt.Sprintf("%.2f", tel.Force), x, y+24, 36, ColText)
	a.drawText("N(s)  GRAVITATIONAL MAGNITUDE", x, y+64, 11, ColTextDim)
	a.drawText(fmt.Sprintf("STABILITY INDEX  %.0f%%", tel.Stability), x, y+90, 12, ColText)
	rl.DrawRectangle(int32(x), int32(y+108), 250, 4, ColTextDim)
	rl.DrawRectangle(int32(x), int32(y+108), int32(250*tel.Stability/100), 4, hexColor(tel.Status.Color()))
	a.drawText(fmt.Sprintf("RADIUS    %.0f KM", physics.RadiusKM(p.Distance)), x, y+124, 12, ColText)
	a.drawText(fmt.Sprintf("EARTH     %.2f M", p.EarthMass), x, y+142, 12, ColAccent)
	a.drawText(fmt.Sprintf("MOON      %.3f M", p.MoonMass), x, y+160, 12, rl.NewColor(52, 211, 153, 255))
	a.drawText(fmt.Sprintf("VELOCITY  %.2f v", p.Velocity), x, y+178, 12, rl.NewColor(245, 158, 11, 255))
	engine := "DYNAMICS: SUSPENDED"
	if p.AutoOrbit {
		engine = "DYNAMICS: RUNNING"
	}
	a.drawText(engine, x, y+202, 12, ColAccent)

	for i, k := range params.Keys {
		col := ColTextDim
		prefix := "  "
		if i == a.ParamSel {
			col, prefix = ColAccent, "> "
		}
		a.drawText(fmt.Sprintf("%s%-9s %.3f", prefix, k, k.Value(p)), 30, 30+i*18, 14, col)
	}

	a.DrawTelemetry(30, h-110)
	if a.Notice != "" {
		a.drawText(a.Notice, 30, h-40, 12, ColAccent)
	}
	a.drawText("[A] ORBIT [V] VECTORS [F] FIELD [P] PATH [TAB/UP/DN] TUNE [R] RESET [S] SVG [Q] QUIT", 30, h-22, 12, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), w-80, h-22, 12, ColTextDim)

	if a.ShowHelp {
		a.drawText("Turn auto-orbit off, then drag anywhere to move the moon.", 30, 120, 14, ColText)
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Surface.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry draws the force history as a strip chart.
func (a *App) DrawTelemetry(rectX, rectY int) {
	if len(a.Telemetry) < 2 {
		return
	}
	width, height := 300, 50

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(rectX) + (float32(i)/float32(len(a.Telemetry)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("F: %.2f", a.Telemetry[len(a.Telemetry)-1]), rectX+width+10, rectY+height-10, 14, ColText)
}

func hexColor(hex string) rl.Color {
	return toColor(scene.Solid(hex))
}
