package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"fractalglass/cli"
	"fractalglass/effect"
	"fractalglass/misc"
)

// App drives the controller from ebiten's game loop. It is the display
// synchronized effect.Scheduler: one Update, and so one Tick, per refresh.
type App struct {
	Opts       cli.Options
	Controller *effect.Controller
	Stage      *KageStage

	ShowDebugConsole bool
	ShaderLoadError  error

	ctx    context.Context
	ticker effect.Ticker
}

func NewApp(opts cli.Options, stage *KageStage) (*App, error) {
	ctrl, err := effect.New(opts.Effect, stage, float64(opts.Width), float64(opts.Height))
	if err != nil {
		return nil, err
	}

	a := &App{
		Opts:       opts,
		Controller: ctrl,
		Stage:      stage,
	}
	return a, nil
}

// Run blocks until the window is closed or ctx is done.
func (a *App) Run(ctx context.Context, t effect.Ticker) error {
	a.ctx = ctx
	a.ticker = t

	eb.SetTPS(eb.SyncWithFPS)
	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(a.Opts.Width, a.Opts.Height)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("fractal glass")

	SetLayoutSize(float64(a.Opts.Width), float64(a.Opts.Height))

	if err := eb.RunGame(a); err != nil {
		return err
	}

	return context.Cause(ctx)
}

func (a *App) Update() error {
	if a.ctx.Err() != nil {
		return eb.Termination
	}

	ClearDebugMsgs()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("fractal glass FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// deliver events
	// ==========================
	UpdateInput()

	im := &TheInputManager
	if im.Resized {
		a.Controller.Resize(im.LayoutWidth, im.LayoutHeight)
	}
	if im.CursorMoved {
		a.Controller.PointerMove(im.CursorX, im.CursorY)
	}

	// ==========================
	// hotkeys
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	if a.Opts.HotReload && IsKeyJustPressed(ReloadShaderKey) {
		a.reloadShader()
	}

	if IsKeyJustPressed(ScreenshotKey) {
		a.screenshot()
	}

	if IsKeyJustPressed(CopyUniformsKey) {
		a.copyUniforms()
	}

	a.ticker.Tick()

	// ==========================
	// DebugPrint
	// ==========================
	pointer := a.Controller.Pointer()
	viewport := a.Controller.Viewport()
	imageSize := a.Controller.ImageSize()

	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	DebugPrint("state", a.Controller.State())
	DebugPrintf("pointer", "%.3f, %.3f -> %.3f, %.3f",
		pointer.Current.X(), pointer.Current.Y(), pointer.Target.X(), pointer.Target.Y())
	DebugPrintf("viewport", "%vx%v", viewport.Width, viewport.Height)
	DebugPrintf("image", "%vx%v", imageSize.Width, imageSize.Height)

	return nil
}

func (a *App) reloadShader() {
	shader, err := LoadGlassShader(a.Opts.ShaderPath)
	if err != nil {
		misc.ErrLogger.Printf("failed to reload shader: %v", err)
		a.ShaderLoadError = err
		return
	}

	misc.InfoLogger.Printf("reloaded %s", a.Opts.ShaderPath)
	a.ShaderLoadError = nil
	a.Stage.SetShader(shader)
}

func (a *App) screenshot() {
	p, ok := a.Controller.Params()
	if !ok {
		misc.WarnLogger.Printf("no frame to take a screenshot of (%v)", a.Controller.State())
		return
	}

	name, err := TakeScreenshot(a.ctx, ".", a.Stage.Texture(), p)
	if err != nil {
		misc.ErrLogger.Printf("failed to take screenshot: %v", err)
		return
	}
	misc.InfoLogger.Printf("saved %s", name)
}

func (a *App) copyUniforms() {
	p, _ := a.Controller.Params()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		misc.ErrLogger.Printf("failed to encode uniforms: %v", err)
		return
	}

	if ClipboardWriteText(string(data)) {
		misc.InfoLogger.Print("copied uniforms to clipboard")
	} else {
		misc.InfoLogger.Printf("clipboard unavailable, uniforms:\n%s", data)
	}
}

func (a *App) Draw(dst *eb.Image) {
	a.Stage.Render(dst)

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}

	if a.ShaderLoadError != nil {
		ebu.DebugPrint(dst, fmt.Sprintf("error :%v", a.ShaderLoadError))
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := 1.0
	if m := eb.Monitor(); m != nil {
		ratio = m.DeviceScaleFactor()
	}
	ratio = min(ratio, a.Opts.MaxPixelRatio)

	w := int(math.Ceil(float64(outsideWidth) * ratio))
	h := int(math.Ceil(float64(outsideHeight) * ratio))

	SetLayoutSize(float64(w), float64(h))

	return w, h
}
