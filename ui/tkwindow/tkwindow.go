// Package tkwindow runs the drawing pad in a Tk window driven from the keyboard.
// Arrow keys move a cursor over the grid, space holds the pen, Enter classifies
// and r resets. The frame is rendered off-screen and shown as a photo image.
package tkwindow

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/soocke/digitpad-go/ui/layout"
	"github.com/soocke/digitpad-go/ui/presenter"
	"github.com/soocke/digitpad-go/ui/raster"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// maxTPS caps the redraw rate; every frame is PNG-encoded for Tk.
const maxTPS = 30

// Options configure the Tk frontend.
type Options struct {
	Title     string
	TPS       int
	FontTTF   []byte
	SmallSize float64
	LargeSize float64
	Cursor    color.Color
}

type frontend struct {
	ctx     context.Context
	drv     *driver
	logger  *slog.Logger
	tick    time.Duration
	afterID string
	label   *LabelWidget
	photo   *Img
	err     error
}

// Run builds the window and blocks in the Tk event loop until the window is
// closed, ctx is cancelled or the loop fails.
func Run(ctx context.Context, opts Options, l layout.Layout, loop *presenter.Loop, logger *slog.Logger) error {
	c, err := raster.New(l.Size(), opts.FontTTF, opts.SmallSize, opts.LargeSize)
	if err != nil {
		return fmt.Errorf("tk: %w", err)
	}
	tps := opts.TPS
	if tps <= 0 || tps > maxTPS {
		tps = maxTPS
	}
	f := &frontend{
		ctx:    ctx,
		drv:    &driver{loop: loop, keys: presenter.NewKeyPointer(l), canvas: c, cursor: opts.Cursor},
		logger: logger,
		tick:   time.Second / time.Duration(tps),
	}
	if err := f.build(opts.Title, l.Size()); err != nil {
		return fmt.Errorf("tk: %w", err)
	}
	if logger != nil {
		logger.Info("tk frontend started", "width", l.Size().X, "height", l.Size().Y, "tps", tps)
	}
	f.schedule()
	App.Wait()
	return f.err
}

func (f *frontend) build(title string, size image.Point) error {
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", f.exit)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", size.X+20, size.Y+120))

	png, err := f.drv.step()
	if err != nil {
		return err
	}
	f.photo = NewPhoto(Data(png))
	f.label = Label(Image(f.photo), Borderwidth(1), Relief("sunken"))
	Pack(f.label, Padx("1m"), Pady("1m"))

	keys := f.drv.keys
	Pack(Button(Txt("Reset [r]"), Command(func() { keys.Press(layout.ActionReset) })), Padx("1m"), Pady("0.5m"))
	Pack(Button(Txt("Classify [Enter]"), Command(func() { keys.Press(layout.ActionClassify) })), Padx("1m"), Pady("0.5m"))
	Pack(Button(Txt("Exit"), Command(f.exit)), Padx("1m"), Pady("0.5m"))

	Bind(App, "<Left>", Command(func() { keys.Move(0, -1) }))
	Bind(App, "<Right>", Command(func() { keys.Move(0, 1) }))
	Bind(App, "<Up>", Command(func() { keys.Move(-1, 0) }))
	Bind(App, "<Down>", Command(func() { keys.Move(1, 0) }))
	Bind(App, "<KeyPress-space>", Command(func() { keys.SetDown(true) }))
	Bind(App, "<KeyRelease-space>", Command(func() { keys.SetDown(false) }))
	Bind(App, "<Return>", Command(func() { keys.Press(layout.ActionClassify) }))
	Bind(App, "<KeyPress-r>", Command(func() { keys.Press(layout.ActionReset) }))
	Bind(App, "<Escape>", Command(f.exit))
	return nil
}

func (f *frontend) update() {
	if f.ctx.Err() != nil {
		f.exit()
		return
	}
	png, err := f.drv.step()
	if err != nil {
		f.err = err
		f.exit()
		return
	}
	f.show(png)
	f.schedule()
}

// show swaps in a new photo and disposes the previous one.
func (f *frontend) show(png []byte) {
	if f.label == nil {
		return
	}
	if f.photo != nil {
		f.photo.Delete()
	}
	f.photo = NewPhoto(Data(png))
	f.label.Configure(Image(f.photo))
}

func (f *frontend) schedule() {
	// TclAfter keeps the update on Tk's event loop thread.
	f.afterID = TclAfter(f.tick, func() { f.update() })
}

func (f *frontend) exit() {
	if f.afterID != "" {
		TclAfterCancel(f.afterID)
		f.afterID = ""
	}
	Destroy(App)
}
