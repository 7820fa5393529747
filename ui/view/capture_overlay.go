package view

import (
	"fmt"
	"image"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/soocke/image-label-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// CaptureOverlay manages the optional transparent window the user drags and
// resizes to constrain the screen-capture dataset source to a rectangle.
type CaptureOverlay interface {
	OpenOrFocus()
	Clear()
	ActiveRect() *image.Rectangle
}

type captureOverlay struct {
	logger  *slog.Logger
	cfg     *config.Config
	cfgPath string
	region  *image.Rectangle
	win     *ToplevelWidget
}

// NewCaptureOverlay creates a new overlay manager seeded from the config.
func NewCaptureOverlay(cfg *config.Config, cfgPath string, logger *slog.Logger) CaptureOverlay {
	return &captureOverlay{logger: logger, cfg: cfg, cfgPath: cfgPath, region: cfg.CaptureRegion()}
}

func (v *captureOverlay) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2), Background("#008080"))
	win.WmTitle("Capture Region")
	v.win = win
	screenW, screenH := screenSize()
	initW, initH := screenW*2/3, screenH*5/9
	if initW < 1 {
		initW = 1
	}
	if initH < 1 {
		initH = 1
	}
	x, y := (screenW-initW)/2, (screenH-initH)/2
	WmGeometry(win.Window, fmt.Sprintf("%dx%d+%d+%d", initW, initH, x, y))
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-transparentcolor", "#008080")
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(0))
	GridColumnConfigure(win.Window, 1, Weight(1))
	GridColumnConfigure(win.Window, 2, Weight(0))
	left := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(left, Row(0), Column(0), Sticky("ns"))
	center := win.Frame(Background("#008080"))
	Grid(center, Row(0), Column(1), Sticky("nsew"))
	right := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(right, Row(0), Column(2), Sticky("ns"))
	controls := win.Frame()
	Grid(controls, Row(1), Column(0), Columnspan(3), Sticky("we"))
	confirm := win.Button(Txt("Confirm [Enter]"), Command(v.confirm))
	Grid(confirm, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.cancel))
	Grid(cancel, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	clear := win.Button(Txt("Clear"), Command(v.Clear))
	Grid(clear, In(controls), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.cancel))
}

func (v *captureOverlay) Clear() {
	v.region = nil
	if v.cfg != nil {
		v.cfg.CaptureW, v.cfg.CaptureH = 0, 0
		_ = v.cfg.Save(v.cfgPath)
	}
}

func (v *captureOverlay) confirm() {
	if v.win == nil {
		return
	}
	geom := WmGeometry(v.win.Window)
	if rect, ok := parseOverlayGeometry(geom); ok {
		v.region = &rect
		if v.cfg != nil {
			v.cfg.CaptureX, v.cfg.CaptureY = rect.Min.X, rect.Min.Y
			v.cfg.CaptureW, v.cfg.CaptureH = rect.Dx(), rect.Dy()
			_ = v.cfg.Save(v.cfgPath)
		}
	}
	v.destroy()
}

func (v *captureOverlay) cancel() { v.destroy() }

func (v *captureOverlay) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}

// ActiveRect returns the confirmed region, nil when the full screen applies.
func (v *captureOverlay) ActiveRect() *image.Rectangle {
	if v.region == nil || v.region.Empty() {
		return nil
	}
	r := *v.region
	return &r
}

// screenSize returns the screen dimensions used to center the overlay.
// Static for now; a Tk winfo query would make this multi-monitor aware.
func screenSize() (int, int) {
	return 1920, 1080
}

// overlayGeomRe matches window geometry strings "WIDTHxHEIGHT+X+Y".
var overlayGeomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// parseOverlayGeometry parses a Tk geometry string into the screen rectangle.
func parseOverlayGeometry(g string) (image.Rectangle, bool) {
	g = strings.TrimSpace(g)
	m := overlayGeomRe.FindStringSubmatch(g)
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}
