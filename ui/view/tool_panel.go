package view

import (
	"log/slog"
	"strconv"

	"github.com/soocke/image-label-go/domain/tool"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ToolPanel encapsulates mode selection, class selection and the action
// buttons. Callbacks fire on user interaction; the panel keeps no domain
// state of its own.
type ToolPanel interface {
	Build(startRow int) (endRow int)
	SetMode(m tool.Mode)
}

// ToolHandlers are invoked on user actions in the panel.
type ToolHandlers struct {
	OnMode   func(m tool.Mode)
	OnClass  func(label string)
	OnUndo   func()
	OnDelete func()
	OnClear  func()
	OnReset  func()
	OnExport func()
}

type toolPanel struct {
	logger   *slog.Logger
	classes  []string
	handlers ToolHandlers

	modeButtons map[tool.Mode]*ButtonWidget
	classSelect *TComboboxWidget
}

// NewToolPanel creates the panel bound to the given class list.
func NewToolPanel(classes []string, handlers ToolHandlers, logger *slog.Logger) ToolPanel {
	return &toolPanel{logger: logger, classes: classes, handlers: handlers, modeButtons: make(map[tool.Mode]*ButtonWidget)}
}

func (v *toolPanel) Build(startRow int) (row int) {
	row = startRow
	frame := Frame()
	Grid(frame, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	col := 0
	for _, m := range []tool.Mode{tool.ModeBox, tool.ModePoint, tool.ModePolygon} {
		mode := m
		btn := Button(Txt(mode.String()), Command(func() {
			if v.handlers.OnMode != nil {
				v.handlers.OnMode(mode)
			}
			v.SetMode(mode)
		}))
		Grid(btn, In(frame), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		v.modeButtons[mode] = btn
		col++
	}

	classes := v.classes
	if len(classes) == 0 {
		classes = []string{"<unlabeled>"}
	}
	v.classSelect = TCombobox(Values(classes), Width(18))
	Grid(v.classSelect, In(frame), Row(0), Column(col), Sticky("we"), Padx("0.3m"), Pady("0.2m"))
	v.classSelect.Current(0)
	Bind(v.classSelect, "<<ComboboxSelected>>", Command(func() {
		if v.classSelect == nil || v.handlers.OnClass == nil {
			return
		}
		idxStr := v.classSelect.Current(nil)
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 || idx >= len(v.classes) {
			if v.logger != nil {
				v.logger.Error("class selection parse error", "error", err)
			}
			return
		}
		v.handlers.OnClass(v.classes[idx])
	}))
	row++

	actions := Frame()
	Grid(actions, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"), Pady("0.2m"))
	buttons := []struct {
		text string
		fn   func()
	}{
		{"Undo [Ctrl+Z]", v.handlers.OnUndo},
		{"Delete [Del]", v.handlers.OnDelete},
		{"Clear Item", v.handlers.OnClear},
		{"Reset All", v.handlers.OnReset},
		{"Export", v.handlers.OnExport},
	}
	for i, b := range buttons {
		fn := b.fn
		btn := Button(Txt(b.text), Command(func() {
			if fn != nil {
				fn()
			}
		}))
		Grid(btn, In(actions), Row(0), Column(i), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}
	row++
	return row
}

// SetMode highlights the active mode button.
func (v *toolPanel) SetMode(m tool.Mode) {
	if v == nil {
		return
	}
	for mode, btn := range v.modeButtons {
		if btn == nil {
			continue
		}
		relief := "raised"
		if mode == m {
			relief = "sunken"
		}
		btn.Configure(Relief(relief))
	}
}
