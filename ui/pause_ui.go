package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseActions are the callbacks the pause menu triggers.
type PauseActions struct {
	Resume      func()
	Restart     func()
	ToggleDebug func()
	Swap        func(index int)
}

// PauseUI holds the ebitenui interface shown while the arena is paused.
type PauseUI struct {
	UI      *ebitenui.UI
	actions PauseActions

	rosterContainer *widget.Container
	rosterNames     []string
	activeIndex     int

	titleFace  text.Face
	normalFace text.Face
}

// NewPauseUI builds the menu. It panics only if the bundled font is broken.
func NewPauseUI(actions PauseActions) *PauseUI {
	pui := &PauseUI{actions: actions, activeIndex: -1}
	pui.loadFonts()
	pui.buildUI()
	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	pui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	pui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (pui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 10, 20, 200})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	content.AddChild(pui.button("Resume", pui.actions.Resume))
	content.AddChild(pui.button("Restart", pui.actions.Restart))
	content.AddChild(pui.button("Toggle debug", pui.actions.ToggleDebug))

	pui.rosterContainer = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)
	content.AddChild(pui.rosterContainer)

	rootContainer.AddChild(content)
	pui.UI = &ebitenui.UI{Container: rootContainer}
}

func (pui *PauseUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 20),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// SetRoster rebuilds the swap buttons when the unlocked roster or the
// active slot changed since the last call.
func (pui *PauseUI) SetRoster(names []string, active int) {
	if active == pui.activeIndex && equalNames(names, pui.rosterNames) {
		return
	}
	pui.rosterNames = append(pui.rosterNames[:0], names...)
	pui.activeIndex = active

	pui.rosterContainer.RemoveChildren()
	for i, name := range names {
		idx := i // Capture for closure
		label := fmt.Sprintf("%d  %s", i+1, name)
		if i == active {
			label += " *"
		}
		pui.rosterContainer.AddChild(pui.button(label, func() {
			if pui.actions.Swap != nil {
				pui.actions.Swap(idx)
			}
		}))
	}
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
