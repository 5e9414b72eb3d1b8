package certificate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(onChange func(TextBoxConfig)) *Editor {
	e := NewEditor(1000, 800, onChange)
	e.AddField("volunteer_name")
	return e
}

func TestAddFieldPlacesDefaultBox(t *testing.T) {
	e := newTestEditor(nil)

	box, ok := e.Box("volunteer_name")
	require.True(t, ok)
	assert.Equal(t, "volunteer_name", e.ActiveField())
	assert.GreaterOrEqual(t, box.Width, MinBoxWidth)
	assert.GreaterOrEqual(t, box.Height, MinBoxHeight)
	assert.LessOrEqual(t, box.X+box.Width, 1000.0)
	assert.LessOrEqual(t, box.Y+box.Height, 800.0)
}

func TestDragMovesBox(t *testing.T) {
	e := newTestEditor(nil)

	e.PointerDown("volunteer_name", 60, 60)
	e.PointerMove(160, 110)
	e.PointerUp()

	box, _ := e.Box("volunteer_name")
	assert.Equal(t, 150.0, box.X)
	assert.Equal(t, 100.0, box.Y)
}

func TestDragClampsToImageBounds(t *testing.T) {
	e := newTestEditor(nil)

	// Drag far past every edge in turn; the box must stay fully inside.
	moves := [][2]float64{
		{-5000, -5000},
		{5000, 60},
		{60, 5000},
		{5000, 5000},
	}
	for _, m := range moves {
		e.PointerDown("volunteer_name", 60, 60)
		e.PointerMove(m[0], m[1])
		e.PointerUp()

		box, _ := e.Box("volunteer_name")
		assert.GreaterOrEqual(t, box.X, 0.0)
		assert.GreaterOrEqual(t, box.Y, 0.0)
		assert.LessOrEqual(t, box.X+box.Width, 1000.0, "x+width must stay within image width")
		assert.LessOrEqual(t, box.Y+box.Height, 800.0, "y+height must stay within image height")
	}
}

func TestResizeEnforcesMinimums(t *testing.T) {
	e := newTestEditor(nil)
	box, _ := e.Box("volunteer_name")

	// Grab the bottom-right hotzone and shrink hard.
	cornerX := box.X + box.Width
	cornerY := box.Y + box.Height
	e.PointerDown("volunteer_name", cornerX-2, cornerY-2)
	e.PointerMove(box.X-500, box.Y-500)
	e.PointerUp()

	box, _ = e.Box("volunteer_name")
	assert.Equal(t, MinBoxWidth, box.Width)
	assert.Equal(t, MinBoxHeight, box.Height)
}

func TestResizeIsUnboundedUpward(t *testing.T) {
	e := newTestEditor(nil)
	box, _ := e.Box("volunteer_name")

	cornerX := box.X + box.Width
	cornerY := box.Y + box.Height
	e.PointerDown("volunteer_name", cornerX-2, cornerY-2)
	e.PointerMove(cornerX+2000, cornerY+2000)
	e.PointerUp()

	box, _ = e.Box("volunteer_name")
	// Growth past the image edge is allowed.
	assert.Greater(t, box.X+box.Width, 1000.0)
	assert.Greater(t, box.Y+box.Height, 800.0)
}

func TestPointerDownOnInactiveBoxOnlyActivates(t *testing.T) {
	e := newTestEditor(nil)
	e.AddField("points")
	require.Equal(t, "points", e.ActiveField())

	before, _ := e.Box("volunteer_name")

	// First press switches activation; the move that follows must not drag.
	e.PointerDown("volunteer_name", 60, 60)
	e.PointerMove(500, 500)
	e.PointerUp()

	after, _ := e.Box("volunteer_name")
	assert.Equal(t, before, after, "switching activation must not move the box")
	assert.Equal(t, "volunteer_name", e.ActiveField())

	// Second press on the now-active box drags normally.
	e.PointerDown("volunteer_name", 60, 60)
	e.PointerMove(110, 90)
	e.PointerUp()

	moved, _ := e.Box("volunteer_name")
	assert.NotEqual(t, before, moved)
}

func TestDisplayScalingConvertsToNaturalPixels(t *testing.T) {
	e := newTestEditor(nil)
	// Image rendered at half size: display deltas double in natural space.
	e.SetDisplaySize(500, 400)

	before, _ := e.Box("volunteer_name")
	e.PointerDown("volunteer_name", before.X/2+5, before.Y/2+5)
	e.PointerMove(before.X/2+55, before.Y/2+30)
	e.PointerUp()

	after, _ := e.Box("volunteer_name")
	assert.Equal(t, before.X+100, after.X)
	assert.Equal(t, before.Y+50, after.Y)
}

func TestOnChangeFiresSynchronouslyWithFullConfig(t *testing.T) {
	var calls []TextBoxConfig
	e := NewEditor(1000, 800, func(cfg TextBoxConfig) {
		calls = append(calls, cfg)
	})

	e.AddField("volunteer_name")
	require.Len(t, calls, 1)

	e.PointerDown("volunteer_name", 60, 60)
	e.PointerMove(70, 70)
	require.Len(t, calls, 2, "every move must notify")
	e.PointerMove(80, 80)
	require.Len(t, calls, 3)
	e.PointerUp()

	last := calls[len(calls)-1]
	box, ok := last["volunteer_name"]
	require.True(t, ok, "callback must carry the full configuration")
	got, _ := e.Box("volunteer_name")
	assert.Equal(t, got, box)
}

func TestSetBoxAppliesFormEditWithSameRules(t *testing.T) {
	e := newTestEditor(nil)

	e.SetBox("volunteer_name", TextBox{X: -10, Y: -10, Width: 50, Height: 10, FontSize: 32, FontFamily: "Times", Color: "#ff0000", Alignment: "left"})

	box, _ := e.Box("volunteer_name")
	assert.Equal(t, 0.0, box.X)
	assert.Equal(t, 0.0, box.Y)
	assert.Equal(t, MinBoxWidth, box.Width)
	assert.Equal(t, MinBoxHeight, box.Height)
	assert.Equal(t, 32.0, box.FontSize)
	assert.Equal(t, "left", box.Alignment)
}

func TestRemoveFieldClearsActivation(t *testing.T) {
	e := newTestEditor(nil)
	e.RemoveField("volunteer_name")

	_, ok := e.Box("volunteer_name")
	assert.False(t, ok)
	assert.Empty(t, e.ActiveField())
}
