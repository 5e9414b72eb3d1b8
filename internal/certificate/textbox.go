package certificate

// The text-box editor backs the template wizard: the operator drags and
// resizes named boxes over the template image to decide where generated text
// lands. All stored coordinates live in the image's natural pixel space; the
// editor converts from the displayed size on every pointer event.

// Minimum box dimensions keep a box visible and grabbable.
const (
	MinBoxWidth  = 100.0
	MinBoxHeight = 30.0
)

// resizeHotzone is the side length, in display pixels, of the square at a
// box's bottom-right corner that starts a resize instead of a drag.
const resizeHotzone = 16.0

// TextBox is one named placement rectangle, in natural pixel coordinates.
type TextBox struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	FontSize   float64 `json:"fontSize"`
	FontFamily string  `json:"fontFamily"`
	Color      string  `json:"color"`
	Alignment  string  `json:"alignment"`
}

// TextBoxConfig maps field name (e.g. "volunteer_name") to its box.
type TextBoxConfig map[string]TextBox

// DefaultBox is the box created when a field is first placed on the image.
func DefaultBox() TextBox {
	return TextBox{
		X:          50,
		Y:          50,
		Width:      300,
		Height:     60,
		FontSize:   28,
		FontFamily: "Arial",
		Color:      "#000000",
		Alignment:  "center",
	}
}

type editOp int

const (
	opNone editOp = iota
	opDrag
	opResize
)

// Editor is the drag/resize state machine. It is not safe for concurrent
// use; UI events arrive sequentially.
type Editor struct {
	imageW, imageH     float64
	displayW, displayH float64

	boxes  map[string]TextBox
	active string

	op      editOp
	startX  float64 // pointer-down position, natural px
	startY  float64
	origBox TextBox

	onChange func(TextBoxConfig)
}

// NewEditor creates an editor for a template image of the given natural
// dimensions. onChange is invoked synchronously with the full configuration
// after every mutation, so the caller always holds a live copy.
func NewEditor(imageW, imageH float64, onChange func(TextBoxConfig)) *Editor {
	return &Editor{
		imageW:   imageW,
		imageH:   imageH,
		displayW: imageW,
		displayH: imageH,
		boxes:    make(map[string]TextBox),
		onChange: onChange,
	}
}

// SetDisplaySize records the rendered size of the image container. Pointer
// coordinates are scaled by natural/display before any geometry is applied.
func (e *Editor) SetDisplaySize(w, h float64) {
	if w > 0 {
		e.displayW = w
	}
	if h > 0 {
		e.displayH = h
	}
}

func (e *Editor) scaleX() float64 { return e.imageW / e.displayW }
func (e *Editor) scaleY() float64 { return e.imageH / e.displayH }

// AddField places a new box for the field, clamped into the image, and makes
// it active.
func (e *Editor) AddField(field string) {
	if _, exists := e.boxes[field]; exists {
		e.active = field
		return
	}
	box := DefaultBox()
	e.boxes[field] = e.clampIntoImage(box)
	e.active = field
	e.notify()
}

// RemoveField deletes a field's box.
func (e *Editor) RemoveField(field string) {
	if _, exists := e.boxes[field]; !exists {
		return
	}
	delete(e.boxes, field)
	if e.active == field {
		e.active = ""
	}
	e.notify()
}

// ActiveField returns the currently active field, or "".
func (e *Editor) ActiveField() string {
	return e.active
}

// Config returns a copy of the full configuration.
func (e *Editor) Config() TextBoxConfig {
	out := make(TextBoxConfig, len(e.boxes))
	for k, v := range e.boxes {
		out[k] = v
	}
	return out
}

// Box returns the named box.
func (e *Editor) Box(field string) (TextBox, bool) {
	b, ok := e.boxes[field]
	return b, ok
}

// PointerDown handles a pointer press at display coordinates over the named
// box. Pressing a box while another is active only switches activation; the
// press must be repeated to start a drag or resize. Pressing the active box
// starts a drag inside the body or a resize inside the bottom-right hotzone.
func (e *Editor) PointerDown(field string, displayX, displayY float64) {
	box, ok := e.boxes[field]
	if !ok {
		return
	}

	if e.active != "" && e.active != field {
		e.active = field
		e.op = opNone
		return
	}
	e.active = field

	x := displayX * e.scaleX()
	y := displayY * e.scaleY()

	e.startX = x
	e.startY = y
	e.origBox = box

	if e.inResizeHotzone(box, displayX, displayY) {
		e.op = opResize
	} else {
		e.op = opDrag
	}
}

// inResizeHotzone tests display coordinates against the fixed-size corner
// square. The hotzone is defined in display pixels so it stays a constant
// grab target regardless of zoom.
func (e *Editor) inResizeHotzone(box TextBox, displayX, displayY float64) bool {
	cornerX := (box.X + box.Width) / e.scaleX()
	cornerY := (box.Y + box.Height) / e.scaleY()
	return displayX >= cornerX-resizeHotzone && displayX <= cornerX &&
		displayY >= cornerY-resizeHotzone && displayY <= cornerY
}

// PointerMove updates the active operation with the pointer's new display
// position.
func (e *Editor) PointerMove(displayX, displayY float64) {
	if e.op == opNone || e.active == "" {
		return
	}

	x := displayX * e.scaleX()
	y := displayY * e.scaleY()
	dx := x - e.startX
	dy := y - e.startY

	box := e.boxes[e.active]

	switch e.op {
	case opDrag:
		box.X = e.origBox.X + dx
		box.Y = e.origBox.Y + dy
		box = e.clampPosition(box)
	case opResize:
		// Resize grows freely past the image edge; only the minimums hold.
		box.Width = e.origBox.Width + dx
		box.Height = e.origBox.Height + dy
		if box.Width < MinBoxWidth {
			box.Width = MinBoxWidth
		}
		if box.Height < MinBoxHeight {
			box.Height = MinBoxHeight
		}
	}

	e.boxes[e.active] = box
	e.notify()
}

// PointerUp ends the current operation.
func (e *Editor) PointerUp() {
	e.op = opNone
}

// PointerLeave ends the current operation, same as PointerUp.
func (e *Editor) PointerLeave() {
	e.op = opNone
}

// SetBox applies a direct form edit to the named box. The same geometry
// rules hold as for pointer edits: minimum size, position clamped into the
// image.
func (e *Editor) SetBox(field string, box TextBox) {
	if _, ok := e.boxes[field]; !ok {
		return
	}
	if box.Width < MinBoxWidth {
		box.Width = MinBoxWidth
	}
	if box.Height < MinBoxHeight {
		box.Height = MinBoxHeight
	}
	e.boxes[field] = e.clampPosition(box)
	e.notify()
}

// clampPosition keeps the box fully inside the image without touching its
// size.
func (e *Editor) clampPosition(box TextBox) TextBox {
	if box.X < 0 {
		box.X = 0
	}
	if box.Y < 0 {
		box.Y = 0
	}
	if box.X+box.Width > e.imageW {
		box.X = e.imageW - box.Width
	}
	if box.Y+box.Height > e.imageH {
		box.Y = e.imageH - box.Height
	}
	// A box wider or taller than the image pins to the origin.
	if box.X < 0 {
		box.X = 0
	}
	if box.Y < 0 {
		box.Y = 0
	}
	return box
}

// clampIntoImage shrinks oversized defaults and clamps position, used when a
// box is first placed.
func (e *Editor) clampIntoImage(box TextBox) TextBox {
	if box.Width > e.imageW {
		box.Width = e.imageW
	}
	if box.Height > e.imageH {
		box.Height = e.imageH
	}
	return e.clampPosition(box)
}

func (e *Editor) notify() {
	if e.onChange != nil {
		e.onChange(e.Config())
	}
}
