package gfx

import "image/color"

// ListItem is one row of a List. Items supply their own height and text
// style so mixed-size lists work.
type ListItem interface {
	Text() string
	Height() int16
	Style() TextStyle
}

const scrollbarWidth = 20

// List is a scrollable selection widget with a virtual window: only the
// rows inside [windowStart, windowStart+visibleLines) are ever drawn.
//
// Invariants maintained by every mutation:
//
//	0 <= selected < len(items)   (0 when empty)
//	windowStart <= selected <= windowStart+visibleLines-1
type List struct {
	items []ListItem
	x, y  int16
	w, h  int16

	selected     int
	visibleLines int
	windowStart  int

	highlight  color.RGBA
	background color.RGBA
}

// NewList clones the item slice and computes the window size from the
// viewport height and the first item's height. An empty list gets one
// visible line to keep the geometry sane.
func NewList(items []ListItem, x, y, w, h int16, theme *Theme) *List {
	visible := 1
	if len(items) > 0 {
		if ih := items[0].Height(); ih > 0 {
			visible = int(h / ih)
			if visible < 1 {
				visible = 1
			}
		}
	}
	return &List{
		items:        append([]ListItem(nil), items...),
		x:            x,
		y:            y,
		w:            w,
		h:            h,
		visibleLines: visible,
		highlight:    theme.Highlight,
		background:   theme.ScreenBackground,
	}
}

func (l *List) showScrollbar() bool {
	return len(l.items) > l.visibleLines
}

func (l *List) windowEnd() int {
	end := l.windowStart + l.visibleLines
	if end > len(l.items) {
		end = len(l.items)
	}
	return end
}

// Draw renders the visible window and, when the list overflows it, the
// scrollbar strip on the right.
func (l *List) Draw(d *Display) error {
	rowWidth := l.w - 10
	if l.showScrollbar() {
		rowWidth = l.w - scrollbarWidth
	}

	rowY := l.y
	for i := l.windowStart; i < l.windowEnd(); i++ {
		item := l.items[i]
		style := item.Style()
		bg := l.background
		if i == l.selected {
			bg = l.highlight
		}
		text := Ellipsize(l.w-scrollbarWidth, item.Text(), style)
		if err := WriteTextWithBackground(d, l.x, rowY, style, text, bg, rowWidth); err != nil {
			return err
		}
		rowY += item.Height()
	}

	if !l.showScrollbar() {
		return nil
	}

	// Proportional fill, not thumb physics: the indicator covers
	// visible/total of the track, offset by windowStart/total.
	track := l.h - 10
	barX := l.x + l.w - scrollbarWidth
	if err := d.FillRectangle(barX, l.y, scrollbarWidth, track, l.highlight); err != nil {
		return err
	}
	indicatorH := int16(int(track) * l.visibleLines / len(l.items))
	indicatorY := l.y + int16(int(track)*l.windowStart/len(l.items))
	return d.FillRectangle(barX, indicatorY, scrollbarWidth, indicatorH, l.background)
}

// ScrollDown moves the selection one row toward the end, sliding the
// window by at most one line, and redraws.
func (l *List) ScrollDown(d *Display) error {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
	if l.selected > l.windowStart+l.visibleLines-1 {
		l.windowStart++
	}
	return l.Draw(d)
}

// ScrollUp is the mirror of ScrollDown.
func (l *List) ScrollUp(d *Display) error {
	if l.selected > 0 {
		l.selected--
	}
	if l.selected < l.windowStart {
		l.windowStart--
	}
	return l.Draw(d)
}

// SelectAt hit-tests a point against the visible rows in window order;
// the first containing row becomes the selection. Returns the resulting
// selected index after redrawing.
func (l *List) SelectAt(d *Display, px, py int16) (int, error) {
	rowY := l.y
	for i := l.windowStart; i < l.windowEnd(); i++ {
		ih := l.items[i].Height()
		if px >= l.x && px < l.x+l.w && py >= rowY && py < rowY+ih {
			l.selected = i
			break
		}
		rowY += ih
	}
	if err := l.Draw(d); err != nil {
		return l.selected, err
	}
	return l.selected, nil
}

// Selected returns the current selection index.
func (l *List) Selected() int { return l.selected }

// SetSelected assigns the selection directly; out-of-bounds indices are
// ignored.
func (l *List) SetSelected(index int) {
	if index >= 0 && index < len(l.items) {
		l.selected = index
	}
}

// VisibleLines reports the window capacity computed at construction.
func (l *List) VisibleLines() int { return l.visibleLines }

// WindowStart reports the first visible row index.
func (l *List) WindowStart() int { return l.windowStart }

// Bounds returns the widget's bounding box.
func (l *List) Bounds() (x, y, w, h int16) {
	return l.x, l.y, l.w, l.h
}
