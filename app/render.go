package app

import (
	"fmt"
	"time"

	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"wattmeter/drivers/ina219"
	"wattmeter/drivers/max17048"
	"wattmeter/gfx"
	"wattmeter/hal"
	"wattmeter/input"
)

// displayMode selects which channel of a power reading fills the screen.
// Mode changes clamp at the ends; calibration cycling wraps instead.
type displayMode uint8

const (
	modeVoltage displayMode = iota
	modeCurrent
	modePower
)

func (m displayMode) next() displayMode {
	if m < modePower {
		return m + 1
	}
	return m
}

func (m displayMode) prev() displayMode {
	if m > modeVoltage {
		return m - 1
	}
	return m
}

// unit returns the two-cell unit suffix for the mode; voltage is padded
// so the unit column keeps a constant width across modes.
func (m displayMode) unit() string {
	switch m {
	case modeCurrent:
		return "mA"
	case modePower:
		return "mW"
	default:
		return "V "
	}
}

// formatReading renders the selected channel as a fixed-width numeric
// field. A dead load (zero current) shows zero on every channel so the
// bus voltage reading of an open circuit is not mistaken for a live one.
func formatReading(m displayMode, r ina219.Reading) string {
	switch m {
	case modeCurrent:
		return fmt.Sprintf("%6.1f", r.Current)
	case modePower:
		p := r.Power
		if r.Current == 0 {
			p = 0
		}
		return fmt.Sprintf("%6.1f", p)
	default:
		v := r.Voltage
		if r.Current == 0 {
			v = 0
		}
		return fmt.Sprintf("%6.3f", v)
	}
}

// renderLoop is the sole writer to the display. It consumes events,
// reformats the readout, and pushes pixels only when the text changed.
type renderLoop struct {
	d     *gfx.Display
	theme *gfx.Theme
	calib *input.Signal
	log   hal.Logger

	width  int16
	height int16

	readout gfx.TextStyle
	caption gfx.TextStyle
	small   gfx.TextStyle

	cal     ina219.Calibration
	mode    displayMode
	reading ina219.Reading
	last    string
}

func newRenderLoop(d *gfx.Display, theme *gfx.Theme, calib *input.Signal, log hal.Logger) *renderLoop {
	w, h := d.Size()
	return &renderLoop{
		d:       d,
		theme:   theme,
		calib:   calib,
		log:     log,
		width:   w,
		height:  h,
		readout: gfx.NewTextStyle(&freemono.Bold24pt7b, theme.TextPrimary, 56, 40),
		caption: gfx.NewTextStyle(&freemono.Bold12pt7b, theme.TextPrimary, 30, 21),
		small:   gfx.NewTextStyle(&proggy.TinySZ8pt7b, theme.TextPrimary, 12, 9),
	}
}

// boot paints the battery splash (when a fuel gauge answered) and, when
// the power sensor is missing, the permanent fallback notice.
func (l *renderLoop) boot(gauge *max17048.Device, hasPower bool, hold time.Duration) {
	_ = l.d.FillScreen(l.theme.ScreenBackground)

	if gauge != nil {
		text := "battery ?"
		if v, err := gauge.CellVoltage(); err != nil {
			l.log.WriteLineString(fmt.Sprintf("render: cell voltage: %v", err))
		} else if pct, err := gauge.ChargePercent(); err != nil {
			l.log.WriteLineString(fmt.Sprintf("render: charge percent: %v", err))
		} else {
			text = fmt.Sprintf("%.2fV  %.0f%%", v, pct)
		}
		card := gfx.NewProgress(batteryGlyph(l.theme.TextPrimary), text,
			0, 0, l.width, l.height, l.theme.ScreenBackground, l.caption)
		if err := card.Draw(l.d); err != nil {
			l.log.WriteLineString(fmt.Sprintf("render: splash: %v", err))
		}
		if rate, err := gauge.ChargeRate(); err == nil {
			s := fmt.Sprintf("%+.1f%%/hr", rate)
			gfx.WriteText(l.d, (l.width-l.small.TextWidth(s))/2,
				l.height-l.small.LineHeight-2, l.small, s)
		}
		_ = l.d.Display()
		time.Sleep(hold)
		_ = l.d.FillScreen(l.theme.ScreenBackground)
	}

	if !hasPower {
		msg := "No INA219 found"
		x := (l.width - l.caption.TextWidth(msg)) / 2
		y := (l.height - l.caption.LineHeight) / 2
		lbl := gfx.NewLabel(msg, x, y, l.caption.TextWidth(msg), l.theme.ScreenBackground, l.caption)
		if err := lbl.Draw(l.d); err != nil {
			l.log.WriteLineString(fmt.Sprintf("render: fallback: %v", err))
		}
	}
	_ = l.d.Display()
}

func (l *renderLoop) run(events <-chan input.Event) {
	for ev := range events {
		if err := l.handle(ev); err != nil {
			l.log.WriteLineString(fmt.Sprintf("render: %v", err))
		}
	}
}

func (l *renderLoop) handle(ev input.Event) error {
	if ev.Button >= 0 {
		switch ev.Button {
		case 0:
			l.cal = l.cal.Next()
			l.calib.Set(l.cal)
			ev.Msg = l.cal.String()
			// The scale changed, so the cached text is stale.
			l.last = ""
		case 1:
			l.mode = l.mode.prev()
		case 2:
			l.mode = l.mode.next()
		}
	} else {
		l.reading = ev.Power
	}

	if ev.Msg != "" {
		return l.drawStatus(ev.Msg)
	}
	// Mode changes repaint from the last snapshot instead of waiting a
	// full poll interval.
	return l.drawReadout(l.reading)
}

// drawStatus paints a transient full-screen notice. The next power event
// repaints over it. Draw errors here are logged, not surfaced.
func (l *renderLoop) drawStatus(msg string) error {
	if err := l.d.FillScreen(l.theme.ScreenBackground); err != nil {
		l.log.WriteLineString(fmt.Sprintf("render: status: %v", err))
		return nil
	}
	x := (l.width - l.caption.TextWidth(msg)) / 2
	y := (l.height - l.caption.LineHeight) / 2
	gfx.WriteText(l.d, x, y, l.caption, msg)
	if err := l.d.Display(); err != nil {
		l.log.WriteLineString(fmt.Sprintf("render: status: %v", err))
	}
	l.last = ""
	return nil
}

// drawReadout paints the numeric field and unit, skipping the frame
// entirely when the formatted text has not changed.
func (l *renderLoop) drawReadout(r ina219.Reading) error {
	text := formatReading(l.mode, r)
	unit := l.mode.unit()
	// The unit joins the diff key so a mode switch repaints even when the
	// numeric field happens to match.
	key := unit + text
	if key == l.last {
		return nil
	}

	unitW := l.caption.TextWidth("mW")
	fieldW := l.width - unitW

	y := (l.height - l.readout.LineHeight) / 2
	if err := gfx.WriteTextWithBackground(l.d, 0, y, l.readout, text,
		l.theme.ScreenBackground, fieldW); err != nil {
		return fmt.Errorf("render: readout: %w", err)
	}
	unitY := y + l.readout.LineHeight - l.caption.LineHeight
	if err := gfx.WriteTextWithBackground(l.d, fieldW, unitY, l.caption, unit,
		l.theme.ScreenBackground, unitW); err != nil {
		return fmt.Errorf("render: unit: %w", err)
	}
	if err := l.d.Display(); err != nil {
		return fmt.Errorf("render: present: %w", err)
	}
	l.last = key
	return nil
}
