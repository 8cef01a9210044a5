package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"disco/hal"
	"disco/lcd"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// showPanic logs v with the stack and paints it on the panel, black on white.
func showPanic(log hal.Logger, panel lcd.DrawTarget, v any) {
	stack := debug.Stack()
	if log != nil {
		log.WriteLineString(fmt.Sprintf("disco panic: %v", v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			log.WriteLineString(line)
		}
	}
	if panel == nil {
		return
	}

	panel.Clear(lcd.White)

	font := &proggy.TinySZ8pt7b
	fontHeight := int16(font.GetYAdvance())
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || fontHeight <= 0 {
		return
	}

	lines := []string{
		"disco panic:",
		fmt.Sprintf("%v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	d := lcd.NewDisplayer(panel)
	maxW, maxH := d.Size()
	cols := maxW / fontWidth
	if cols <= 0 {
		cols = 1
	}
	fg := lcd.Black.RGBA8()

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > maxH {
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, fontHeight, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func drawTextLine(
	d *lcd.Displayer,
	font tinyfont.Fonter,
	fontWidth, baseline int16,
	x0, y0 int16,
	s string,
	fg color.RGBA,
) {
	x := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, x, y0+baseline-2, r, fg)
		x += fontWidth
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
