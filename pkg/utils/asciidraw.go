package utils

import (
	"fmt"
	"strings"
)

// One contiguous field within an AsciiFrame diagram
type AsciiFrameField struct {
	// Name of the field
	Name string

	// Units within the frame the field begins from
	Begin int

	// Field width
	Width int
}

// The last unit within the frame used by this field
func (f *AsciiFrameField) TopUnit() int {
	return f.PastTopUnit() - 1
}

// The first unit within the frame used by the next field
func (f *AsciiFrameField) PastTopUnit() int {
	return f.Begin + f.Width
}

// Writes text centered within width characters, padding both sides with filler
func centerIn(builder *strings.Builder, text string, filler string, width int) {
	left := (width - len(text)) / 2
	right := width - len(text) - left

	builder.WriteString(strings.Repeat(filler, left))
	builder.WriteString(text)
	builder.WriteString(strings.Repeat(filler, right))
}

// Inserts "(unused)" filler fields wherever the given fields (sorted by
// position, non overlapping) leave holes in the frame
func fillFrameGaps(fields []AsciiFrameField, frameWidth int) []AsciiFrameField {
	result := make([]AsciiFrameField, 0, len(fields))
	currentUnit := 0

	for _, field := range fields {
		if field.Begin > currentUnit {
			result = append(result, AsciiFrameField{
				Name:  "(unused)",
				Begin: currentUnit,
				Width: field.Begin - currentUnit,
			})
		} else if field.Begin < currentUnit {
			panic("make sure fields are sorted by position and are not overlapping")
		}

		result = append(result, field)

		currentUnit = field.PastTopUnit()
	}

	if currentUnit < frameWidth {
		result = append(result, AsciiFrameField{
			Name:  "(unused)",
			Begin: currentUnit,
			Width: frameWidth - currentUnit,
		})
	}

	return result
}

// Prints an ascii diagram of a binary frame composed of contiguous fields of
// different unit lengths. Units decrease left to right, so the most
// significant field comes first, the way hardware manuals draw encodings.
func AsciiFrame(fields []AsciiFrameField, frameWidth int, unit string, leftpad int) string {
	all := fillFrameGaps(fields, frameWidth)

	type cell struct {
		index string
		name  string
		width string
		size  int
	}

	cells := make([]cell, len(all))

	// Input fields are sorted least significant first, the diagram shows them reversed
	for i := range cells {
		field := &all[len(all)-i-1]
		c := &cells[i]

		c.index = fmt.Sprint(field.TopUnit())
		c.name = fmt.Sprintf(" %v ", field.Name)
		c.width = fmt.Sprintf(" %v %v ", field.Width, unit)
		c.size = Max([]int{len(c.index), len(c.name), len(c.width) + 4})
	}

	pad := strings.Repeat(" ", leftpad)

	var indices, border, body, widths strings.Builder

	for _, builder := range []*strings.Builder{&indices, &border, &body, &widths} {
		builder.WriteString(pad)
	}

	for _, c := range cells {
		indices.WriteString(c.index)
		indices.WriteString(strings.Repeat(" ", c.size-len(c.index)+1))
		border.WriteString("+")
		border.WriteString(strings.Repeat("-", c.size))
		body.WriteString("|")
		centerIn(&body, c.name, " ", c.size)
		widths.WriteString(" <-")
		centerIn(&widths, c.width, "-", c.size-4)
		widths.WriteString("->")
	}

	indices.WriteString("0")
	border.WriteString("+")
	body.WriteString("|")
	widths.WriteString(" ")

	rows := []string{
		indices.String(),
		border.String(),
		body.String(),
		border.String(),
		widths.String(),
	}

	return strings.Join(rows, "\n") + "\n"
}
