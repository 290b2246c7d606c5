// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/fitskit/fitsdiff/internal/fits"
)

// Parse builds a container file from its JSON interchange document. The
// document's own source field wins; fallbackSource is used when the
// document does not name itself (e.g. it arrived on stdin).
func Parse(doc []byte, fallbackSource string) (*fits.File, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("container document is not valid JSON")
	}

	root := gjson.ParseBytes(doc)

	source := root.Get("source").String()
	if source == "" {
		source = fallbackSource
	}

	file := &fits.File{Source: source}
	var err error
	root.Get("units").ForEach(func(_, u gjson.Result) bool {
		var unit *fits.Unit
		if unit, err = parseUnit(u); err != nil {
			err = fmt.Errorf("unit %d: %w", len(file.Units), err)
			return false
		}
		file.Units = append(file.Units, unit)
		return true
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("container parsed: source=%s, units=%d", source, len(file.Units))
	return file, nil
}

func parseUnit(u gjson.Result) (*fits.Unit, error) {
	unit := &fits.Unit{
		Name:   u.Get("name").String(),
		Header: fits.NewHeader(),
	}

	u.Get("cards").ForEach(func(_, c gjson.Result) bool {
		unit.Header.Append(c.Get("keyword").String(), decodeScalar(c.Get("value")), c.Get("comment").String())
		return true
	})

	data := u.Get("data")
	if !data.Exists() {
		return unit, nil
	}

	var err error
	switch kind := data.Get("type").String(); kind {
	case "image":
		unit.Image, err = parseImage(data)
	case "table":
		unit.Table, err = parseTable(data)
	case "raw":
		unit.Raw, err = base64.StdEncoding.DecodeString(data.Get("bytes").String())
		if err != nil {
			err = fmt.Errorf("raw data: %w", err)
		}
	default:
		err = fmt.Errorf("unknown data type %q", kind)
	}
	return unit, err
}

func parseImage(data gjson.Result) (*fits.Image, error) {
	im := &fits.Image{}
	for _, d := range data.Get("shape").Array() {
		im.Shape = append(im.Shape, int(d.Int()))
	}

	pixels := data.Get("pixels").Array()
	switch kind := data.Get("kind").String(); kind {
	case "int":
		pix := make(fits.IntPixels, 0, len(pixels))
		for _, p := range pixels {
			pix = append(pix, p.Int())
		}
		im.Pix = pix
	case "float":
		pix := make(fits.FloatPixels, 0, len(pixels))
		for _, p := range pixels {
			pix = append(pix, p.Float())
		}
		im.Pix = pix
	case "complex":
		pix := make(fits.ComplexPixels, 0, len(pixels))
		for _, p := range pixels {
			parts := p.Array()
			if len(parts) != 2 {
				return nil, fmt.Errorf("complex pixel %d is not a [re, im] pair", len(pix))
			}
			pix = append(pix, complex(parts[0].Float(), parts[1].Float()))
		}
		im.Pix = pix
	case "bool":
		pix := make(fits.BoolPixels, 0, len(pixels))
		for _, p := range pixels {
			pix = append(pix, p.Bool())
		}
		im.Pix = pix
	default:
		return nil, fmt.Errorf("unknown image kind %q", kind)
	}

	if want := im.Size(); im.Pix.Len() != want {
		return nil, fmt.Errorf("image has %d pixels, shape wants %d", im.Pix.Len(), want)
	}
	return im, nil
}

func parseTable(data gjson.Result) (*fits.Table, error) {
	var cols []fits.Column
	var cells [][]any

	var err error
	data.Get("columns").ForEach(func(_, c gjson.Result) bool {
		col := fits.Column{
			Name:   c.Get("name").String(),
			Format: c.Get("format").String(),
			Unit:   c.Get("unit").String(),
			Null:   decodeScalar(c.Get("null")),
			Scale:  c.Get("scale").Float(),
			Zero:   c.Get("zero").Float(),
			Disp:   c.Get("disp").String(),
			Dim:    c.Get("dim").String(),
		}
		if col.Name == "" {
			err = fmt.Errorf("column %d has no name", len(cols))
			return false
		}

		var column []any
		c.Get("data").ForEach(func(_, cell gjson.Result) bool {
			column = append(column, decodeCell(cell))
			return true
		})

		cols = append(cols, col)
		cells = append(cells, column)
		return true
	})
	if err != nil {
		return nil, err
	}

	return fits.NewTable(cols, cells)
}

// decodeCell decodes one table cell: a scalar, or a numeric array for
// multi-valued and variable-length cells. Arrays decode as []int64 when all
// elements are integral, []float64 otherwise.
func decodeCell(cell gjson.Result) any {
	if !cell.IsArray() {
		return decodeScalar(cell)
	}

	elems := cell.Array()
	integral := true
	for _, e := range elems {
		if !isIntegral(e) {
			integral = false
			break
		}
	}

	if integral {
		out := make([]int64, 0, len(elems))
		for _, e := range elems {
			out = append(out, e.Int())
		}
		return out
	}
	out := make([]float64, 0, len(elems))
	for _, e := range elems {
		out = append(out, e.Float())
	}
	return out
}

// decodeScalar maps a JSON value onto the model's scalar kinds: string,
// bool, int64 for integral numbers, float64 otherwise, nil for null or
// absent values.
func decodeScalar(v gjson.Result) any {
	switch v.Type {
	case gjson.String:
		return v.String()
	case gjson.True, gjson.False:
		return v.Bool()
	case gjson.Number:
		if isIntegral(v) {
			return v.Int()
		}
		return v.Float()
	default:
		return nil
	}
}

// isIntegral reports whether a JSON number carries no fractional or exponent
// notation, keeping 64-bit integers exact instead of routing them through
// float64.
func isIntegral(v gjson.Result) bool {
	return v.Type == gjson.Number && !strings.ContainsAny(v.Raw, ".eE")
}
