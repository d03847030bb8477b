// SPDX-License-Identifier: MIT

package extract

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/aislenav/geometry"
)

// Decode classifies a raw entity by the coordinate shape it carries.
//
// Shapes are probed in this order:
//  1. "type" LWPOLYLINE or POLYLINE with "vertices": Polyline ("closed" or "shape" flag).
//  2. "start" + "end": Line.
//  3. "startPoint" + "endPoint": PointPairLine.
//  4. "vertices" with at least two points: VertexLine.
//  5. "x", "y", "x1", "y1": CoordLine.
//
// A shape whose keys are present but whose values are not finite numbers
// yields ErrNonNumeric. No matching shape yields ErrUnrecognizedShape.
func Decode(raw map[string]any) (Entity, error) {
	if raw == nil {
		return nil, ErrUnrecognizedShape
	}

	kind, _ := raw["type"].(string)
	if vs, ok := raw["vertices"]; ok && isPolylineType(kind) {
		pts, err := decodeVertices(vs)
		if err != nil {
			return nil, err
		}

		return Polyline{Vertices: pts, Closed: truthy(raw["closed"]) || truthy(raw["shape"])}, nil
	}

	if s, e, ok := pair(raw, "start", "end"); ok {
		a, b, err := decodePair(s, e)
		if err != nil {
			return nil, err
		}

		return Line{Start: a, End: b}, nil
	}

	if s, e, ok := pair(raw, "startPoint", "endPoint"); ok {
		a, b, err := decodePair(s, e)
		if err != nil {
			return nil, err
		}

		return PointPairLine{Start: a, End: b}, nil
	}

	if vs, ok := raw["vertices"]; ok {
		pts, err := decodeVertices(vs)
		if err != nil {
			return nil, err
		}

		return VertexLine{Vertices: pts[:2]}, nil
	}

	if hasAll(raw, "x", "y", "x1", "y1") {
		var c CoordLine
		var err error
		if c.X, err = number(raw["x"]); err != nil {
			return nil, err
		}
		if c.Y, err = number(raw["y"]); err != nil {
			return nil, err
		}
		if c.X1, err = number(raw["x1"]); err != nil {
			return nil, err
		}
		if c.Y1, err = number(raw["y1"]); err != nil {
			return nil, err
		}

		return c, nil
	}

	return nil, ErrUnrecognizedShape
}

// DecodeAll decodes every raw entity, collecting failures as Skips instead
// of aborting.
func DecodeAll(raws []map[string]any) ([]Entity, []Skip) {
	out := make([]Entity, 0, len(raws))
	var skipped []Skip
	for i, raw := range raws {
		e, err := Decode(raw)
		if err != nil {
			skipped = append(skipped, Skip{Index: i, Err: err})
			continue
		}
		out = append(out, e)
	}

	return out, skipped
}

func isPolylineType(kind string) bool {
	switch strings.ToUpper(kind) {
	case "LWPOLYLINE", "POLYLINE":
		return true
	default:
		return false
	}
}

func pair(raw map[string]any, a, b string) (any, any, bool) {
	va, okA := raw[a]
	vb, okB := raw[b]
	if !okA || !okB || va == nil || vb == nil {
		return nil, nil, false
	}

	return va, vb, true
}

func hasAll(raw map[string]any, keys ...string) bool {
	for _, k := range keys {
		if v, ok := raw[k]; !ok || v == nil {
			return false
		}
	}

	return true
}

func decodePair(s, e any) (geometry.Point2D, geometry.Point2D, error) {
	a, err := point(s)
	if err != nil {
		return geometry.Point2D{}, geometry.Point2D{}, err
	}
	b, err := point(e)
	if err != nil {
		return geometry.Point2D{}, geometry.Point2D{}, err
	}

	return a, b, nil
}

func decodeVertices(v any) ([]geometry.Point2D, error) {
	var items []any
	switch vs := v.(type) {
	case []any:
		items = vs
	case []map[string]any:
		items = make([]any, len(vs))
		for i := range vs {
			items[i] = vs[i]
		}
	case []geometry.Point2D:
		if len(vs) < 2 {
			return nil, ErrTooFewVertices
		}
		for _, p := range vs {
			if !p.Finite() {
				return nil, ErrNonNumeric
			}
		}

		return append([]geometry.Point2D(nil), vs...), nil
	default:
		return nil, fmt.Errorf("%w: vertices of type %T", ErrNonNumeric, v)
	}

	if len(items) < 2 {
		return nil, ErrTooFewVertices
	}
	pts := make([]geometry.Point2D, len(items))
	for i, it := range items {
		p, err := point(it)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		pts[i] = p
	}

	return pts, nil
}

func point(v any) (geometry.Point2D, error) {
	switch p := v.(type) {
	case geometry.Point2D:
		if !p.Finite() {
			return geometry.Point2D{}, ErrNonNumeric
		}

		return p, nil
	case map[string]any:
		x, err := number(p["x"])
		if err != nil {
			return geometry.Point2D{}, err
		}
		y, err := number(p["y"])
		if err != nil {
			return geometry.Point2D{}, err
		}

		return geometry.Point2D{X: x, Y: y}, nil
	default:
		return geometry.Point2D{}, fmt.Errorf("%w: point of type %T", ErrNonNumeric, v)
	}
}

func number(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	case json.Number:
		var err error
		if f, err = n.Float64(); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNonNumeric, n.String())
		}
	default:
		return 0, fmt.Errorf("%w: %T", ErrNonNumeric, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNonNumeric
	}

	return f, nil
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case int:
		return b != 0
	default:
		return false
	}
}
