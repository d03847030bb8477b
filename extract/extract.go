// SPDX-License-Identifier: MIT

package extract

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"github.com/katalvlaran/aislenav/geometry"
)

// Options configures Extract.
type Options struct {
	// SimplifyTolerance enables Douglas–Peucker reduction of polyline
	// chains when > 0. Units are source geometry units.
	SimplifyTolerance float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns extraction without simplification.
func DefaultOptions() Options {
	return Options{}
}

// WithSimplify reduces polyline vertex chains with the given tolerance
// before they are split into segments. Non-positive values disable it.
func WithSimplify(tolerance float64) Option {
	return func(o *Options) {
		o.SimplifyTolerance = tolerance
	}
}

// Extract flattens decoded entities into line segments and accumulates the
// bounding box over every accepted endpoint.
func Extract(entities []Entity, opts ...Option) Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{TypeCounts: make(map[Kind]int)}
	for _, e := range entities {
		if e == nil {
			continue
		}
		if pl, ok := e.(Polyline); ok && o.SimplifyTolerance > 0 {
			e = simplifyPolyline(pl, o.SimplifyTolerance)
		}
		segs := e.segments()
		if len(segs) == 0 {
			continue
		}
		res.TypeCounts[e.Kind()]++
		for _, s := range segs {
			res.Segments = append(res.Segments, s)
			res.Bounds = res.Bounds.ExtendSegment(s)
		}
	}

	return res
}

// ExtractRaw decodes and extracts in one pass. Undecodable entities are
// reported in Result.Skipped with their input index.
func ExtractRaw(raws []map[string]any, opts ...Option) Result {
	entities, skipped := DecodeAll(raws)
	res := Extract(entities, opts...)
	res.Skipped = skipped

	return res
}

// simplifyPolyline runs Douglas–Peucker over the chain. A closed ring keeps
// its first vertex so the closing segment is unchanged.
func simplifyPolyline(pl Polyline, tolerance float64) Polyline {
	if len(pl.Vertices) < 3 {
		return pl
	}
	ls := make(orb.LineString, len(pl.Vertices))
	for i, v := range pl.Vertices {
		ls[i] = v.Orb()
	}

	s := simplify.DouglasPeucker(tolerance).Simplify(ls.Clone())
	reduced, ok := s.(orb.LineString)
	if !ok || len(reduced) < 2 {
		return pl
	}

	out := Polyline{Vertices: make([]geometry.Point2D, len(reduced)), Closed: pl.Closed}
	for i, p := range reduced {
		out.Vertices[i] = geometry.Point2D{X: p.X(), Y: p.Y()}
	}

	return out
}
