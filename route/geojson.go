// SPDX-License-Identifier: MIT

package route

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/aislenav/pathfind"
)

// GeoJSON exports the plan as a FeatureCollection: one Point per visited
// stop (property "order") and one LineString per leg built from the
// simplified path. Coordinates are full-resolution grid cells, so a
// downsampled plan is scaled back by 1/ScaleFactor.
func (p *Plan) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	inv := 1.0
	if p.ScaleFactor > 0 {
		inv = 1 / p.ScaleFactor
	}

	for i, s := range p.Order {
		f := geojson.NewFeature(orb.Point{float64(s.X), float64(s.Y)})
		f.Properties["kind"] = "stop"
		f.Properties["id"] = s.ID
		f.Properties["order"] = i
		if s.Start {
			f.Properties["start"] = true
		}
		if s.End {
			f.Properties["end"] = true
		}
		fc.Append(f)
	}
	for i, leg := range p.Legs {
		f := geojson.NewFeature(lineString(leg.Simplified, inv))
		f.Properties["kind"] = "leg"
		f.Properties["index"] = i
		f.Properties["from"] = leg.From
		f.Properties["to"] = leg.To
		f.Properties["distance"] = leg.Distance
		fc.Append(f)
	}

	return fc
}

func lineString(path pathfind.Path, inv float64) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, c := range path {
		ls[i] = orb.Point{float64(c.X) * inv, float64(c.Y) * inv}
	}

	return ls
}
