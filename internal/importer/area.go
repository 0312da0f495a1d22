package importer

import (
	"log"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"

	"github.com/co2atlas/atlas-backend/internal/geo"
	"github.com/co2atlas/atlas-backend/internal/sources"
)

// AreaBounds is the combined bounding box of every boundary feature,
// widened progressively as boundary sources are read. When no boundary
// source could be loaded the bounds stay unset and every check passes:
// importing everything beats importing nothing.
type AreaBounds struct {
	bound orb.Bound
	set   bool
}

// Set reports whether any boundary geometry contributed to the bounds.
func (b *AreaBounds) Set() bool { return b.set }

// Bound returns the combined box; only meaningful when Set is true.
func (b *AreaBounds) Bound() orb.Bound { return b.bound }

// Extend widens the bounds to cover g.
func (b *AreaBounds) Extend(g orb.Geometry) {
	if g == nil {
		return
	}
	gb := g.Bound()
	if !b.set {
		b.bound = gb
		b.set = true
		return
	}
	b.bound = b.bound.Union(gb)
}

// Contains reports whether the point lies inside the combined box,
// inclusive of the edges. Unset bounds contain everything.
func (b *AreaBounds) Contains(lon, lat float64) bool {
	if !b.set {
		return true
	}
	return b.bound.Contains(orb.Point{lon, lat})
}

// Intersects reports whether g's bounding box overlaps the combined box.
// Unset bounds or a nil geometry intersect everything.
func (b *AreaBounds) Intersects(g orb.Geometry) bool {
	if !b.set || g == nil {
		return true
	}
	return b.bound.Intersects(g.Bound())
}

// LoadAreaBounds reads the boundary shapefiles, reprojects each feature,
// and accumulates the combined bounding box. Missing or unreadable files
// are logged and skipped.
func LoadAreaBounds(dataDir string, files []string, trans *geo.Transformer) *AreaBounds {
	bounds := &AreaBounds{}
	for _, rel := range files {
		path := filepath.Join(dataDir, rel)
		if _, err := os.Stat(path); err != nil {
			log.Printf("[area] boundary source %s not found, skipping", rel)
			continue
		}
		feats, err := sources.ReadShapefile(path)
		if err != nil {
			log.Printf("[area] read %s: %v", rel, err)
			continue
		}
		for _, f := range feats {
			g := trans.Geometry(f.Geometry)
			if !geo.IsValidWGS84(g) {
				continue
			}
			bounds.Extend(g)
		}
	}
	if bounds.Set() {
		b := bounds.Bound()
		log.Printf("[area] bounds lon %.4f..%.4f lat %.4f..%.4f",
			b.Min[0], b.Max[0], b.Min[1], b.Max[1])
	} else {
		log.Printf("[area] no boundary data found; area filter disabled")
	}
	return bounds
}
