package territory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"turbo-api/internal/domain/gateway/db"
	"turbo-api/pkg/log"
	"turbo-api/pkg/msg"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var errUnsupportedGeometry = errors.New("boundary is not a polygon or multipolygon")

type boundary struct {
	code    string
	bound   orb.Bound
	polygon orb.MultiPolygon
}

func (b boundary) contains(point orb.Point) bool {
	return b.bound.Contains(point) && planar.MultiPolygonContains(b.polygon, point)
}

// BoundaryResolver finds the territory whose GeoJSON boundary contains a coordinate.
// Boundaries are loaded from the territory gateway on first use and kept until Reload.
type BoundaryResolver struct {
	gateway db.TerritoryGateway

	mu         sync.RWMutex
	loaded     bool
	boundaries []boundary
}

func NewBoundaryResolver(gateway db.TerritoryGateway) *BoundaryResolver {
	return &BoundaryResolver{gateway: gateway}
}

// Resolve returns the territory code for the coordinate, or "" when no boundary contains it.
func (r *BoundaryResolver) Resolve(ctx context.Context, lat, lon float64) (string, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return "", err
	}

	point := orb.Point{lon, lat}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.boundaries {
		if b.contains(point) {
			return b.code, nil
		}
	}
	return "", nil
}

// Reload replaces the cached boundaries with the current territory table.
func (r *BoundaryResolver) Reload(ctx context.Context) error {
	territories, err := r.gateway.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load territory boundaries: %w", err)
	}

	boundaries := make([]boundary, 0, len(territories))
	for _, t := range territories {
		if t.GeoJSON == "" {
			continue
		}
		polygon, err := ParseBoundary([]byte(t.GeoJSON))
		if err != nil {
			log.Warn(msg.GetMessage("territory.boundary_invalid", t.Code, err), zap.String("territory", t.Name))
			continue
		}
		boundaries = append(boundaries, boundary{code: t.Code, bound: polygon.Bound(), polygon: polygon})
	}

	r.mu.Lock()
	r.boundaries = boundaries
	r.loaded = true
	r.mu.Unlock()

	log.Info(msg.GetMessage("territory.loaded", len(boundaries)))
	return nil
}

func (r *BoundaryResolver) ensureLoaded(ctx context.Context) error {
	r.mu.RLock()
	loaded := r.loaded
	r.mu.RUnlock()
	if loaded {
		return nil
	}
	return r.Reload(ctx)
}

// ParseBoundary reads a GeoJSON FeatureCollection, Feature or bare geometry and collects its polygons.
func ParseBoundary(data []byte) (orb.MultiPolygon, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("boundary is not valid JSON")
	}

	var geometries []orb.Geometry
	switch gjson.GetBytes(data, "type").String() {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			geometries = append(geometries, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		geometries = append(geometries, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		geometries = append(geometries, g.Geometry())
	}

	var polygons orb.MultiPolygon
	for _, g := range geometries {
		switch geom := g.(type) {
		case orb.Polygon:
			polygons = append(polygons, geom)
		case orb.MultiPolygon:
			polygons = append(polygons, geom...)
		}
	}
	if len(polygons) == 0 {
		return nil, errUnsupportedGeometry
	}
	return polygons, nil
}
