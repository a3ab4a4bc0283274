// Package config loads patrol routes: the ordered waypoints and the idle
// duration a PatrolController is built from.
package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/patrol/engine/util"
	"github.com/pkg/errors"
)

const DefaultIdleDuration = 2.0

type Route struct {
	Name         string
	IdleDuration float64
	Waypoints    []mgl32.Vec3
}

// Validate rejects values the controller would have to guess about. An empty
// waypoint list is allowed; the controller reports it and stays idle.
func (r Route) Validate() error {
	if math.IsNaN(r.IdleDuration) || math.IsInf(r.IdleDuration, 0) {
		return errors.Errorf("config: route %q: idle duration must be finite", r.Name)
	}
	if r.IdleDuration < 0 {
		return errors.Errorf("config: route %q: idle duration %.2f is negative", r.Name, r.IdleDuration)
	}
	return nil
}

// Load picks the decoder from the file extension.
func Load(filename string) (Route, error) {
	var route Route
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		route, err = LoadYAML(filename)
	case ".nbt":
		route, err = LoadNBT(filename)
	case ".gltf", ".glb":
		route, err = LoadGLTF(filename, DefaultWaypointPrefix)
	default:
		return Route{}, errors.Errorf("config: %s: unsupported route format %q", filename, ext)
	}
	if err != nil {
		return Route{}, err
	}
	if route.Name == "" {
		route.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	util.LogConfigInfo(fmt.Sprintf("[config] Loaded route '%s' from %s (%d waypoints, idle %.2fs)", route.Name, filename, len(route.Waypoints), route.IdleDuration))
	return route, nil
}

func IsRouteFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".nbt", ".gltf", ".glb":
		return true
	}
	return false
}
