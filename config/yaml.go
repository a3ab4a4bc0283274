package config

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type RouteSpec struct {
	Name         string      `yaml:"name"`
	IdleDuration *float64    `yaml:"idle_duration"`
	Waypoints    [][]float32 `yaml:"waypoints"`
}

func LoadYAML(filename string) (Route, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Route{}, errors.Wrapf(err, "config: load %s", filename)
	}
	route, err := ParseYAML(data)
	if err != nil {
		return Route{}, errors.Wrapf(err, "config: parse %s", filename)
	}
	return route, nil
}

func ParseYAML(data []byte) (Route, error) {
	var spec RouteSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Route{}, errors.Wrap(err, "unmarshal route")
	}
	return spec.Route()
}

func (s RouteSpec) Route() (Route, error) {
	route := Route{
		Name:         s.Name,
		IdleDuration: DefaultIdleDuration,
		Waypoints:    make([]mgl32.Vec3, 0, len(s.Waypoints)),
	}
	if s.IdleDuration != nil {
		route.IdleDuration = *s.IdleDuration
	}
	for i, wp := range s.Waypoints {
		if len(wp) != 3 {
			return Route{}, errors.Errorf("waypoint %d: expected [x, y, z], got %d values", i, len(wp))
		}
		route.Waypoints = append(route.Waypoints, mgl32.Vec3{wp[0], wp[1], wp[2]})
	}
	if err := route.Validate(); err != nil {
		return Route{}, err
	}
	return route, nil
}
