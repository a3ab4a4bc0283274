package config

import (
	"compress/gzip"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// NBTRoute is the gzip compressed NBT layout used by the voxel map tooling.
type NBTRoute struct {
	Name         string        `nbt:"Name"`
	IdleDuration float64       `nbt:"IdleDuration"`
	Waypoints    []NBTWaypoint `nbt:"Waypoints"`
}

type NBTWaypoint struct {
	Pos []float32 `nbt:"Pos"`
}

func LoadNBT(filename string) (Route, error) {
	fileReader, err := os.Open(filename)
	if err != nil {
		return Route{}, errors.Wrapf(err, "config: load %s", filename)
	}
	defer fileReader.Close()

	route, err := DecodeNBT(fileReader)
	if err != nil {
		return Route{}, errors.Wrapf(err, "config: parse %s", filename)
	}
	return route, nil
}

func DecodeNBT(r io.Reader) (Route, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return Route{}, errors.Wrap(err, "open gzip stream")
	}
	defer gzipReader.Close()

	value := NBTRoute{IdleDuration: DefaultIdleDuration}
	if _, err := nbt.NewDecoder(gzipReader).Decode(&value); err != nil {
		return Route{}, errors.Wrap(err, "decode nbt")
	}

	route := Route{
		Name:         value.Name,
		IdleDuration: value.IdleDuration,
		Waypoints:    make([]mgl32.Vec3, 0, len(value.Waypoints)),
	}
	for i, wp := range value.Waypoints {
		if len(wp.Pos) != 3 {
			return Route{}, errors.Errorf("waypoint %d: expected Pos of 3 floats, got %d", i, len(wp.Pos))
		}
		route.Waypoints = append(route.Waypoints, mgl32.Vec3{wp.Pos[0], wp.Pos[1], wp.Pos[2]})
	}
	if err := route.Validate(); err != nil {
		return Route{}, err
	}
	return route, nil
}
