package config

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Tnze/go-mc/nbt"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
)

func TestParseYAML(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		wantErr   string
		wantIdle  float64
		waypoints []mgl32.Vec3
	}{
		{
			name:      "defaults idle duration",
			input:     "name: courtyard\nwaypoints:\n  - [0, 0, 0]\n  - [4, 0, 1.5]\n",
			wantIdle:  DefaultIdleDuration,
			waypoints: []mgl32.Vec3{{0, 0, 0}, {4, 0, 1.5}},
		},
		{
			name:      "explicit idle duration",
			input:     "idle_duration: 0.5\nwaypoints: [[1, 2, 3]]\n",
			wantIdle:  0.5,
			waypoints: []mgl32.Vec3{{1, 2, 3}},
		},
		{
			name:     "no waypoints is allowed",
			input:    "name: empty\nidle_duration: 0\n",
			wantIdle: 0,
		},
		{
			name:    "short waypoint",
			input:   "waypoints: [[1, 2]]\n",
			wantErr: "waypoint 0",
		},
		{
			name:    "negative idle duration",
			input:   "idle_duration: -1\nwaypoints: [[1, 2, 3]]\n",
			wantErr: "negative",
		},
		{
			name:    "malformed",
			input:   "waypoints: {x: 1\n",
			wantErr: "unmarshal route",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			route, err := ParseYAML([]byte(c.input))
			if c.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), c.wantErr) {
					t.Fatalf("expected error containing %q, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if route.IdleDuration != c.wantIdle {
				t.Fatalf("expected idle %f, got %f", c.wantIdle, route.IdleDuration)
			}
			if len(route.Waypoints) != len(c.waypoints) {
				t.Fatalf("expected %d waypoints, got %d", len(c.waypoints), len(route.Waypoints))
			}
			for i := range c.waypoints {
				if route.Waypoints[i] != c.waypoints[i] {
					t.Fatalf("waypoint %d: expected %v, got %v", i, c.waypoints[i], route.Waypoints[i])
				}
			}
		})
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	yamlFile := filepath.Join(dir, "gate.yml")
	if err := os.WriteFile(yamlFile, []byte("waypoints: [[0, 0, 0], [1, 0, 0]]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	route, err := Load(yamlFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.Name != "gate" || len(route.Waypoints) != 2 {
		t.Fatalf("unexpected route %+v", route)
	}

	nbtFile := filepath.Join(dir, "tower.nbt")
	if err := os.WriteFile(nbtFile, gzipNBT(t, NBTRoute{Name: "tower", IdleDuration: 1, Waypoints: []NBTWaypoint{{Pos: []float32{1, 2, 3}}}}), 0o644); err != nil {
		t.Fatal(err)
	}
	route, err = Load(nbtFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.Name != "tower" || route.Waypoints[0] != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("unexpected route %+v", route)
	}

	if _, err := Load(filepath.Join(dir, "route.txt")); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Fatalf("expected error naming the file, got %v", err)
	}
}

func TestDecodeNBT(t *testing.T) {
	data := gzipNBT(t, NBTRoute{
		Name:         "walls",
		IdleDuration: 3.5,
		Waypoints: []NBTWaypoint{
			{Pos: []float32{0, 1, 0}},
			{Pos: []float32{8, 1, 0}},
		},
	})
	route, err := DecodeNBT(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.Name != "walls" || route.IdleDuration != 3.5 || len(route.Waypoints) != 2 || route.Waypoints[1] != (mgl32.Vec3{8, 1, 0}) {
		t.Fatalf("unexpected route %+v", route)
	}

	withoutIdle := struct {
		Name      string        `nbt:"Name"`
		Waypoints []NBTWaypoint `nbt:"Waypoints"`
	}{Name: "short", Waypoints: []NBTWaypoint{{Pos: []float32{1, 1, 1}}}}
	route, err = DecodeNBT(bytes.NewReader(gzipNBT(t, withoutIdle)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.IdleDuration != DefaultIdleDuration {
		t.Fatalf("expected default idle duration, got %f", route.IdleDuration)
	}

	bad := gzipNBT(t, NBTRoute{Name: "bad", IdleDuration: 1, Waypoints: []NBTWaypoint{{Pos: []float32{1}}}})
	if _, err := DecodeNBT(bytes.NewReader(bad)); err == nil {
		t.Fatalf("expected error for a short Pos")
	}
	if _, err := DecodeNBT(strings.NewReader("not gzip")); err == nil {
		t.Fatalf("expected error for plain input")
	}
}

func TestRouteFromDocument(t *testing.T) {
	doc := &gltf.Document{
		Scenes: []*gltf.Scene{{Name: "courtyard", Nodes: []uint32{0, 1, 2}}},
		Nodes: []*gltf.Node{
			{Name: "waypoint.10", Translation: [3]float32{10, 0, 0}},
			{Name: "lamp", Translation: [3]float32{99, 0, 0}},
			{Name: "markers", Translation: [3]float32{0, 5, 0}, Children: []uint32{3, 4}},
			{Name: "waypoint.2", Translation: [3]float32{2, 0, 0}},
			{Name: "waypoint_start", Translation: [3]float32{0, 0, 1}},
		},
	}

	route, err := RouteFromDocument(doc, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []mgl32.Vec3{{2, 5, 0}, {10, 0, 0}, {0, 5, 1}}
	if len(route.Waypoints) != len(want) {
		t.Fatalf("expected %d waypoints, got %v", len(want), route.Waypoints)
	}
	for i := range want {
		if !route.Waypoints[i].ApproxEqual(want[i]) {
			t.Fatalf("waypoint %d: expected %v, got %v", i, want[i], route.Waypoints[i])
		}
	}
	if route.Name != "courtyard" || route.IdleDuration != DefaultIdleDuration {
		t.Fatalf("unexpected route header %+v", route)
	}

	if _, err := RouteFromDocument(&gltf.Document{}, ""); err == nil {
		t.Fatalf("expected error for a document without scenes")
	}
}

func TestWatcherReportsRouteFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	routeFile := filepath.Join(dir, "route.yaml")
	if err := os.WriteFile(routeFile, []byte("waypoints: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != routeFile {
			t.Fatalf("expected event for %s, got %s", routeFile, name)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for %s", routeFile)
	}
}

func gzipNBT(t *testing.T, v any) []byte {
	t.Helper()
	data, err := nbt.Marshal(v)
	if err != nil {
		t.Fatalf("nbt.Marshal: %v", err)
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
