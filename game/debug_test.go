package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestWaypointSegments(t *testing.T) {
	cases := []struct {
		name      string
		waypoints []mgl32.Vec3
		want      int
	}{
		{"none", nil, 0},
		{"single", []mgl32.Vec3{wpA}, 0},
		{"pair", []mgl32.Vec3{wpA, wpB}, 1},
		{"open triangle", []mgl32.Vec3{wpA, wpB, wpC}, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lines := WaypointSegments(c.waypoints)
			if len(lines) != c.want {
				t.Fatalf("expected %d segments, got %d", c.want, len(lines))
			}
			for i, line := range lines {
				if line[0] != c.waypoints[i] || line[1] != c.waypoints[i+1] {
					t.Fatalf("segment %d does not join consecutive waypoints: %v", i, line)
				}
			}
		})
	}
}

func TestFlattenLines(t *testing.T) {
	flat := FlattenLines(WaypointSegments([]mgl32.Vec3{wpA, wpB, wpC}))
	want := []float32{0, 0, 0, 4, 0, 0, 4, 0, 0, 4, 0, 4}
	if len(flat) != len(want) {
		t.Fatalf("expected %d floats, got %d", len(want), len(flat))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Fatalf("index %d: expected %f, got %f", i, want[i], flat[i])
		}
	}
}
