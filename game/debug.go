package game

import "github.com/go-gl/mathgl/mgl32"

// WaypointSegments returns the lines between consecutive waypoints for a
// debug line renderer. The route is not closed back to the first waypoint.
func WaypointSegments(waypoints []mgl32.Vec3) [][2]mgl32.Vec3 {
	if len(waypoints) < 2 {
		return nil
	}
	lines := make([][2]mgl32.Vec3, 0, len(waypoints)-1)
	for i := 0; i < len(waypoints)-1; i++ {
		lines = append(lines, [2]mgl32.Vec3{waypoints[i], waypoints[i+1]})
	}
	return lines
}

// FlattenLines interleaves line endpoints as X0,Y0,Z0, X1,Y1,Z1, ...
func FlattenLines(lines [][2]mgl32.Vec3) []float32 {
	flatLines := make([]float32, 0, len(lines)*6)
	for _, line := range lines {
		flatLines = append(flatLines, line[0].X(), line[0].Y(), line[0].Z())
		flatLines = append(flatLines, line[1].X(), line[1].Y(), line[1].Z())
	}
	return flatLines
}
