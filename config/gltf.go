package config

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

const DefaultWaypointPrefix = "waypoint"

// LoadGLTF reads waypoints from the marker nodes of a level scene.
func LoadGLTF(filename string, prefix string) (Route, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return Route{}, errors.Wrapf(err, "config: load %s", filename)
	}
	route, err := RouteFromDocument(doc, prefix)
	if err != nil {
		return Route{}, errors.Wrapf(err, "config: parse %s", filename)
	}
	if route.Name == "" {
		route.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return route, nil
}

type markerNode struct {
	name     string
	order    int
	numbered bool
	position mgl32.Vec3
}

// RouteFromDocument collects every node of the default scene whose name
// starts with prefix. Positions are world space; the route order follows
// the number in the node name (waypoint.1, waypoint.2, ...), unnumbered
// markers go last in name order.
func RouteFromDocument(doc *gltf.Document, prefix string) (Route, error) {
	if prefix == "" {
		prefix = DefaultWaypointPrefix
	}
	if len(doc.Scenes) == 0 {
		return Route{}, errors.New("document has no scenes")
	}
	defaultSceneIndex := 0
	if doc.Scene != nil {
		defaultSceneIndex = int(*doc.Scene)
	}
	if defaultSceneIndex >= len(doc.Scenes) {
		return Route{}, errors.Errorf("default scene %d out of range", defaultSceneIndex)
	}
	defaultScene := doc.Scenes[defaultSceneIndex]

	var markers []markerNode
	for _, nodeIndex := range defaultScene.Nodes {
		collectMarkers(doc, nodeIndex, mgl32.Ident4(), prefix, &markers)
	}
	sort.SliceStable(markers, func(i, j int) bool {
		a, b := markers[i], markers[j]
		if a.numbered != b.numbered {
			return a.numbered
		}
		if a.numbered && a.order != b.order {
			return a.order < b.order
		}
		return a.name < b.name
	})

	route := Route{
		Name:         defaultScene.Name,
		IdleDuration: DefaultIdleDuration,
		Waypoints:    make([]mgl32.Vec3, 0, len(markers)),
	}
	for _, m := range markers {
		route.Waypoints = append(route.Waypoints, m.position)
	}
	return route, nil
}

func collectMarkers(doc *gltf.Document, nodeIndex uint32, parent mgl32.Mat4, prefix string, markers *[]markerNode) {
	if int(nodeIndex) >= len(doc.Nodes) {
		return
	}
	docNode := doc.Nodes[nodeIndex]
	world := parent.Mul4(localTransform(docNode))

	if strings.HasPrefix(docNode.Name, prefix) {
		suffix := strings.TrimLeft(strings.TrimPrefix(docNode.Name, prefix), "._- ")
		order, err := strconv.Atoi(suffix)
		*markers = append(*markers, markerNode{
			name:     docNode.Name,
			order:    order,
			numbered: err == nil,
			position: world.Col(3).Vec3(),
		})
	}
	for _, childNodeIndex := range docNode.Children {
		collectMarkers(doc, childNodeIndex, world, prefix, markers)
	}
}

func localTransform(node *gltf.Node) mgl32.Mat4 {
	t := node.TranslationOrDefault()
	r := node.RotationOrDefault()
	s := node.ScaleOrDefault()
	rotation := mgl32.Quat{W: r[3], V: mgl32.Vec3{r[0], r[1], r[2]}}
	return mgl32.Translate3D(t[0], t[1], t[2]).
		Mul4(rotation.Mat4()).
		Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}
