package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/patrol/config"
	"github.com/memmaker/patrol/engine/util"
	"golang.org/x/term"
)

func main() {
	route := defaultRoute()
	routeFile := ""
	if len(os.Args) > 1 {
		routeFile = os.Args[1]
		loaded, err := config.Load(routeFile)
		if err != nil {
			util.LogConfigError(err.Error())
			os.Exit(1)
		}
		route = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim := NewSimulation(route, term.IsTerminal(int(os.Stdout.Fd())))
	if routeFile != "" {
		watcher, err := config.NewWatcher(filepath.Dir(routeFile))
		if err != nil {
			util.LogConfigWarning(fmt.Sprintf("[main] Route hot reload disabled: %v", err))
		} else {
			defer watcher.Close()
			go watchRoute(ctx, watcher, routeFile, sim)
		}
	}

	sim.Run(ctx, time.Second/60)
}

func defaultRoute() config.Route {
	return config.Route{
		Name:         "square",
		IdleDuration: config.DefaultIdleDuration,
		Waypoints: []mgl32.Vec3{
			{0, 0, 0},
			{6, 0, 0},
			{6, 0, 6},
			{0, 0, 6},
		},
	}
}

func watchRoute(ctx context.Context, watcher *config.Watcher, routeFile string, sim *Simulation) {
	target, _ := filepath.Abs(routeFile)
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			util.LogConfigWarning(fmt.Sprintf("[main] Watcher: %v", err))
		case name, ok := <-watcher.Events:
			if !ok {
				return
			}
			if changed, _ := filepath.Abs(name); changed != target {
				continue
			}
			route, err := config.Load(routeFile)
			if err != nil {
				util.LogConfigError(err.Error())
				continue
			}
			sim.Reload(route)
		}
	}
}
