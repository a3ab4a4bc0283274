package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/memmaker/patrol/config"
	"github.com/memmaker/patrol/engine/anim"
	"github.com/memmaker/patrol/engine/nav"
	"github.com/memmaker/patrol/engine/util"
	"github.com/memmaker/patrol/game"
)

const (
	guardSpeed            = 3.0
	guardStoppingDistance = 0.1
)

// Simulation is the host loop around a single patrolling guard. Route reloads
// arrive from other goroutines and are picked up at the start of a frame, so
// the patrol itself is only ever touched from the loop.
type Simulation struct {
	mover      *nav.KinematicAgent
	params     *anim.ParameterSet
	patrol     *game.PatrolAgent
	reloads    chan config.Route
	statusLine bool
	out        io.Writer
	elapsed    float64
}

func NewSimulation(route config.Route, statusLine bool) *Simulation {
	start := defaultRoute().Waypoints[0]
	if len(route.Waypoints) > 0 {
		start = route.Waypoints[0]
	}
	s := &Simulation{
		mover:      nav.NewKinematicAgent(start, guardSpeed, guardStoppingDistance),
		params:     anim.NewParameterSet(),
		reloads:    make(chan config.Route, 1),
		statusLine: statusLine,
		out:        os.Stdout,
	}
	s.start(route)
	return s
}

func (s *Simulation) start(route config.Route) {
	if render := game.WaypointSegments(route.Waypoints); len(render) > 0 {
		util.LogSimulationInfo(fmt.Sprintf("[Simulation] Route '%s': %d segments %v", route.Name, len(render), game.FlattenLines(render)))
	}
	s.patrol = game.NewPatrolAgent(route.Name, route.Waypoints, route.IdleDuration, s.mover, s.params)
}

// Reload swaps in a new route; a pending, not yet applied route is replaced.
func (s *Simulation) Reload(route config.Route) {
	for {
		select {
		case s.reloads <- route:
			return
		default:
		}
		select {
		case <-s.reloads:
		default:
		}
	}
}

func (s *Simulation) Run(ctx context.Context, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			if s.statusLine {
				fmt.Fprintln(s.out)
			}
			util.LogSimulationInfo(fmt.Sprintf("[Simulation] Stopped after %.1fs", s.elapsed))
			return
		case now := <-ticker.C:
			s.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

func (s *Simulation) Tick(deltaTime float64) game.StepResult {
	select {
	case route := <-s.reloads:
		util.LogSimulationInfo(fmt.Sprintf("[Simulation] Reloading route '%s'", route.Name))
		s.mover.ClearDestination()
		s.start(route)
	default:
	}

	s.elapsed += deltaTime
	s.mover.Update(deltaTime)
	result := s.patrol.Update(deltaTime)

	if s.statusLine {
		controller := s.patrol.Controller()
		pos := s.mover.Position()
		fmt.Fprintf(s.out, "\r%-8s t=%6.1fs pos=(%6.2f %6.2f %6.2f) walking=%-5t idle=%4.1fs  ",
			controller.State().ToString(), s.elapsed, pos.X(), pos.Y(), pos.Z(),
			s.params.GetBool(game.AnimParamWalking), controller.IdleRemaining())
	}
	return result
}
