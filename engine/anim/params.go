package anim

import (
	"fmt"

	"github.com/memmaker/patrol/engine/util"
)

// ParameterSet is a minimal animator: named boolean parameters that a blend
// tree would read. Changes counts how often a parameter actually flipped.
type ParameterSet struct {
	bools   map[string]bool
	changes map[string]int
}

func NewParameterSet() *ParameterSet {
	return &ParameterSet{
		bools:   make(map[string]bool),
		changes: make(map[string]int),
	}
}

func (p *ParameterSet) SetBool(name string, value bool) {
	if old, ok := p.bools[name]; ok && old == value {
		return
	}
	p.bools[name] = value
	p.changes[name]++
	util.LogAnimationDebug(fmt.Sprintf("[ParameterSet] %s = %t", name, value))
}

func (p *ParameterSet) GetBool(name string) bool {
	return p.bools[name]
}

func (p *ParameterSet) Changes(name string) int {
	return p.changes[name]
}
