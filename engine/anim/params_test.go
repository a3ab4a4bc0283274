package anim

import "testing"

func TestParameterSetCountsFlips(t *testing.T) {
	p := NewParameterSet()
	for _, v := range []bool{false, false, true, true, false} {
		p.SetBool("isWalking", v)
	}
	if p.GetBool("isWalking") {
		t.Fatalf("expected last value false")
	}
	// first write counts, then true, then false
	if got := p.Changes("isWalking"); got != 3 {
		t.Fatalf("expected 3 changes, got %d", got)
	}
	if p.GetBool("unknown") || p.Changes("unknown") != 0 {
		t.Fatalf("unknown parameter should read as unset")
	}
}
