package dialogue

import (
	"errors"
	"testing"
)

func teaNode() *Node {
	return &Node{
		ID:       "order",
		PhraseID: "p-order",
		Options: []Option{
			{MatchText: "herbata", NextNodeID: "tea"},
			{MatchText: "kawa", NextNodeID: "coffee"},
			{MatchText: "nic", NextNodeID: "nothing", IsDefault: true},
		},
	}
}

func TestResolve_ExactMatch(t *testing.T) {
	next, err := Resolve(teaNode(), "herbata")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if next != "tea" {
		t.Errorf("next = %q, want %q", next, "tea")
	}
}

func TestResolve_ExactMatchNormalized(t *testing.T) {
	next, err := Resolve(teaNode(), "  Herbata!  ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if next != "tea" {
		t.Errorf("next = %q, want %q", next, "tea")
	}
}

func TestResolve_ExactBeatsFuzzy(t *testing.T) {
	// "kawa" is within fuzzy distance of both "kawa" and... nothing closer,
	// but put an earlier option that fuzzy-matches to ensure the exact pass
	// runs to completion first.
	node := &Node{
		ID: "n",
		Options: []Option{
			{MatchText: "kawka", NextNodeID: "fuzzy-target"}, // distance 1 from "kawa"
			{MatchText: "kawa", NextNodeID: "exact-target", IsDefault: true},
		},
	}
	next, err := Resolve(node, "kawa")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if next != "exact-target" {
		t.Errorf("next = %q, want exact match to win over earlier fuzzy option", next)
	}
}

func TestResolve_FuzzyMatch(t *testing.T) {
	// "herbaty" is 1 edit from "herbata".
	next, err := Resolve(teaNode(), "herbaty")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if next != "tea" {
		t.Errorf("next = %q, want %q", next, "tea")
	}
}

func TestResolve_FuzzyFirstUnderThresholdWins(t *testing.T) {
	// "kava" is 1 edit from "kawa" and 3 from "herbata"; declaration order
	// checks "herbata" first but it exceeds the threshold.
	next, err := Resolve(teaNode(), "kava")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if next != "coffee" {
		t.Errorf("next = %q, want %q", next, "coffee")
	}
}

func TestResolve_DefaultFallback(t *testing.T) {
	next, err := Resolve(teaNode(), "poproszę zupę pomidorową")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if next != "nothing" {
		t.Errorf("next = %q, want default branch %q", next, "nothing")
	}
}

func TestResolve_NoDefaultBranchError(t *testing.T) {
	node := &Node{
		ID: "broken",
		Options: []Option{
			{MatchText: "herbata", NextNodeID: "tea"},
			{MatchText: "kawa", NextNodeID: "coffee"},
		},
	}
	_, err := Resolve(node, "zupa pomidorowa")
	if err == nil {
		t.Fatal("expected NoDefaultBranchError, got nil")
	}
	var noDefault *NoDefaultBranchError
	if !errors.As(err, &noDefault) {
		t.Fatalf("expected *NoDefaultBranchError, got %T: %v", err, err)
	}
	if noDefault.NodeID != "broken" {
		t.Errorf("NodeID = %q, want %q", noDefault.NodeID, "broken")
	}
}
