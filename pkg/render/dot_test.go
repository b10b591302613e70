package render

import (
	"strings"
	"testing"

	"github.com/diskmap/diskmap/pkg/udm"
)

func TestToDOTNodesPinned(t *testing.T) {
	nodes := []udm.Node{
		{Row: 2, Col: 2, Weight: 2},
		{Row: 3, Col: 2, Weight: 1},
	}
	dot := ToDOT(nodes, Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("DOT should open an undirected graph, got %q", dot[:20])
	}
	if !strings.Contains(dot, "layout=neato;") {
		t.Error("DOT should select the neato engine")
	}
	// Positions are (col, -row) and pinned.
	if !strings.Contains(dot, `n0 [pos="2,-2!"]`) {
		t.Errorf("missing pinned position for n0:\n%s", dot)
	}
	if !strings.Contains(dot, `n1 [pos="2,-3!"]`) {
		t.Errorf("missing pinned position for n1:\n%s", dot)
	}
}

func TestToDOTEdgesWithinRadius(t *testing.T) {
	nodes := []udm.Node{
		{Row: 0, Col: 0, Weight: 1}, // n0
		{Row: 0, Col: 1, Weight: 1}, // n1: distance 1 from n0
		{Row: 1, Col: 1, Weight: 1}, // n2: distance √2 from n0
		{Row: 0, Col: 3, Weight: 1}, // n3: distance 2 from n1
	}
	dot := ToDOT(nodes, Options{Radius: DefaultRadius})

	wantEdges := []string{"n0 -- n1;", "n0 -- n2;", "n1 -- n2;"}
	for _, e := range wantEdges {
		if !strings.Contains(dot, e) {
			t.Errorf("missing edge %q:\n%s", e, dot)
		}
	}
	if strings.Contains(dot, "n1 -- n3;") {
		t.Error("nodes two grid steps apart should not be adjacent at the default radius")
	}
}

func TestToDOTRadiusGrowsAdjacency(t *testing.T) {
	nodes := []udm.Node{
		{Row: 0, Col: 0, Weight: 1},
		{Row: 0, Col: 2, Weight: 1},
	}

	if dot := ToDOT(nodes, Options{Radius: 1.5}); strings.Contains(dot, "n0 -- n1;") {
		t.Error("radius 1.5 should not connect nodes at distance 2")
	}
	if dot := ToDOT(nodes, Options{Radius: 2.0}); !strings.Contains(dot, "n0 -- n1;") {
		t.Error("radius 2.0 should connect nodes at distance 2")
	}
}

func TestToDOTLabels(t *testing.T) {
	nodes := []udm.Node{{Row: 1, Col: 1, Weight: 3}}

	plain := ToDOT(nodes, Options{})
	if !strings.Contains(plain, "shape=point") {
		t.Error("unlabeled nodes should be drawn as points")
	}
	if strings.Contains(plain, "label=") {
		t.Error("unlabeled output should carry no labels")
	}

	labeled := ToDOT(nodes, Options{Labels: true})
	if !strings.Contains(labeled, `label="3"`) {
		t.Errorf("labeled output should show the weight:\n%s", labeled)
	}
}

func TestToDOTZeroRadiusDefaults(t *testing.T) {
	nodes := []udm.Node{
		{Row: 0, Col: 0, Weight: 1},
		{Row: 0, Col: 1, Weight: 1},
	}
	dot := ToDOT(nodes, Options{}) // zero radius falls back to DefaultRadius
	if !strings.Contains(dot, "n0 -- n1;") {
		t.Error("zero radius should fall back to the default and connect unit neighbors")
	}
}
