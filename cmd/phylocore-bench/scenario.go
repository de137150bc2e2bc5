package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phylokit/phylocore/buffer"
	"github.com/phylokit/phylocore/engine"
)

// tipSpec is one tip's YAML representation: either a per-pattern state
// list (kind: states) or a full R*P*S partials vector (kind: partials).
type tipSpec struct {
	Node     int       `yaml:"node"`
	Kind     string    `yaml:"kind"`
	States   []int32   `yaml:"states,omitempty"`
	Partials []float64 `yaml:"partials,omitempty"`
}

// opSpec mirrors engine.Operation for YAML decoding.
type opSpec struct {
	ChildA int `yaml:"child_a"`
	ChildB int `yaml:"child_b"`
	Parent int `yaml:"parent"`
}

// modelSpec names a fixtures rate-matrix builder and its parameters.
// Supported names: jc69, gtr, covarion8, cyclic3, identity.
type modelSpec struct {
	Name            string    `yaml:"name"`
	Frequencies     []float64 `yaml:"frequencies,omitempty"`
	Exchangeability []float64 `yaml:"exchangeability,omitempty"`
	SubstRate       float64   `yaml:"subst_rate,omitempty"`
	SwitchRate      float64   `yaml:"switch_rate,omitempty"`
}

// scenario is the full YAML description of one evaluation: tree shape,
// tip data, substitution model, and rate heterogeneity.
type scenario struct {
	Nodes               int             `yaml:"nodes"`
	Alphabet            int             `yaml:"alphabet"`
	Patterns            int             `yaml:"patterns"`
	Categories          int             `yaml:"categories"`
	Root                int             `yaml:"root"`
	Tips                []tipSpec       `yaml:"tips"`
	Operations          []opSpec        `yaml:"operations"`
	BranchLengths       map[int]float64 `yaml:"branch_lengths"`
	Model               modelSpec       `yaml:"model"`
	CategoryRates       []float64       `yaml:"category_rates"`
	CategoryProportions []float64       `yaml:"category_proportions"`
}

// loadScenario reads and parses a scenario YAML file.
func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loadScenario: %w", err)
	}
	var s scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("loadScenario: %w", err)
	}
	return &s, nil
}

// tipKinds builds the buffer.NodeKind vector New expects: internal for
// every node not named in s.Tips, the declared kind otherwise.
func (s *scenario) tipKinds() ([]buffer.NodeKind, error) {
	kinds := make([]buffer.NodeKind, s.Nodes)
	for _, t := range s.Tips {
		switch t.Kind {
		case "states":
			kinds[t.Node] = buffer.TipStates
		case "partials":
			kinds[t.Node] = buffer.TipPartials
		default:
			return nil, fmt.Errorf("loadScenario: tip %d has unknown kind %q", t.Node, t.Kind)
		}
	}
	return kinds, nil
}

// operations converts the YAML operation list into engine.Operation form.
func (s *scenario) operations() []engine.Operation {
	ops := make([]engine.Operation, len(s.Operations))
	for i, o := range s.Operations {
		ops[i] = engine.Operation{ChildA: o.ChildA, ChildB: o.ChildB, Parent: o.Parent}
	}
	return ops
}

// branchNodes returns the node/length pairs in ascending node order, as
// the two parallel slices engine.Core.UpdateMatrices takes.
func (s *scenario) branchNodes() (nodes []int, lengths []float64) {
	for n := 0; n < s.Nodes; n++ {
		if bl, ok := s.BranchLengths[n]; ok {
			nodes = append(nodes, n)
			lengths = append(lengths, bl)
		}
	}
	return nodes, lengths
}
