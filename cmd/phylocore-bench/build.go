package main

import (
	"fmt"

	"github.com/phylokit/phylocore/engine"
	"github.com/phylokit/phylocore/fixtures"
)

// buildCore allocates an engine.Core from a scenario and installs its tip
// data, substitution model, and rate heterogeneity, leaving branch-matrix
// and partials computation to the caller (eval/bench run those per
// iteration so bench can time them in isolation).
func buildCore(s *scenario) (*engine.Core, error) {
	kinds, err := s.tipKinds()
	if err != nil {
		return nil, err
	}
	core, err := engine.New(s.Nodes, s.Alphabet, s.Patterns, s.Categories, kinds)
	if err != nil {
		return nil, fmt.Errorf("buildCore: %w", err)
	}

	for _, t := range s.Tips {
		switch t.Kind {
		case "states":
			core.SetTipStates(t.Node, t.States)
		case "partials":
			core.SetTipPartials(t.Node, t.Partials)
		}
	}

	u, uinv, lambda, lambdaImag, freq, err := resolveModel(s)
	if err != nil {
		return nil, fmt.Errorf("buildCore: %w", err)
	}
	core.SetEigenDecomposition(u, uinv, lambda, lambdaImag)
	if err := core.SetFrequencies(freq); err != nil {
		return nil, fmt.Errorf("buildCore: %w", err)
	}
	if err := core.SetCategoryRates(s.CategoryRates); err != nil {
		return nil, fmt.Errorf("buildCore: %w", err)
	}
	if err := core.SetCategoryProportions(s.CategoryProportions); err != nil {
		return nil, fmt.Errorf("buildCore: %w", err)
	}
	return core, nil
}

// resolveModel dispatches a modelSpec to the matching fixtures builder and
// returns the eigendecomposition engine.SetEigenDecomposition needs plus
// the stationary frequencies to install.
func resolveModel(s *scenario) (u, uinv, lambda, lambdaImag, freq []float64, err error) {
	m := s.Model
	switch m.Name {
	case "jc69":
		q, f := fixtures.JC69(s.Alphabet)
		u, uinv, lambda, lambdaImag, err = fixtures.Decompose(q, f, s.Alphabet)
		freq = f
	case "gtr":
		var q []float64
		q, err = fixtures.GTR(m.Frequencies, m.Exchangeability)
		if err != nil {
			return nil, nil, nil, nil, nil, err
		}
		u, uinv, lambda, lambdaImag, err = fixtures.Decompose(q, m.Frequencies, s.Alphabet)
		freq = m.Frequencies
	case "covarion8":
		q := fixtures.Covarion8(m.SubstRate, m.SwitchRate)
		freq = uniform(s.Alphabet)
		u, uinv, lambda, lambdaImag, err = fixtures.Decompose(q, freq, s.Alphabet)
	case "cyclic3":
		q := fixtures.Cyclic3(m.SubstRate)
		u, uinv, lambda, lambdaImag, err = fixtures.DecomposeGeneral(q, s.Alphabet)
		freq = uniform(s.Alphabet)
	case "identity":
		q := fixtures.Identity(s.Alphabet)
		u, uinv, lambda, lambdaImag, err = fixtures.DecomposeGeneral(q, s.Alphabet)
		freq = uniform(s.Alphabet)
	default:
		return nil, nil, nil, nil, nil, fmt.Errorf("resolveModel: unknown model %q", m.Name)
	}
	return u, uinv, lambda, lambdaImag, freq, err
}

func uniform(s int) []float64 {
	f := make([]float64, s)
	for i := range f {
		f[i] = 1.0 / float64(s)
	}
	return f
}
