package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a scenario once and print its per-pattern log-likelihoods",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadScenario(scenarioPath)
		if err != nil {
			logrus.Fatal(err)
		}
		core, err := buildCore(s)
		if err != nil {
			logrus.Fatal(err)
		}
		defer core.Teardown()

		logrus.Infof("evaluating %d nodes, S=%d, P=%d, R=%d", s.Nodes, s.Alphabet, s.Patterns, s.Categories)
		nodes, lengths := s.branchNodes()
		core.UpdateMatrices(nodes, lengths)
		core.UpdatePartials(s.operations())

		logLik := make([]float64, s.Patterns)
		core.CalculateLogLikelihoods(s.Root, logLik)

		for i, ll := range logLik {
			fmt.Printf("pattern %d: %.6f\n", i, ll)
		}
	},
}
