package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Repeatedly churn updateMatrices/updatePartials/Store/Restore like an MCMC proposal loop",
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

		nodes, lengths := s.branchNodes()
		ops := s.operations()
		logLik := make([]float64, s.Patterns)

		logrus.Infof("benchmarking %d iterations over %d nodes", iterations, s.Nodes)
		core.Store()
		start := time.Now()
		for i := 0; i < iterations; i++ {
			core.UpdateMatrices(nodes, lengths)
			core.UpdatePartials(ops)
			core.CalculateLogLikelihoods(s.Root, logLik)

			if i%2 == 0 {
				core.Store()
			} else {
				core.Restore()
			}
		}
		elapsed := time.Since(start)

		logrus.Infof("completed %d iterations in %s", iterations, elapsed)
		fmt.Printf("%d iterations, %.3f us/iter\n", iterations, float64(elapsed.Microseconds())/float64(iterations))
	},
}

func init() {
	benchCmd.Flags().IntVar(&iterations, "iterations", 1000, "number of update/restore cycles to run")
}
