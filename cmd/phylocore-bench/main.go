// Command phylocore-bench loads a tree/model scenario from YAML and drives
// engine.Core through it end to end, either printing the resulting
// per-pattern log-likelihoods (eval) or repeatedly churning update-matrix
// / update-partials / Store / Restore cycles to measure throughput under
// MCMC-like reuse (bench).
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
