package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/wildfunctions/exprtree/pkg/engine"
	"github.com/wildfunctions/exprtree/pkg/pool"
)

var sampleConfig = engine.DefaultConfig()

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "build random expression trees and report their statistics",
	Args:  cobra.NoArgs,
	RunE:  runSample,
}

func init() {
	cfg := &sampleConfig
	sampleCmd.Flags().StringVar(
		&cfg.Pool, "pool", cfg.Pool, "tree pool ("+strings.Join(pool.Names(), ", ")+")")
	sampleCmd.Flags().IntVarP(
		&cfg.Samples, "samples", "n", cfg.Samples, "number of trees to build")
	sampleCmd.Flags().IntVar(
		&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "max tree depth")
	sampleCmd.Flags().Int64Var(
		&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	sampleCmd.Flags().IntVarP(
		&cfg.Workers, "workers", "c", cfg.Workers, "number of parallel workers")
	sampleCmd.Flags().IntVar(
		&cfg.BufSize, "buf-size", cfg.BufSize, "capacity of the rendering buffer, terminator included")
	sampleCmd.Flags().StringVar(
		&cfg.Format, "format", cfg.Format, "output format (text, json, pretty)")
	sampleCmd.Flags().BoolVarP(
		&cfg.Verbose, "verbose", "v", cfg.Verbose, "log and list every sample")
	sampleCmd.Flags().BoolVar(
		&cfg.CheckLeaks, "check-leaks", cfg.CheckLeaks, "fail if any tree node is left undestroyed")
}

func runSample(cmd *cobra.Command, _ []string) error {
	e, err := engine.New(sampleConfig)
	if err != nil {
		return err
	}
	report, err := e.Run(cmd.Context())
	if err != nil {
		return err
	}
	return engine.Write(cmd.OutOrStdout(), report)
}
