package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/blagojts/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ChuckGl/simferm/internal/sim"
	"github.com/ChuckGl/simferm/internal/utils"
)

func initRunCMD() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulated fermentation",
		Run:   runSimulation,
	}

	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	sim.RunnerConfig{}.AddToFlagSet(fs)
	cmd.PersistentFlags().AddFlagSet(fs)
	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, fmt.Errorf("could not bind flags to configuration: %v", err)
	}

	return cmd, nil
}

func runSimulation(_ *cobra.Command, _ []string) {
	if err := utils.SetupConfigFile(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error config file: %s\n", err)
		os.Exit(1)
	}

	config := &sim.RunnerConfig{}
	if err := viper.Unmarshal(config); err != nil {
		fmt.Fprintf(os.Stderr, "unable to decode config: %s\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catches ctrl+c signals
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c

		fmt.Fprintln(os.Stderr, "\ncaught interrupt, stopping simulation")
		cancel()
	}()

	fmt.Println("Simulated fermentation started. Monitor log file for progress.")
	runner := sim.NewSimulationRunner(config)
	if err := runner.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Simulated fermentation complete. Enjoy a simulated beer on me.")
}
