package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "simferm",
		Short: "Simulate a fermentation against a Tilt-Sim device",
		Long: "simferm drives a Tilt-Sim device simulator with realistic fermentation\n" +
			"readings: temperature chasing its final setpoint and gravity decaying\n" +
			"from OG to FG, one reading per interval.",
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	runCmd, err := initRunCMD()
	if err != nil {
		panic(err)
	}
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initConfigCMD())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
