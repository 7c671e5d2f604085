package main

import (
	"bytes"
	"fmt"

	"github.com/blagojts/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/ChuckGl/simferm/internal/sim"
)

const writeConfigTo = "./config.yaml"

func initConfigCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Generate example config yaml file and save it to " + writeConfigTo,
		Run:   writeExampleConfig,
	}
}

func writeExampleConfig(_ *cobra.Command, _ []string) {
	v := setExampleConfigInViper(sim.DefaultRunnerConfig())

	if err := v.WriteConfigAs(writeConfigTo); err != nil {
		panic(fmt.Errorf("could not write sample config to file %s: %v", writeConfigTo, err))
	}
	fmt.Printf("Wrote example config to: %s\n", writeConfigTo)
}

func setExampleConfigInViper(exampleConfig *sim.RunnerConfig) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	// convert RunnerConfig to yaml to load into viper
	configInBytes, err := yaml.Marshal(exampleConfig)
	if err != nil {
		panic(fmt.Errorf("could not convert example config to yaml: %v", err))
	}

	if err := v.ReadConfig(bytes.NewBuffer(configInBytes)); err != nil {
		panic(fmt.Errorf("could not load example config in viper: %v", err))
	}

	// bind the runner flags so keys the struct leaves to flag defaults
	// (interval, limits, debug) still land in the example file
	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	sim.RunnerConfig{}.AddToFlagSet(fs)
	if err := v.BindPFlags(fs); err != nil {
		panic(fmt.Errorf("could not bind runner config flags in viper: %v", err))
	}

	return v
}
