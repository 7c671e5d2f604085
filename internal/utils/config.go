package utils

import (
	"github.com/blagojts/viper"
)

// SetupConfigFile defines the settings for the configuration file support.
// An explicit cfgFile wins over the default search path; a missing default
// config file is not an error, flags and built-in defaults then stand
// alone. A named file that cannot be read is an error.
func SetupConfigFile(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// Ignore error if config file not found.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return err
		}
	}

	return nil
}
