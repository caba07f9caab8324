package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the default configuration file. Save it as
~/.wordsearch/configs/wordsearch.yaml and edit the keys you want to change.

With --effective, print the configuration in use after loading --config
or the user file.

Examples:
  wordsearch config > ~/.wordsearch/configs/wordsearch.yaml
  wordsearch config --effective --config ./my.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded configuration instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	out, err := yaml.Marshal(gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
