package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the tuning configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, after the tuning file
and the difficulty preset are applied. The output can be saved and passed
back with --config.

Examples:
  shmup config dump > ~/.shmup/configs/shmup.yaml
  shmup config dump --format toml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(cmd *cobra.Command, args []string) error {
	cfg := shmupCfg
	if preset, ok := config.ParsePreset(flagDifficulty); ok {
		config.ApplyShmupPreset(&cfg, preset)
	}

	var (
		data []byte
		err  error
	)
	switch flagFormat {
	case "yaml", "yml":
		data, err = cfg.EncodeYAML()
	case "toml":
		data, err = cfg.EncodeTOML()
	default:
		return fmt.Errorf("unknown format %q (use yaml or toml)", flagFormat)
	}
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}
