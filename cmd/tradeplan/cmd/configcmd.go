package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradeplan/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate, validate or inspect risk settings",
	Long: `Manage the risk settings file.

Subcommands:
  init     - Generate a default settings file
  validate - Validate an existing settings file
  show     - Print the active settings

Examples:
  tradeplan config init --output tradeplan.yaml
  tradeplan config validate`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default settings file",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the settings file",
	RunE:  runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active settings",
	RunE:  runConfigShow,
}

var configInitOutput string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "", "output path (default: the --config path)")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := configInitOutput
	if out == "" {
		out = cfgPath
	}

	cfg := config.Default()
	if err := cfg.SaveToFile(out); err != nil {
		return err
	}

	fmt.Printf("Wrote default settings to %s\n", out)
	fmt.Println("Edit the file, then check it with: tradeplan config validate")
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return err
	}

	fmt.Printf("%s is valid (%s mode)\n", cfgPath, cfg.Mode)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
