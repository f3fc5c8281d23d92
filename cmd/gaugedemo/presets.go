package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/roffe/txgauge/pkg/presets"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the gauge presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := loadPresets(); err != nil {
			return err
		}
		for _, name := range presets.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var showPresetCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a preset as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadPresets(); err != nil {
			return err
		}
		p, err := presets.Get(args[0])
		if err != nil {
			return err
		}
		data, err := presets.Encode(p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var deletePresetCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadPresets()
		if err != nil {
			return err
		}
		if _, err := presets.Get(args[0]); err != nil {
			return err
		}
		if err := presets.Delete(args[0]); err != nil {
			return err
		}
		return presets.Save(a.Preferences())
	},
}

func init() {
	presetsCmd.AddCommand(showPresetCmd, deletePresetCmd)
	rootCmd.AddCommand(presetsCmd)
}

func loadPresets() (fyne.App, error) {
	a := app.NewWithID(appID)
	if err := presets.Load(a.Preferences()); err != nil {
		return nil, err
	}
	return a, nil
}
