package cmd

import (
	"github.com/spf13/cobra"

	"dmoncada/tweetscope/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Collect tweet ids for the date range and fetch their metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		return pipeline.Extract(cmd.Context(), cfg)
	},
}

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Normalize the raw table and derive the aggregate tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		return pipeline.Transform(cfg)
	},
}

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Render an HTML chart for every derived table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		return pipeline.Visualize(cfg)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run extract, transform, and visualize in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		return pipeline.Run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd, transformCmd, visualizeCmd, runCmd)
}
