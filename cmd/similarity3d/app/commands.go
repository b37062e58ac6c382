// Package app provides the commands of the similarity3d CLI.
package app

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	similarity "github.com/VersusProject/similarity-3d"
)

// version is set at build time with -ldflags "-X .../app.version=...".
var version = "dev"

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "similarity3d",
		Short: "Compare 3D volumes with histogram and voxel similarity measures",
		Long: `similarity3d evaluates a list of similarity, distance and divergence
measures on pairs of 3D volumes and appends one tab-separated row per
measure and pair to a results file.

A failing measure is recorded in its row and never stops the batch.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Error().Err(err).Msg("Error displaying help")
			}
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initConfig()
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Error().Err(err).Msg("Error binding debug flag")
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML, JSON or TOML configuration file")
	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		log.Error().Err(err).Msg("Error binding config flag")
	}

	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newMeasuresCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.SilenceUsage = true
	return rootCmd
}

// initConfig reads the optional configuration file and applies the log level.
func initConfig() error {
	if path := viper.GetString("config"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", path)
		}
		log.Debug().Str("config", viper.ConfigFileUsed()).Msg("configuration loaded")
	}
	if viper.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "similarity3d version: %s\n", version)
		},
	}
}

func newMeasuresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "measures",
		Short: "List the available measures",
		RunE: func(_ *cobra.Command, _ []string) error {
			return renderMeasures(similarity.Measures())
		},
	}
}

func renderMeasures(ms []similarity.Measure) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Options(
		tablewriter.WithHeader([]string{"Name", "Family", "Input"}),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
	)

	for _, m := range ms {
		if err := table.Append([]string{m.Name, m.Family, m.Input.String()}); err != nil {
			return errors.Wrap(err, "failed to append row")
		}
	}
	if err := table.Render(); err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	return nil
}
