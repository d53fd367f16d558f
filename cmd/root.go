package cmd

import (
	"github.com/spf13/cobra"

	"github.com/halewijn/edo31/logging"
)

var debugLogging bool

var rootCmd = &cobra.Command{
	Use:   "edo31",
	Short: "31-EDO scale and chord catalogue generator",
	Long: `edo31 generates a catalogue of 31-tone equal temperament scales,
their chords, and interval metadata, and serves read-only queries
over the generated data.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugLogging {
			logging.GetGlobalLogger().SetLevel(logging.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
