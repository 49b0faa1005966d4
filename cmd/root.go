package cmd

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	configFile   string
	logLevel     string
	logJSON      bool
	storeBackend string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "ts",
		Short:         "TDMU schedule CLI (ts): sign in and view your weekly timetable",
		Long:          "ts signs in to the TDMU student portal with a Google identity, then lists semesters and shows the weekly class schedule, caching responses locally.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWireAnnotation] == "true" {
				return nil
			}

			wired, err := wireApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Config file (default ~/.config/tschedule/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&opts.logJSON, "log-json", false, "Write logs as JSON")
	flags.StringVar(&opts.storeBackend, "store", "", "Storage backend: chain, pass, file, toml, memory")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newSemestersCmd(app),
		newScheduleCmd(app),
		newAuthConfigCmd(app),
		newCacheCmd(app),
	)

	return rootCmd
}
