package main

import (
	"github.com/spf13/cobra"

	"office97/internal/app"
	"office97/internal/startup"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags startup.Flags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "office97",
		Short:         "Microsoft Office 97 desktop shell",
		Long:          "Runs the Office 97 shell: installer splash, first-run setup, launcher and the office applications.",
		Version:       app.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Desktop launchers append their own switches.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Switches after "--" arrive as positional args.
			return runShell(ctx, flags.Merge(startup.ParseArgs(args)))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	startup.BindFlags(rootCmd.Flags(), &flags)

	rootCmd.AddCommand(newIconsCommand())
	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newWindowsCommand())
	rootCmd.AddCommand(newRecentCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func runShell(ctx *commandContext, flags startup.Flags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	log, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	application, err := app.NewApplication(app.Options{
		Config: cfg,
		Flags:  flags,
		Logger: log,
	})
	if err != nil {
		return err
	}
	return application.Run()
}
