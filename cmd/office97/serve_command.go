package main

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"office97/internal/app"
	"office97/internal/distserver"
	"office97/internal/shutdown"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string
	var distDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the installer download page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if strings.TrimSpace(bind) == "" {
				bind = cfg.Server.Bind
			}
			if strings.TrimSpace(distDir) == "" {
				distDir = cfg.Server.DistDir
			}
			if cfg.Logging.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			srv := distserver.New(distserver.Config{
				Bind:    bind,
				DistDir: distDir,
				Version: app.AppVersion,
			}, log)

			manager := shutdown.NewManager(log)
			manager.Listen()
			fmt.Fprintf(cmd.OutOrStdout(), "Office 97 Download Server on http://%s\n", bind)
			return srv.Run(manager.Context())
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (default from config, 0.0.0.0:8096)")
	cmd.Flags().StringVar(&distDir, "dist", "", "Directory holding the installer executable")
	return cmd
}
