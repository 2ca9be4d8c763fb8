package main

import (
	"showcase/internal/platform/config"
	"showcase/internal/platform/logger"
	phttp "showcase/internal/platform/net/http"
	"showcase/internal/platform/session"
	"showcase/internal/services/api"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service (page, JSON API and relay)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := config.New()
			srvCfg := root.Prefix("SHOWCASE_")
			l := logger.Get()

			srv := phttp.NewServer(srvCfg.MayPort("PORT", 4000))
			err := api.Mount(srv.Router(), api.Options{
				Config:         root,
				Logger:         l,
				Sessions:       session.NewStore(srvCfg.MayDuration("SESSION_TTL", session.DefaultTTL)),
				CORSOrigins:    srvCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
				EnableProfiler: srvCfg.MayBool("PROFILER", false),
				EnableDocs:     srvCfg.MayBool("DOCS", false),
			})
			if err != nil {
				return fail(err, "invalid showcase configuration")
			}

			if err := srv.Run(cmd.Context()); err != nil {
				return fail(err, "http server stopped")
			}
			return nil
		},
	}
}
