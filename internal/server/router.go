package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/agora-protocol/dashboard/internal/calculation"
	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/agora-protocol/dashboard/internal/exporter"
)

func attachRoutes(r *gin.Engine, snap *domain.Dashboard, opts Options) {
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	exporter.Init()
	dashH := NewDashboard(snap, opts)

	r.GET("/healthz", Health)
	r.GET("/metrics", gin.WrapH(exporter.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/dashboard", dashH.Snapshot)
		v1.GET("/view", dashH.View)
		v1.GET("/proposals", dashH.Proposals)
		v1.GET("/proposals/:id", dashH.Proposal)
		v1.GET("/dao-proposals/:id", dashH.DAOProposal)
		v1.GET("/sanctions", dashH.Sanctions)
		v1.GET("/report/:format", dashH.Report)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

func nopIfNil(l calculation.Logger) calculation.Logger {
	if l == nil {
		return calculation.NopLogger{}
	}
	return l
}
