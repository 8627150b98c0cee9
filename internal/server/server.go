package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/smallbiznis/fiado/internal/config"
	"github.com/smallbiznis/fiado/internal/debt"
	debtdomain "github.com/smallbiznis/fiado/internal/debt/domain"
	"github.com/smallbiznis/fiado/internal/inventory"
	inventorydomain "github.com/smallbiznis/fiado/internal/inventory/domain"
	obsmetrics "github.com/smallbiznis/fiado/internal/observability/metrics"
	"github.com/smallbiznis/fiado/internal/receivable"
	receivabledomain "github.com/smallbiznis/fiado/internal/receivable/domain"
)

var Module = fx.Module("http.server",
	obsmetrics.Module,
	debt.Module,
	inventory.Module,
	receivable.Module,
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log.Named("http")))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting",
				zap.String("app", cfg.AppName),
				zap.String("version", cfg.AppVersion),
				zap.String("environment", cfg.Environment),
				zap.String("addr", cfg.HTTPAddr),
			)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	debtSvc       debtdomain.Service
	inventorySvc  inventorydomain.Service
	receivableSvc receivabledomain.Service
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	DebtSvc       debtdomain.Service
	InventorySvc  inventorydomain.Service
	ReceivableSvc receivabledomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		debtSvc:       p.DebtSvc,
		inventorySvc:  p.InventorySvc,
		receivableSvc: p.ReceivableSvc,
	}

	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	r := s.engine

	r.GET("/", s.Status)
	r.POST("/verificar-senha", s.VerifyPassword)

	// -------- Promissórias --------
	r.GET("/promissorias", s.ListActiveDebts)
	r.GET("/promissorias/pagas", s.ListSettledDebts)
	r.POST("/promissorias", s.CreateDebt)
	r.PUT("/promissorias/:id/quitar", s.SettleDebt)
	r.PUT("/promissorias/:id/adicionar", s.AddToDebt)

	// -------- Pagamentos / adições --------
	r.POST("/pagamentos", s.RecordPayment)
	r.GET("/pagamentos/:id", s.ListPayments)
	r.GET("/adicoes/:id", s.ListAdditions)

	// -------- Estoque --------
	r.GET("/estoque", s.ListMovements)
	r.POST("/estoque", s.RecordMovement)
	r.GET("/produtos", s.ListProducts)

	// -------- Duplicatas --------
	r.GET("/duplicatas", s.ListReceivables)
	r.POST("/duplicatas", s.CreateReceivable)
	r.PUT("/duplicatas/:id/quitar", s.SettleReceivable)
}

func (s *Server) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mensagem": "API Controle de Dívidas online"})
}
