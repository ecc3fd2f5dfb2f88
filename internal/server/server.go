package server

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/rentcatalog/internal/auth"
	authdomain "github.com/smallbiznis/rentcatalog/internal/auth/domain"
	"github.com/smallbiznis/rentcatalog/internal/config"
	"github.com/smallbiznis/rentcatalog/internal/observability"
	obsmiddleware "github.com/smallbiznis/rentcatalog/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/rentcatalog/internal/observability/metrics"
	obstracing "github.com/smallbiznis/rentcatalog/internal/observability/tracing"
	"github.com/smallbiznis/rentcatalog/internal/pricing"
	"github.com/smallbiznis/rentcatalog/internal/product"
	productdomain "github.com/smallbiznis/rentcatalog/internal/product/domain"
	"github.com/smallbiznis/rentcatalog/internal/ratelimit"
	"github.com/smallbiznis/rentcatalog/internal/reference"
	referencedomain "github.com/smallbiznis/rentcatalog/internal/reference/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	reference.Module,
	pricing.Module,
	product.Module,
	auth.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

var registerTagNames sync.Once

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	registerTagNames.Do(useWireFieldNames)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(httpMetrics.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	return NewEngine(obsCfg, httpMetrics)
}

// useWireFieldNames makes validation errors report json/form names instead
// of Go field names.
func useWireFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	addr := strings.TrimSpace(cfg.HTTPAddr)
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server stopped", zap.Error(err))
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
	engine       *gin.Engine
	authsvc      authdomain.Service
	productSvc   productdomain.Service
	referenceSvc referencedomain.Service
	loginLimiter *ratelimit.LoginLimiter
	obsMetrics   *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Authsvc      authdomain.Service
	ProductSvc   productdomain.Service
	ReferenceSvc referencedomain.Service
	LoginLimiter *ratelimit.LoginLimiter `optional:"true"`
	ObsMetrics   *obsmetrics.Metrics     `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		authsvc:      p.Authsvc,
		productSvc:   p.ProductSvc,
		referenceSvc: p.ReferenceSvc,
		loginLimiter: p.LoginLimiter,
		obsMetrics:   p.ObsMetrics,
	}

	svc.registerCatalogRoutes()
	svc.registerAuthRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerCatalogRoutes() {
	s.engine.GET("/products/", s.ListProducts)
	s.engine.GET("/products/:product_id", s.GetProductByID)
	s.engine.GET("/regions", s.ListRegions)
}

func (s *Server) registerAuthRoutes() {
	s.engine.POST("/register/", s.Register)
	s.engine.POST("/token", s.TokenRateLimit(), s.Token)
	s.engine.GET("/users/me/", s.BearerAuthRequired(), s.CurrentUser)
}
