package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/solriso/reservation-service/client"
	"github.com/solriso/reservation-service/config"
	"github.com/solriso/reservation-service/db"
	"github.com/solriso/reservation-service/services"
	"github.com/solriso/reservation-service/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}

	// Setup logging.
	logger := log.NewLogfmtLogger(os.Stderr)
	httpLogger := log.With(logger, "service", "http", "component", "reservation")

	utils.InitValidator()

	store, err := db.Open(cfg.PGDSN)
	if err != nil {
		level.Error(logger).Log("msg", "store unavailable", "err", err)
		os.Exit(1)
	}

	// Setup metrics.
	reg := prometheus.NewRegistry()
	requestsTotal := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests handled.",
	}, []string{"method", "path", "code"})
	requestDuration := promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request handling time.",
		Buckets: []float64{0.001, 0.01, 0.1, 0.3, 0.6, 1, 3, 6, 9, 20, 30, 60, 90, 120},
	}, []string{"method", "path"})

	// Setup metric for panic recoveries.
	panicsTotal := promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "http_req_panics_recovered_total",
		Help: "Total number of HTTP requests recovered from internal panic.",
	})

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		requestLogger(httpLogger),
		requestMetrics(requestsTotal, requestDuration),
		gin.CustomRecovery(func(c *gin.Context, p any) {
			panicsTotal.Inc()
			level.Error(httpLogger).
				Log("msg", "recovered from panic", "panic", p, "stack", debug.Stack())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}),
	)

	srv := services.NewServer(
		store,
		client.NewCEPClient(cfg.ViaCEPURL, logger),
		logger,
		cfg.LogoPath,
	)
	services.RegisterRoutes(router, srv)

	// Thin browser client.
	router.StaticFile("/", "./public/index.html")
	router.Static("/js", "./public/js")
	router.Static("/imagens", "./public/imagens")

	g := &run.Group{}
	apiSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	g.Add(func() error {
		level.Info(logger).Log("msg", "starting HTTP server", "addr", apiSrv.Addr)
		return apiSrv.ListenAndServe()
	}, func(error) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := apiSrv.Shutdown(ctx); err != nil {
			level.Error(logger).Log("msg", "failed to stop HTTP server", "err", err)
		}
	})

	metricsSrv := &http.Server{Addr: cfg.MetricsAddr}
	g.Add(func() error {
		m := http.NewServeMux()
		m.Handle("/metrics", promhttp.HandlerFor(
			reg,
			promhttp.HandlerOpts{
				EnableOpenMetrics: true,
			},
		))
		metricsSrv.Handler = m
		level.Info(logger).Log("msg", "starting metrics server", "addr", metricsSrv.Addr)
		return metricsSrv.ListenAndServe()
	}, func(error) {
		if err := metricsSrv.Close(); err != nil {
			level.Error(logger).Log("msg", "failed to stop metrics server", "err", err)
		}
	})

	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))

	if err := g.Run(); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func requestLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		lg := level.Info(logger)
		if c.Writer.Status() >= http.StatusInternalServerError {
			lg = level.Error(logger)
		}
		_ = lg.Log(
			"msg", "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

func requestMetrics(reqs *prometheus.CounterVec, dur *prometheus.HistogramVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		reqs.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		dur.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
