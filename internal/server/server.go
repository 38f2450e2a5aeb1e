// Package server exposes the filter options and forecast pipeline over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/iwvelando/sales-forecast/internal/dataset"
	"github.com/iwvelando/sales-forecast/internal/forecast"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Handler serves the forecast API over a loaded record store.
type Handler struct {
	logger  *zap.Logger
	store   *dataset.Store
	version string
}

// NewHandler constructs the API handler for the given store.
func NewHandler(logger *zap.Logger, store *dataset.Store, version string) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	return &Handler{logger: logger, store: store, version: trimmedVersion}
}

// New builds the echo application with middleware and routes registered.
func New(logger *zap.Logger, store *dataset.Store, version string) *echo.Echo {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(requestLogger(logger))

	h := NewHandler(logger, store, version)
	h.RegisterRoutes(e)
	return e
}

// RegisterRoutes attaches the API routes to the echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/options", h.GetOptions)
	api.GET("/forecast", h.GetForecast)
	api.GET("/version", h.GetVersion)
	e.GET("/healthz", h.GetHealth)
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetOptions resolves the cascading option lists for the selections carried in
// the query string. Empty lists are a valid response, never an error.
func (h *Handler) GetOptions(c echo.Context) error {
	sel := selectionFromQuery(c)
	options := forecast.Options(h.store.Records(), sel)
	return c.JSON(http.StatusOK, options)
}

// GetForecast runs one full pipeline pass for the selections carried in the
// query string and returns the historical series, seasonal averages, and the
// twelve-month projection.
func (h *Handler) GetForecast(c echo.Context) error {
	sel := selectionFromQuery(c)

	result, err := forecast.Run(h.logger, h.store, sel)
	if errors.Is(err, forecast.ErrNoMatch) {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error: "no data matches the current filters",
		})
	}
	if err != nil {
		h.logger.Error("failed to compute forecast",
			zap.String("op", "server.GetForecast"),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "failed to compute forecast",
		})
	}

	h.logger.Info("forecast computed",
		zap.String("op", "server.GetForecast"),
		zap.Int("months", len(result.Monthly)),
		zap.Int("targetYear", result.TargetYear),
	)
	return c.JSON(http.StatusOK, result)
}

// GetVersion reports the build version for UI metadata.
func (h *Handler) GetVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// GetHealth reports liveness and the size of the loaded dataset.
func (h *Handler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": h.store.Len(),
	})
}

// selectionFromQuery builds the ephemeral per-request selection. Values may be
// passed as repeated parameters or comma-separated lists; blanks are dropped.
func selectionFromQuery(c echo.Context) forecast.Selection {
	params := c.QueryParams()
	return forecast.Selection{
		Countries: splitParams(params["countries"]),
		Clients:   splitParams(params["clients"]),
		Products:  splitParams(params["products"]),
	}
}

func splitParams(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request handled",
				zap.String("op", "server.request"),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}

// jsonSerializer swaps echo's default encoding/json serializer for goccy/go-json.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to decode request body: %v", err)).SetInternal(err)
	}
	return nil
}
