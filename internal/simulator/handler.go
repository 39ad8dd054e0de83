package simulator

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luki/plantcare/internal/logger"
)

// Handler serves the device endpoints backed by a Soil model.
type Handler struct {
	soil    *Soil
	metrics *Metrics
	log     *logger.Logger
	now     func() time.Time
}

// NewHandler wires the HTTP layer to the soil model.
func NewHandler(soil *Soil, metrics *Metrics, log *logger.Logger) *Handler {
	return &Handler{soil: soil, metrics: metrics, log: log, now: time.Now}
}

// InitRoutes builds the gin router.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", h.health)
	router.GET("/gethumidity", h.getHumidity)
	router.POST("/startmotor", h.startMotor)
	router.GET("/metrics", gin.WrapH(h.metrics.Handler()))

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) getHumidity(c *gin.Context) {
	h.soil.Step(h.now())
	raw := h.soil.Raw()
	h.metrics.HumidityRequests.Inc()
	h.metrics.SoilRaw.Set(float64(raw))
	h.log.Debugw("humidity served", "raw", raw)
	c.JSON(http.StatusOK, gin.H{"humidity": raw})
}

func (h *Handler) startMotor(c *gin.Context) {
	h.soil.Step(h.now())
	before, after := h.soil.Water()
	runID := uuid.NewString()
	h.metrics.MotorStarts.Inc()
	h.metrics.SoilRaw.Set(float64(after))
	h.log.Infow("motor started", "run_id", runID, "raw_before", before, "raw_after", after)
	c.JSON(http.StatusOK, gin.H{
		"status":     "started",
		"run_id":     runID,
		"raw_before": before,
		"raw_after":  after,
	})
}
