package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"titkee.com/techradar/model"
)

// RadarService is what the handlers need from service.RadarService.
type RadarService interface {
	Snapshot() ([]model.TechRecord, error)
	DescribeAll(ctx context.Context, records []model.TechRecord) (string, error)
	DescribeOne(ctx context.Context, records []model.TechRecord, selected, userPrompt string) (string, error)
}

type TechRadarResponse struct {
	TechRadarData []model.TechRecord `json:"techRadarData"`
	Response      string             `json:"response"`
}

type RadarController struct {
	radar  RadarService
	logger logrus.FieldLogger
}

func NewRadarController(radar RadarService, logger logrus.FieldLogger) *RadarController {
	return &RadarController{radar: radar, logger: logger}
}

// TechRadarHandler serves GET /tech-radar.
func (h *RadarController) TechRadarHandler(c *gin.Context) {
	records, err := h.radar.Snapshot()
	if err != nil {
		h.logger.WithError(err).WithField("route", "/tech-radar").Error("error processing tech radar csv")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.radar.DescribeAll(c.Request.Context(), records)
	if err != nil {
		h.logger.WithError(err).WithField("route", "/tech-radar").Error("error describing tech radar")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, TechRadarResponse{TechRadarData: records, Response: answer})
}

// DescribeTechHandler serves GET /test/:selected.
func (h *RadarController) DescribeTechHandler(c *gin.Context) {
	selected := c.Param("selected")
	log := h.logger.WithFields(logrus.Fields{"route": "/test/:selected", "selected": selected})

	records, err := h.radar.Snapshot()
	if err != nil {
		log.WithError(err).Error("error loading tech radar")
		c.String(http.StatusInternalServerError, "%s", err.Error())
		return
	}

	answer, err := h.radar.DescribeOne(c.Request.Context(), records, selected, c.Query("prompt"))
	if err != nil {
		if model.IsKind(err, model.KindNotFound) {
			log.WithError(err).Info("tech not described")
			c.String(http.StatusNotFound, "%s", err.Error())
			return
		}
		log.WithError(err).Error("error describing tech")
		c.String(http.StatusInternalServerError, "%s", err.Error())
		return
	}

	c.String(http.StatusOK, "%s", answer)
}
