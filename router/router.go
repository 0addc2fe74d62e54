package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"titkee.com/techradar/controller"
)

func SetupRouter(radar *controller.RadarController, logger logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger), cors.Default())

	r.GET("/tech-radar", radar.TechRadarHandler)
	r.GET("/test/:selected", radar.DescribeTechHandler)
	return r
}
