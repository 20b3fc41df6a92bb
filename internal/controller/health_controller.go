package controller

import (
	"skillmap_backend/internal/service"
	"skillmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store       *service.RoadmapStore
	StorageType string
}

func NewHealthController(store *service.RoadmapStore, storageType string) *HealthController {
	return &HealthController{Store: store, StorageType: storageType}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"storage":  c.StorageType,
			"roadmaps": c.Store.Count(),
		},
	})
}
