package controller

import (
	"skillmap_backend/internal/service"
	"skillmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog *service.SkillCatalog
}

func NewCatalogController(catalog *service.SkillCatalog) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// @Summary 职业列表
// @Description 返回技能目录中已知的职业，按匹配顺序排列
// @Tags 技能目录
// @Produce json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/catalog/professions [get]
func (c *CatalogController) ListProfessions(ctx *gin.Context) {
	util.Success(ctx, c.Catalog.Professions())
}

// @Summary 查询技能模板
// @Description 按职业查找技能模板，未匹配时只返回通用技能
// @Tags 技能目录
// @Produce json
// @Param profession query string true "职业"
// @Success 200 {object} util.Response{data=[]model.SkillTemplate}
// @Failure 400 {object} util.Response
// @Router /api/catalog/lookup [get]
func (c *CatalogController) Lookup(ctx *gin.Context) {
	profession := ctx.Query("profession")
	if profession == "" {
		util.BadRequest(ctx, util.ErrEmptyProfession.Error())
		return
	}
	util.Success(ctx, c.Catalog.Lookup(profession))
}
