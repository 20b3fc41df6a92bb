package controller

import (
	"io"

	"skillmap_backend/internal/model"
	"skillmap_backend/internal/service"
	"skillmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const eventBuffer = 16

type RoadmapController struct {
	Store *service.RoadmapStore
}

func NewRoadmapController(store *service.RoadmapStore) *RoadmapController {
	return &RoadmapController{Store: store}
}

// @Summary 创建路线图
// @Description 根据职业目标生成技能路线图并设为当前路线图
// @Tags 路线图
// @Accept json
// @Produce json
// @Param goal body service.CreateRoadmapRequest true "职业目标"
// @Success 201 {object} util.Response{data=service.RoadmapView}
// @Failure 400 {object} util.Response
// @Router /api/roadmaps [post]
func (c *RoadmapController) CreateRoadmap(ctx *gin.Context) {
	var req service.CreateRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Deadline <= 0 {
		util.BadRequest(ctx, util.ErrInvalidDeadline.Error())
		return
	}

	roadmap, err := c.Store.Create(ctx.Request.Context(), req.Goal())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, service.NewRoadmapView(roadmap))
}

// @Summary 路线图列表
// @Description 返回所有路线图及各自的完成度
// @Tags 路线图
// @Produce json
// @Success 200 {object} util.Response{data=[]service.RoadmapView}
// @Router /api/roadmaps [get]
func (c *RoadmapController) ListRoadmaps(ctx *gin.Context) {
	roadmaps := c.Store.List()
	views := make([]service.RoadmapView, len(roadmaps))
	for i, r := range roadmaps {
		views[i] = service.NewRoadmapView(r)
	}
	util.Success(ctx, views)
}

// @Summary 当前路线图
// @Tags 路线图
// @Produce json
// @Success 200 {object} util.Response{data=service.RoadmapView}
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/current [get]
func (c *RoadmapController) GetCurrentRoadmap(ctx *gin.Context) {
	roadmap, ok := c.Store.Current()
	if !ok {
		util.NotFoundWithMessage(ctx, "no roadmap is currently open")
		return
	}
	util.Success(ctx, service.NewRoadmapView(roadmap))
}

// @Summary 获取路线图
// @Description 读取路线图会刷新其最近访问时间并设为当前路线图
// @Tags 路线图
// @Produce json
// @Param id path string true "路线图ID"
// @Success 200 {object} util.Response{data=service.RoadmapView}
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/{id} [get]
func (c *RoadmapController) GetRoadmap(ctx *gin.Context) {
	roadmap, ok := c.Store.Get(ctx.Request.Context(), ctx.Param("id"))
	if !ok {
		util.NotFoundWithMessage(ctx, util.ErrRoadmapNotFound.Error())
		return
	}
	util.Success(ctx, service.NewRoadmapView(roadmap))
}

// @Summary 保存路线图
// @Description 按ID插入或替换整份路线图，替换时保留创建时间
// @Tags 路线图
// @Accept json
// @Produce json
// @Param id path string true "路线图ID"
// @Param roadmap body model.Roadmap true "路线图"
// @Success 200 {object} util.Response{data=service.RoadmapView}
// @Failure 400 {object} util.Response
// @Router /api/roadmaps/{id} [put]
func (c *RoadmapController) SaveRoadmap(ctx *gin.Context) {
	var roadmap model.Roadmap
	if err := ctx.ShouldBindJSON(&roadmap); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	roadmap.ID = ctx.Param("id")

	if msg := validateSkills(roadmap.Skills); msg != "" {
		util.BadRequest(ctx, msg)
		return
	}

	if err := c.Store.Save(ctx.Request.Context(), &roadmap); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	c.respondWithRoadmap(ctx, roadmap.ID)
}

// @Summary 删除路线图
// @Tags 路线图
// @Param id path string true "路线图ID"
// @Success 200 {object} util.Response
// @Router /api/roadmaps/{id} [delete]
func (c *RoadmapController) DeleteRoadmap(ctx *gin.Context) {
	if err := c.Store.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 更新技能进度
// @Tags 路线图
// @Accept json
// @Produce json
// @Param id path string true "路线图ID"
// @Param skillId path string true "技能ID"
// @Param body body service.UpdateProgressRequest true "进度"
// @Success 200 {object} util.Response{data=service.RoadmapView}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/{id}/skills/{skillId}/progress [patch]
func (c *RoadmapController) UpdateSkillProgress(ctx *gin.Context) {
	var req service.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !req.Progress.Valid() {
		util.BadRequest(ctx, util.ErrInvalidProgress.Error())
		return
	}

	id := ctx.Param("id")
	if err := c.Store.UpdateSkillProgress(ctx.Request.Context(), id, ctx.Param("skillId"), req.Progress); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	c.respondWithRoadmap(ctx, id)
}

// @Summary 调整技能顺序
// @Description 用提交的列表替换技能，order 按新位置重新编号
// @Tags 路线图
// @Accept json
// @Produce json
// @Param id path string true "路线图ID"
// @Param body body service.UpdateOrderRequest true "排序后的技能"
// @Success 200 {object} util.Response{data=service.RoadmapView}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/{id}/skills/order [put]
func (c *RoadmapController) UpdateSkillOrder(ctx *gin.Context) {
	var req service.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if msg := validateSkills(req.Skills); msg != "" {
		util.BadRequest(ctx, msg)
		return
	}

	id := ctx.Param("id")
	if err := c.Store.UpdateSkillOrder(ctx.Request.Context(), id, req.Skills); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	c.respondWithRoadmap(ctx, id)
}

// @Summary 添加视频资源
// @Tags 路线图
// @Accept json
// @Produce json
// @Param id path string true "路线图ID"
// @Param skillId path string true "技能ID"
// @Param body body model.VideoResourceDraft true "视频资源"
// @Success 201 {object} util.Response{data=model.VideoResource}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/{id}/skills/{skillId}/resources [post]
func (c *RoadmapController) AddVideoResource(ctx *gin.Context) {
	var draft model.VideoResourceDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if draft.Difficulty == "" {
		draft.Difficulty = model.DifficultyBeginner
	}
	if !draft.Difficulty.Valid() {
		util.BadRequest(ctx, util.ErrInvalidDifficulty.Error())
		return
	}
	if user := util.GetUserFromContext(ctx); user != nil && draft.AddedBy == "" {
		draft.AddedBy = user.Name
	}

	resource, err := c.Store.AddVideoResource(ctx.Request.Context(), ctx.Param("id"), ctx.Param("skillId"), draft)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if resource == nil {
		util.NotFoundWithMessage(ctx, util.ErrSkillNotFound.Error())
		return
	}
	util.Created(ctx, resource)
}

// @Summary 移除视频资源
// @Tags 路线图
// @Produce json
// @Param id path string true "路线图ID"
// @Param skillId path string true "技能ID"
// @Param resourceId path string true "资源ID"
// @Success 200 {object} util.Response{data=service.RoadmapView}
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/{id}/skills/{skillId}/resources/{resourceId} [delete]
func (c *RoadmapController) RemoveVideoResource(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.Store.RemoveVideoResource(ctx.Request.Context(), id, ctx.Param("skillId"), ctx.Param("resourceId")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	c.respondWithRoadmap(ctx, id)
}

// @Summary 路线图变更事件流
// @Description 以 server-sent events 推送存储的变更通知
// @Tags 路线图
// @Produce text/event-stream
// @Router /api/roadmaps/events [get]
func (c *RoadmapController) StreamEvents(ctx *gin.Context) {
	events := make(chan service.StoreEvent, eventBuffer)
	unsubscribe := c.Store.Subscribe(func(e service.StoreEvent) {
		// 客户端处理不过来时丢弃，不能阻塞存储
		select {
		case events <- e:
		default:
		}
	})
	defer unsubscribe()

	done := ctx.Request.Context().Done()
	ctx.Stream(func(w io.Writer) bool {
		select {
		case <-done:
			return false
		case e := <-events:
			ctx.SSEvent("roadmap", e)
			return true
		}
	})
}

// respondWithRoadmap 修改接口统一返回最新的路线图；路线图不存在时 404
func (c *RoadmapController) respondWithRoadmap(ctx *gin.Context, id string) {
	for _, r := range c.Store.List() {
		if r.ID == id {
			util.Success(ctx, service.NewRoadmapView(r))
			return
		}
	}
	util.NotFoundWithMessage(ctx, util.ErrRoadmapNotFound.Error())
}

func validateSkills(skills []model.Skill) string {
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		if s.ID == "" {
			return "skill id must not be empty"
		}
		if seen[s.ID] {
			return "duplicate skill id " + s.ID
		}
		seen[s.ID] = true
		if s.Progress != "" && !s.Progress.Valid() {
			return util.ErrInvalidProgress.Error()
		}
	}
	return ""
}
