package service

import "skillmap_backend/internal/model"

// CreateRoadmapRequest 创建路线图的请求结构，期限为正数由控制器校验
type CreateRoadmapRequest struct {
	Title          string `json:"title" binding:"max=255"`
	Profession     string `json:"profession" binding:"required,max=255"`
	ShortTermGoals string `json:"shortTermGoals" binding:"max=2000"`
	LongTermGoals  string `json:"longTermGoals" binding:"max=2000"`
	Deadline       int    `json:"deadline" binding:"lte=600"`
	Description    string `json:"description" binding:"max=2000"`
}

func (r CreateRoadmapRequest) Goal() model.Goal {
	title := r.Title
	if title == "" {
		title = "Become a " + r.Profession
	}
	return model.Goal{
		Title:          title,
		Profession:     r.Profession,
		ShortTermGoals: r.ShortTermGoals,
		LongTermGoals:  r.LongTermGoals,
		Deadline:       r.Deadline,
		Description:    r.Description,
	}
}

type UpdateProgressRequest struct {
	Progress model.SkillProgress `json:"progress" binding:"required"`
}

type UpdateOrderRequest struct {
	Skills []model.Skill `json:"skills" binding:"required"`
}

type LoginRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email"`
}

// RoadmapView 路线图及其进度统计
type RoadmapView struct {
	*model.Roadmap
	Progress ProgressSummary `json:"progress"`
}

func NewRoadmapView(r *model.Roadmap) RoadmapView {
	return RoadmapView{Roadmap: r, Progress: Summarize(r.Skills)}
}
