package service

import (
	"math"

	"skillmap_backend/internal/model"
)

const (
	defaultSkillName        = "Unnamed Skill"
	defaultSkillDescription = "No description available"
	defaultSkillImportance  = 5
)

type IDGenerator func() string

type SkillLookup interface {
	Lookup(profession string) []model.SkillTemplate
}

type ResourceProvider interface {
	Mock(skillName string, level model.SkillLevel) []model.VideoResource
}

// RoadmapGenerator 根据目标生成初始技能列表
type RoadmapGenerator struct {
	Catalog   SkillLookup
	Resources ResourceProvider
	NewID     IDGenerator
}

func NewRoadmapGenerator(catalog SkillLookup, resources ResourceProvider, newID IDGenerator) *RoadmapGenerator {
	if newID == nil {
		newID = model.GenerateUUID
	}
	return &RoadmapGenerator{Catalog: catalog, Resources: resources, NewID: newID}
}

// Generate 职业技能在前、通用技能在后，目标月份按下标均匀分布到期限内
func (g *RoadmapGenerator) Generate(goal model.Goal) []model.Skill {
	templates := g.Catalog.Lookup(goal.Profession)
	total := len(templates)

	skills := make([]model.Skill, 0, total)
	for i, t := range templates {
		skill := model.Skill{
			ID:                    g.NewID(),
			Name:                  t.Name,
			Description:           t.Description,
			Level:                 t.Level,
			Category:              t.Category,
			Progress:              model.ProgressNotStarted,
			Importance:            t.Importance,
			Prerequisites:         t.Prerequisites,
			EstimatedTimeToLearn:  t.EstimatedTimeToLearn,
			TargetCompletionMonth: TargetCompletionMonth(i, total, goal.Deadline),
			Order:                 i,
		}
		if skill.Name == "" {
			skill.Name = defaultSkillName
		}
		if skill.Description == "" {
			skill.Description = defaultSkillDescription
		}
		if skill.Level == "" {
			skill.Level = model.LevelBeginner
		}
		if skill.Category == "" {
			skill.Category = model.CategoryTechnical
		}
		if skill.Importance == 0 {
			skill.Importance = defaultSkillImportance
		}

		skill.Resources = []model.VideoResource{}
		if g.Resources != nil {
			skill.Resources = g.Resources.Mock(skill.Name, skill.Level)
		}

		skills = append(skills, skill)
	}
	return skills
}

// TargetCompletionMonth ceil((index+1) * deadline / total)，total 为 0 时返回期限本身
func TargetCompletionMonth(index, total, deadline int) int {
	if total == 0 {
		return deadline
	}
	return int(math.Ceil(float64((index+1)*deadline) / float64(total)))
}
