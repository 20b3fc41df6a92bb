package model

import "time"

// Goal 用户声明的职业目标，Deadline 以月为单位
// swagger:model Goal
type Goal struct {
	Title          string    `json:"title"`
	Profession     string    `json:"profession"`
	ShortTermGoals string    `json:"shortTermGoals,omitempty"`
	LongTermGoals  string    `json:"longTermGoals,omitempty"`
	Deadline       int       `json:"deadline"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Roadmap 一个目标及其有序技能列表
// swagger:model Roadmap
type Roadmap struct {
	ID             string    `json:"id"`
	Goal           Goal      `json:"goal"`
	Skills         []Skill   `json:"skills"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	LastAccessedAt time.Time `json:"lastAccessedAt"`
}

func (r *Roadmap) Clone() *Roadmap {
	if r == nil {
		return nil
	}
	out := *r
	if r.Skills != nil {
		out.Skills = make([]Skill, len(r.Skills))
		for i, s := range r.Skills {
			out.Skills[i] = s.Clone()
		}
	}
	return &out
}

// FindSkill 返回技能下标，未找到返回 -1
func (r *Roadmap) FindSkill(skillID string) int {
	for i := range r.Skills {
		if r.Skills[i].ID == skillID {
			return i
		}
	}
	return -1
}
