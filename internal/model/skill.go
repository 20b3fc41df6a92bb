package model

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

type SkillCategory string

const (
	CategoryTechnical SkillCategory = "technical"
	CategorySoft      SkillCategory = "soft"
	CategoryDomain    SkillCategory = "domain"
	CategoryTool      SkillCategory = "tool"
)

func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryTechnical, CategorySoft, CategoryDomain, CategoryTool:
		return true
	}
	return false
}

type SkillProgress string

const (
	ProgressNotStarted SkillProgress = "not-started"
	ProgressInProgress SkillProgress = "in-progress"
	ProgressMastered   SkillProgress = "mastered"
)

func (p SkillProgress) Valid() bool {
	switch p {
	case ProgressNotStarted, ProgressInProgress, ProgressMastered:
		return true
	}
	return false
}

// Skill 路线图中的一个学习单元
// swagger:model Skill
type Skill struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Description           string          `json:"description"`
	Level                 SkillLevel      `json:"level"`
	Category              SkillCategory   `json:"category"`
	Progress              SkillProgress   `json:"progress"`
	Importance            int             `json:"importance"`
	Prerequisites         []string        `json:"prerequisites,omitempty"`
	Resources             []VideoResource `json:"resources"`
	EstimatedTimeToLearn  string          `json:"estimatedTimeToLearn,omitempty"`
	TargetCompletionMonth int             `json:"targetCompletionMonth"`
	Order                 int             `json:"order"`
}

func (s Skill) Clone() Skill {
	out := s
	if s.Prerequisites != nil {
		out.Prerequisites = append([]string(nil), s.Prerequisites...)
	}
	if s.Resources != nil {
		out.Resources = append([]VideoResource(nil), s.Resources...)
	}
	return out
}

// SkillTemplate 技能目录中的部分技能定义，缺省字段在生成时补齐
type SkillTemplate struct {
	Name                 string        `yaml:"name" json:"name,omitempty"`
	Description          string        `yaml:"description" json:"description,omitempty"`
	Level                SkillLevel    `yaml:"level" json:"level,omitempty"`
	Category             SkillCategory `yaml:"category" json:"category,omitempty"`
	Importance           int           `yaml:"importance" json:"importance,omitempty"`
	Prerequisites        []string      `yaml:"prerequisites" json:"prerequisites,omitempty"`
	EstimatedTimeToLearn string        `yaml:"estimatedTimeToLearn" json:"estimatedTimeToLearn,omitempty"`
}
