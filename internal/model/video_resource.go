package model

import "time"

type ResourceDifficulty string

const (
	DifficultyBeginner     ResourceDifficulty = "beginner"
	DifficultyIntermediate ResourceDifficulty = "intermediate"
	DifficultyAdvanced     ResourceDifficulty = "advanced"
)

func (d ResourceDifficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// DifficultyForLevel expert 没有对应的难度，归入 advanced
func DifficultyForLevel(level SkillLevel) ResourceDifficulty {
	if level == LevelExpert {
		return DifficultyAdvanced
	}
	return ResourceDifficulty(level)
}

// swagger:model VideoResource
type VideoResource struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	URL          string             `json:"url"`
	Channel      string             `json:"channel"`
	Duration     string             `json:"duration"`
	PublishedAt  time.Time          `json:"publishedAt"`
	ThumbnailURL string             `json:"thumbnailUrl"`
	Difficulty   ResourceDifficulty `json:"difficulty"`
	Views        int64              `json:"views,omitempty"`
	Likes        int64              `json:"likes,omitempty"`
	AddedBy      string             `json:"addedBy,omitempty"`
	AddedAt      time.Time          `json:"addedAt"`
}

// VideoResourceDraft 添加资源时由调用方提供的字段，id 与 addedAt 由存储分配
type VideoResourceDraft struct {
	Title        string             `json:"title" binding:"required,max=255"`
	URL          string             `json:"url" binding:"required,url"`
	Channel      string             `json:"channel"`
	Duration     string             `json:"duration"`
	PublishedAt  time.Time          `json:"publishedAt"`
	ThumbnailURL string             `json:"thumbnailUrl"`
	Difficulty   ResourceDifficulty `json:"difficulty"`
	Views        int64              `json:"views"`
	Likes        int64              `json:"likes"`
	AddedBy      string             `json:"addedBy"`
}
