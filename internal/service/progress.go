package service

import (
	"math"

	"skillmap_backend/internal/model"
)

// ProgressSummary 列表页和详情页共用的进度统计
type ProgressSummary struct {
	Total           int `json:"total"`
	Mastered        int `json:"mastered"`
	InProgress      int `json:"inProgress"`
	NotStarted      int `json:"notStarted"`
	PercentComplete int `json:"percentComplete"`
}

func Summarize(skills []model.Skill) ProgressSummary {
	s := ProgressSummary{Total: len(skills)}
	for _, skill := range skills {
		switch skill.Progress {
		case model.ProgressMastered:
			s.Mastered++
		case model.ProgressInProgress:
			s.InProgress++
		default:
			s.NotStarted++
		}
	}
	s.PercentComplete = percent(s)
	return s
}

// PercentComplete 进行中的技能记半分，四舍五入（远离零）
func PercentComplete(skills []model.Skill) int {
	return Summarize(skills).PercentComplete
}

func percent(s ProgressSummary) int {
	if s.Total == 0 {
		return 0
	}
	credit := float64(s.Mastered) + 0.5*float64(s.InProgress)
	return int(math.Round(credit / float64(s.Total) * 100))
}
