package service

import (
	"testing"

	"skillmap_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func skillsWith(progress ...model.SkillProgress) []model.Skill {
	skills := make([]model.Skill, len(progress))
	for i, p := range progress {
		skills[i] = model.Skill{ID: string(rune('a' + i)), Progress: p}
	}
	return skills
}

func TestPercentComplete(t *testing.T) {
	const (
		m = model.ProgressMastered
		p = model.ProgressInProgress
		n = model.ProgressNotStarted
	)

	tests := []struct {
		name   string
		skills []model.Skill
		expect int
	}{
		{"empty", nil, 0},
		{"half credit rounds up", skillsWith(m, m, p, n), 63},
		{"all mastered", skillsWith(m, m, m), 100},
		{"nothing started", skillsWith(n, n), 0},
		{"single in progress", skillsWith(p), 50},
		{"one third", skillsWith(m, n, n), 33},
		{"two thirds", skillsWith(m, m, n), 67},
		{"one eighth", skillsWith(p, n, n, n), 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, PercentComplete(tt.skills))
		})
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(skillsWith(
		model.ProgressMastered,
		model.ProgressInProgress,
		model.ProgressInProgress,
		model.ProgressNotStarted,
	))

	assert.Equal(t, ProgressSummary{
		Total:           4,
		Mastered:        1,
		InProgress:      2,
		NotStarted:      1,
		PercentComplete: 50,
	}, summary)
}
