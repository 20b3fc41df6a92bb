package service

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"skillmap_backend/internal/model"
	"skillmap_backend/internal/util"
)

const mockResourcesPerSkill = 3

var mockChannels = []string{
	"freeCodeCamp.org",
	"Traversy Media",
	"The Net Ninja",
	"Fireship",
	"CS Dojo",
	"Academind",
}

// ResourceMockProvider 为新生成的技能填充演示用的视频资源，不访问任何外部服务
type ResourceMockProvider struct {
	mu    sync.Mutex
	rng   *rand.Rand
	newID IDGenerator
	now   func() time.Time
}

func NewResourceMockProvider(rng *rand.Rand, newID IDGenerator, now func() time.Time) *ResourceMockProvider {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if newID == nil {
		newID = model.GenerateUUID
	}
	if now == nil {
		now = time.Now
	}
	return &ResourceMockProvider{rng: rng, newID: newID, now: now}
}

func (p *ResourceMockProvider) Mock(skillName string, level model.SkillLevel) []model.VideoResource {
	p.mu.Lock()
	defer p.mu.Unlock()

	levelTitle := titleCase(string(level))
	titles := [mockResourcesPerSkill]string{
		fmt.Sprintf("%s Tutorial for %ss", skillName, levelTitle),
		fmt.Sprintf("Complete %s Course - %s Level", skillName, levelTitle),
		fmt.Sprintf("%s Crash Course", skillName),
	}

	now := p.now()
	resources := make([]model.VideoResource, 0, mockResourcesPerSkill)
	for i, title := range titles {
		daysAgo := p.rng.Intn(100) + i*7
		resources = append(resources, model.VideoResource{
			ID:           p.newID(),
			Title:        title,
			URL:          util.PlaceholderVideoURL,
			Channel:      mockChannels[p.rng.Intn(len(mockChannels))],
			Duration:     fmt.Sprintf("%d:%02d", 5+p.rng.Intn(40), p.rng.Intn(60)),
			PublishedAt:  now.AddDate(0, 0, -daysAgo),
			ThumbnailURL: util.PlaceholderThumbnailURL,
			Difficulty:   model.DifficultyForLevel(level),
			Views:        int64(p.rng.Intn(1000000)),
			Likes:        int64(p.rng.Intn(50000)),
			AddedAt:      now,
		})
	}
	return resources
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
