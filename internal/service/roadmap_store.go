package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"skillmap_backend/internal/model"
	"skillmap_backend/internal/repository"
	"skillmap_backend/pkg/logger"
	"skillmap_backend/pkg/tracing"

	"go.uber.org/zap"
)

const DefaultStorageKey = "roadmaps"

type StoreEventKind string

const (
	EventCreated         StoreEventKind = "created"
	EventSaved           StoreEventKind = "saved"
	EventAccessed        StoreEventKind = "accessed"
	EventProgress        StoreEventKind = "progress"
	EventReordered       StoreEventKind = "reordered"
	EventResourceAdded   StoreEventKind = "resource-added"
	EventResourceRemoved StoreEventKind = "resource-removed"
	EventDeleted         StoreEventKind = "deleted"
)

// StoreEvent 每次状态变化后发布给订阅者
type StoreEvent struct {
	Kind      StoreEventKind `json:"kind"`
	RoadmapID string         `json:"roadmapId"`
	Count     int            `json:"count"`
	At        time.Time      `json:"at"`
}

// LoadWarning 持久化数据无法解析时返回，存储已回退为空集合，可以继续运行
type LoadWarning struct {
	Key string
	Err error
}

func (w *LoadWarning) Error() string {
	return fmt.Sprintf("stored roadmaps under %q are unreadable, starting empty: %v", w.Key, w.Err)
}

func (w *LoadWarning) Unwrap() error {
	return w.Err
}

type SkillGenerator interface {
	Generate(goal model.Goal) []model.Skill
}

type StoreOption func(*RoadmapStore)

func WithClock(now func() time.Time) StoreOption {
	return func(s *RoadmapStore) { s.now = now }
}

func WithIDGenerator(newID IDGenerator) StoreOption {
	return func(s *RoadmapStore) { s.newID = newID }
}

func WithStorageKey(key string) StoreOption {
	return func(s *RoadmapStore) { s.key = key }
}

// RoadmapStore 路线图集合与当前路线图的唯一持有者。
// 所有修改同步写回 BlobStore，读取返回深拷贝。
type RoadmapStore struct {
	mu        sync.Mutex
	blob      repository.BlobStore
	generator SkillGenerator
	key       string
	newID     IDGenerator
	now       func() time.Time

	roadmaps  []*model.Roadmap
	currentID string

	subMu       sync.Mutex
	subscribers map[int]func(StoreEvent)
	nextSub     int
}

func NewRoadmapStore(blob repository.BlobStore, generator SkillGenerator, opts ...StoreOption) *RoadmapStore {
	s := &RoadmapStore{
		blob:        blob,
		generator:   generator,
		key:         DefaultStorageKey,
		newID:       model.GenerateUUID,
		now:         time.Now,
		subscribers: make(map[int]func(StoreEvent)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load 从持久化存储恢复集合。键不存在时为空集合；内容无法解析时回退为空并返回 *LoadWarning。
func (s *RoadmapStore) Load(ctx context.Context) error {
	ctx, span := tracing.StartStoreSpan(ctx, "load", s.key, 0)
	defer span.End()

	raw, err := s.blob.Get(ctx, s.key)
	if errors.Is(err, repository.ErrBlobNotFound) {
		s.reset(nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load roadmaps: %w", err)
	}

	var roadmaps []*model.Roadmap
	if err := json.Unmarshal([]byte(raw), &roadmaps); err != nil {
		s.reset(nil)
		warning := &LoadWarning{Key: s.key, Err: err}
		logger.Log.Warn("Failed to parse stored roadmaps", zap.String("key", s.key), zap.Error(err))
		return warning
	}

	kept := roadmaps[:0]
	for _, r := range roadmaps {
		if r != nil {
			kept = append(kept, r)
		}
	}
	s.reset(kept)
	logger.Log.Info("Roadmaps loaded", zap.String("key", s.key), zap.Int("count", len(kept)))
	return nil
}

func (s *RoadmapStore) reset(roadmaps []*model.Roadmap) {
	s.mu.Lock()
	s.roadmaps = roadmaps
	s.currentID = ""
	s.mu.Unlock()
}

// Create 生成技能并追加新路线图，同时设为当前路线图
func (s *RoadmapStore) Create(ctx context.Context, goal model.Goal) (*model.Roadmap, error) {
	skills := s.generator.Generate(goal)

	s.mu.Lock()
	now := s.now()
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = now
	}
	roadmap := &model.Roadmap{
		ID:             s.newID(),
		Goal:           goal,
		Skills:         skills,
		CreatedAt:      now,
		UpdatedAt:      now,
		LastAccessedAt: now,
	}
	s.roadmaps = append(s.roadmaps, roadmap)
	s.currentID = roadmap.ID
	out := roadmap.Clone()
	err := s.persistLocked(ctx)
	event := s.eventLocked(EventCreated, roadmap.ID)
	s.mu.Unlock()

	s.publish(event)
	return out, err
}

// Save 按 id 插入或替换。替换时保留 createdAt 与目标创建时间。
func (s *RoadmapStore) Save(ctx context.Context, roadmap *model.Roadmap) error {
	incoming := roadmap.Clone()

	s.mu.Lock()
	now := s.now()
	if incoming.ID == "" {
		incoming.ID = s.newID()
	}

	if idx := s.indexLocked(incoming.ID); idx >= 0 {
		existing := s.roadmaps[idx]
		incoming.CreatedAt = existing.CreatedAt
		incoming.Goal.CreatedAt = existing.Goal.CreatedAt
		incoming.UpdatedAt = existing.UpdatedAt
		incoming.LastAccessedAt = existing.LastAccessedAt
		touch(incoming, now)
		s.roadmaps[idx] = incoming
	} else {
		incoming.CreatedAt = now
		incoming.UpdatedAt = now
		incoming.LastAccessedAt = now
		if incoming.Goal.CreatedAt.IsZero() {
			incoming.Goal.CreatedAt = now
		}
		s.roadmaps = append(s.roadmaps, incoming)
	}
	s.currentID = incoming.ID
	roadmap.ID = incoming.ID
	err := s.persistLocked(ctx)
	event := s.eventLocked(EventSaved, incoming.ID)
	s.mu.Unlock()

	s.publish(event)
	return err
}

// Get 找到时刷新 lastAccessedAt 并设为当前路线图
func (s *RoadmapStore) Get(ctx context.Context, id string) (*model.Roadmap, bool) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, false
	}
	r := s.roadmaps[idx]
	r.LastAccessedAt = later(s.now(), r.LastAccessedAt)
	s.currentID = r.ID
	out := r.Clone()
	if err := s.persistLocked(ctx); err != nil {
		logger.Log.Error("Failed to persist roadmap access", zap.String("roadmapId", id), zap.Error(err))
	}
	event := s.eventLocked(EventAccessed, id)
	s.mu.Unlock()

	s.publish(event)
	return out, true
}

// List 按创建顺序返回所有路线图，不计入访问
func (s *RoadmapStore) List() []*model.Roadmap {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Roadmap, len(s.roadmaps))
	for i, r := range s.roadmaps {
		out[i] = r.Clone()
	}
	return out
}

func (s *RoadmapStore) Current() (*model.Roadmap, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(s.currentID)
	if idx < 0 {
		return nil, false
	}
	return s.roadmaps[idx].Clone(), true
}

func (s *RoadmapStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.roadmaps)
}

func (s *RoadmapStore) UpdateSkillProgress(ctx context.Context, roadmapID, skillID string, progress model.SkillProgress) error {
	return s.mutate(ctx, EventProgress, roadmapID, func(r *model.Roadmap) {
		if i := r.FindSkill(skillID); i >= 0 {
			r.Skills[i].Progress = progress
		}
	})
}

// UpdateSkillOrder 用给定列表替换技能，order 重新按下标编号
func (s *RoadmapStore) UpdateSkillOrder(ctx context.Context, roadmapID string, skills []model.Skill) error {
	reordered := make([]model.Skill, len(skills))
	for i, skill := range skills {
		reordered[i] = skill.Clone()
		reordered[i].Order = i
	}
	return s.mutate(ctx, EventReordered, roadmapID, func(r *model.Roadmap) {
		r.Skills = reordered
	})
}

// AddVideoResource 分配 id 与 addedAt 后追加到技能资源末尾，返回新资源；技能不存在时返回 nil
func (s *RoadmapStore) AddVideoResource(ctx context.Context, roadmapID, skillID string, draft model.VideoResourceDraft) (*model.VideoResource, error) {
	var added *model.VideoResource
	err := s.mutate(ctx, EventResourceAdded, roadmapID, func(r *model.Roadmap) {
		i := r.FindSkill(skillID)
		if i < 0 {
			return
		}
		resource := model.VideoResource{
			ID:           s.newID(),
			Title:        draft.Title,
			URL:          draft.URL,
			Channel:      draft.Channel,
			Duration:     draft.Duration,
			PublishedAt:  draft.PublishedAt,
			ThumbnailURL: draft.ThumbnailURL,
			Difficulty:   draft.Difficulty,
			Views:        draft.Views,
			Likes:        draft.Likes,
			AddedBy:      draft.AddedBy,
			AddedAt:      s.now(),
		}
		r.Skills[i].Resources = append(r.Skills[i].Resources, resource)
		added = &resource
	})
	return added, err
}

func (s *RoadmapStore) RemoveVideoResource(ctx context.Context, roadmapID, skillID, resourceID string) error {
	return s.mutate(ctx, EventResourceRemoved, roadmapID, func(r *model.Roadmap) {
		i := r.FindSkill(skillID)
		if i < 0 {
			return
		}
		resources := r.Skills[i].Resources
		for j := range resources {
			if resources[j].ID == resourceID {
				kept := make([]model.VideoResource, 0, len(resources)-1)
				kept = append(kept, resources[:j]...)
				kept = append(kept, resources[j+1:]...)
				r.Skills[i].Resources = kept
				return
			}
		}
	})
}

// Delete 删除路线图；若为当前路线图则清空当前
func (s *RoadmapStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.roadmaps = append(s.roadmaps[:idx], s.roadmaps[idx+1:]...)
	if s.currentID == id {
		s.currentID = ""
	}
	err := s.persistLocked(ctx)
	event := s.eventLocked(EventDeleted, id)
	s.mu.Unlock()

	s.publish(event)
	return err
}

// Subscribe 注册变更通知，返回取消函数。回调在锁外同步执行。
func (s *RoadmapStore) Subscribe(fn func(StoreEvent)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subscribers, id)
			s.subMu.Unlock()
		})
	}
}

// mutate 路线图不存在时什么也不做；存在时即使目标技能或资源缺失也会刷新时间戳
func (s *RoadmapStore) mutate(ctx context.Context, kind StoreEventKind, roadmapID string, fn func(r *model.Roadmap)) error {
	s.mu.Lock()
	idx := s.indexLocked(roadmapID)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	r := s.roadmaps[idx]
	fn(r)
	touch(r, s.now())
	err := s.persistLocked(ctx)
	event := s.eventLocked(kind, roadmapID)
	s.mu.Unlock()

	s.publish(event)
	return err
}

func (s *RoadmapStore) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, r := range s.roadmaps {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *RoadmapStore) persistLocked(ctx context.Context) error {
	ctx, span := tracing.StartStoreSpan(ctx, "persist", s.key, len(s.roadmaps))

	roadmaps := s.roadmaps
	if roadmaps == nil {
		roadmaps = []*model.Roadmap{}
	}
	data, err := json.Marshal(roadmaps)
	if err != nil {
		err = fmt.Errorf("encode roadmaps: %w", err)
		tracing.EndWithError(span, err)
		return err
	}
	if err = s.blob.Set(ctx, s.key, string(data)); err != nil {
		logger.Log.Error("Failed to persist roadmaps", zap.String("key", s.key), zap.Error(err))
		err = fmt.Errorf("persist roadmaps: %w", err)
	}
	tracing.EndWithError(span, err)
	return err
}

func (s *RoadmapStore) eventLocked(kind StoreEventKind, id string) StoreEvent {
	return StoreEvent{Kind: kind, RoadmapID: id, Count: len(s.roadmaps), At: s.now()}
}

func (s *RoadmapStore) publish(event StoreEvent) {
	s.subMu.Lock()
	subs := make([]func(StoreEvent), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(event)
	}
}

// touch 时间戳只前进不后退
func touch(r *model.Roadmap, now time.Time) {
	r.UpdatedAt = later(now, r.UpdatedAt)
	r.LastAccessedAt = later(now, r.LastAccessedAt)
}

func later(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}
