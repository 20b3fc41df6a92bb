package util

import "errors"

var (
	ErrRoadmapNotFound    = errors.New("roadmap not found")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrInvalidProgress    = errors.New("invalid skill progress")
	ErrInvalidDeadline    = errors.New("deadline must be a positive number of months")
	ErrInvalidDifficulty  = errors.New("invalid resource difficulty")
	ErrEmptyProfession    = errors.New("profession must not be empty")
	ErrUnsupportedStorage = errors.New("unsupported storage type")
)
