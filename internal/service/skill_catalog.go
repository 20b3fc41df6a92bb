package service

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"skillmap_backend/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

type catalogEntry struct {
	Key    string                `yaml:"key"`
	Skills []model.SkillTemplate `yaml:"skills"`
}

type catalogDocument struct {
	Professions []catalogEntry        `yaml:"professions"`
	Generic     []model.SkillTemplate `yaml:"generic"`
}

// SkillCatalog 职业到技能模板的静态映射，按声明顺序匹配
type SkillCatalog struct {
	entries []catalogEntry
	generic []model.SkillTemplate
}

// NewSkillCatalog 加载内置目录；path 非空时改为读取该 YAML 文件
func NewSkillCatalog(path string) (*SkillCatalog, error) {
	data := defaultCatalogYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read skill catalog: %w", err)
		}
		data = b
	}
	return ParseSkillCatalog(data)
}

func ParseSkillCatalog(data []byte) (*SkillCatalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse skill catalog: %w", err)
	}

	seen := make(map[string]bool, len(doc.Professions))
	for i := range doc.Professions {
		key := strings.ToLower(strings.TrimSpace(doc.Professions[i].Key))
		// 空键会被任何输入以子串方式命中
		if key == "" {
			return nil, fmt.Errorf("skill catalog entry %d has an empty key", i)
		}
		if seen[key] {
			return nil, fmt.Errorf("skill catalog key %q declared twice", key)
		}
		seen[key] = true
		doc.Professions[i].Key = key
	}

	return &SkillCatalog{entries: doc.Professions, generic: doc.Generic}, nil
}

// Professions 按声明顺序返回目录中的职业键
func (c *SkillCatalog) Professions() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Lookup 精确匹配优先，其次是第一个互为子串的键，最后只返回通用技能。
// 短键可能误命中不相关的长职业名，这是已知行为。
func (c *SkillCatalog) Lookup(profession string) []model.SkillTemplate {
	normalized := strings.ToLower(profession)

	for _, e := range c.entries {
		if e.Key == normalized {
			return c.withGeneric(e.Skills)
		}
	}

	for _, e := range c.entries {
		if strings.Contains(normalized, e.Key) || strings.Contains(e.Key, normalized) {
			return c.withGeneric(e.Skills)
		}
	}

	return c.withGeneric(nil)
}

func (c *SkillCatalog) withGeneric(specific []model.SkillTemplate) []model.SkillTemplate {
	out := make([]model.SkillTemplate, 0, len(specific)+len(c.generic))
	for _, group := range [][]model.SkillTemplate{specific, c.generic} {
		for _, t := range group {
			if t.Prerequisites != nil {
				t.Prerequisites = append([]string(nil), t.Prerequisites...)
			}
			out = append(out, t)
		}
	}
	return out
}
