package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateNames(t *testing.T, c *SkillCatalog, profession string) []string {
	t.Helper()
	templates := c.Lookup(profession)
	names := make([]string, len(templates))
	for i, tpl := range templates {
		names[i] = tpl.Name
	}
	return names
}

var genericNames = []string{"Communication", "Problem Solving", "Time Management"}

func TestSkillCatalog_Lookup(t *testing.T) {
	catalog, err := NewSkillCatalog("")
	require.NoError(t, err)

	tests := []struct {
		name       string
		profession string
		expect     []string
	}{
		{
			name:       "exact match ignores case",
			profession: "Data Scientist",
			expect: append([]string{
				"Python Programming",
				"Statistics & Probability",
				"Machine Learning",
				"Data Visualization",
			}, genericNames...),
		},
		{
			name:       "input contains key",
			profession: "Senior UX Designer",
			expect:     append([]string{"Design Principles", "Figma", "Usability Testing"}, genericNames...),
		},
		{
			name:       "key contains input picks first declared key",
			profession: "developer",
			expect:     append([]string{"HTML & CSS", "JavaScript", "React", "Web Performance"}, genericNames...),
		},
		{
			name:       "no match falls back to generic skills",
			profession: "Astronaut",
			expect:     genericNames,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, templateNames(t, catalog, tt.profession))
		})
	}
}

func TestSkillCatalog_ExactMatchBeatsEarlierSubstring(t *testing.T) {
	catalog, err := ParseSkillCatalog([]byte(`
professions:
  - key: engineer
    skills:
      - name: Generic Engineering
  - key: software engineer
    skills:
      - name: Programming
generic:
  - name: Communication
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Programming", "Communication"}, templateNames(t, catalog, "Software Engineer"))
	assert.Equal(t, []string{"Generic Engineering", "Communication"}, templateNames(t, catalog, "hardware engineer"))
}

func TestSkillCatalog_EmptyProfessionMatchesFirstKey(t *testing.T) {
	catalog, err := NewSkillCatalog("")
	require.NoError(t, err)

	// 空串是任何键的子串
	names := templateNames(t, catalog, "")
	require.NotEmpty(t, names)
	assert.Equal(t, "Data Structures & Algorithms", names[0])
}

func TestSkillCatalog_LookupReturnsCopies(t *testing.T) {
	catalog, err := NewSkillCatalog("")
	require.NoError(t, err)

	first := catalog.Lookup("data scientist")
	require.NotEmpty(t, first[2].Prerequisites)
	first[2].Prerequisites[0] = "changed"
	first[0].Name = "changed"

	second := catalog.Lookup("data scientist")
	assert.Equal(t, "Python Programming", second[0].Name)
	assert.Equal(t, "Python Programming", second[2].Prerequisites[0])
}

func TestSkillCatalog_Professions(t *testing.T) {
	catalog, err := NewSkillCatalog("")
	require.NoError(t, err)

	professions := catalog.Professions()
	require.NotEmpty(t, professions)
	assert.Equal(t, "software engineer", professions[0])
	assert.Contains(t, professions, "data scientist")
}

func TestParseSkillCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "professions: [\n"},
		{"empty key", "professions:\n  - key: \"  \"\n"},
		{"duplicate key", "professions:\n  - key: Designer\n  - key: designer\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSkillCatalog([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestNewSkillCatalog_MissingFile(t *testing.T) {
	_, err := NewSkillCatalog(t.TempDir() + "/missing.yaml")
	assert.Error(t, err)
}
