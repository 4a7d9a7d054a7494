package skills

import (
	"fmt"
	"sort"
	"strings"

	"vaadocs/pkg/fileops"
)

// maxToolNameLength keeps generated MCP tool names within a sane bound.
const maxToolNameLength = 64

// RegisteredSkill pairs a skill with the MCP tool name it is exposed under.
type RegisteredSkill struct {
	Skill    Skill
	ToolName string
}

// Registry assigns a unique, sanitized tool name to every skill. Names are
// derived from the skill's declared name (falling back to the file name) and
// deduplicated with a numeric suffix.
type Registry struct {
	registered []RegisteredSkill
	byToolName map[string]int
}

// NewRegistry builds a registry from loaded skills. Skills whose names
// cannot be sanitized into a valid identifier are dropped with an error in
// the returned slice of problems; the registry itself is always usable.
func NewRegistry(loaded []Skill) (*Registry, []error) {
	r := &Registry{
		byToolName: make(map[string]int),
	}

	var problems []error

	for _, skill := range loaded {
		name, err := toolNameFor(skill)
		if err != nil {
			problems = append(problems, fmt.Errorf("skill %q: %w", skill.FilePath, err))
			continue
		}

		// Suffix until free: a literal skill name may already occupy a
		// suffixed slot (e.g. a skill named "grid_2").
		if _, taken := r.byToolName[name]; taken {
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s_%d", name, n)
				if _, taken := r.byToolName[candidate]; !taken {
					name = candidate
					break
				}
			}
		}

		r.registered = append(r.registered, RegisteredSkill{Skill: skill, ToolName: name})
		r.byToolName[name] = len(r.registered) - 1
	}

	return r, problems
}

// All returns every registered skill in registration order.
func (r *Registry) All() []RegisteredSkill {
	return r.registered
}

// Lookup returns the skill registered under toolName.
func (r *Registry) Lookup(toolName string) (*RegisteredSkill, bool) {
	i, ok := r.byToolName[toolName]
	if !ok {
		return nil, false
	}
	return &r.registered[i], true
}

// ToolNames returns all registered tool names, sorted.
func (r *Registry) ToolNames() []string {
	names := make([]string, 0, len(r.byToolName))
	for name := range r.byToolName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// toolNameFor derives the MCP tool name for a skill. The declared name wins
// over the file name so skill authors control how the tool appears.
func toolNameFor(skill Skill) (string, error) {
	source := skill.Name
	if strings.TrimSpace(source) == "" {
		source = strings.TrimSuffix(skill.FileName, extensionOf(skill.FileName))
	}

	sanitized, err := fileops.SanitizeIdentifier(source, maxToolNameLength)
	if err != nil {
		return "", fmt.Errorf("cannot derive tool name: %w", err)
	}
	return sanitized, nil
}

func extensionOf(name string) string {
	if idx := strings.LastIndexByte(name, '.'); idx != -1 {
		return name[idx:]
	}
	return ""
}
