package orchestrator

import "strings"

var allPreviousPhrases = []string{
	"all previous", "all prior", "all outputs", "모든 이전", "앞선", "이전 단계 전체",
}

var independentPhrases = []string{
	"independent", "standalone", "독립적으로", "질문만",
}

func containsAny(text string, phrases []string) bool {
	t := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(t, p) {
			return true
		}
	}
	return false
}

// inferDependencies derives a DAG over stages from declarative prompt
// hints in each stage's (lower-cased) system prompt. Stage 0 always has no
// dependencies. When dynamicGraph is false, the strict linear chain
// deps[i] = [i-1] is used instead.
func inferDependencies(stages []StageSpec, dynamicGraph bool) map[int][]int {
	deps := make(map[int][]int, len(stages))
	deps[0] = []int{}

	if !dynamicGraph {
		for i := 1; i < len(stages); i++ {
			deps[i] = []int{i - 1}
		}
		return deps
	}

	for i := 1; i < len(stages); i++ {
		prompt := strings.ToLower(stages[i].SystemPrompt)

		if containsAny(prompt, allPreviousPhrases) {
			all := make([]int, i)
			for j := 0; j < i; j++ {
				all[j] = j
			}
			deps[i] = all
			continue
		}

		var explicit []int
		for j := 0; j < i; j++ {
			name := strings.ToLower(strings.TrimSpace(stages[j].Name))
			if len(name) >= 3 && strings.Contains(prompt, name) {
				explicit = append(explicit, j)
			}
		}

		if len(explicit) == 0 && !containsAny(prompt, independentPhrases) {
			deps[i] = []int{i - 1}
			continue
		}

		deps[i] = explicit
	}

	return deps
}
