package orchestrator

import (
	"reflect"
	"testing"
)

func TestInferDependencies_LinearChainWhenDynamicGraphDisabled(t *testing.T) {
	stages := []StageSpec{
		{Name: "a", SystemPrompt: "anything"},
		{Name: "b", SystemPrompt: "anything"},
		{Name: "c", SystemPrompt: "anything"},
	}

	got := inferDependencies(stages, false)
	want := map[int][]int{0: {}, 1: {0}, 2: {1}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInferDependencies_AllPreviousPhraseFansIn(t *testing.T) {
	stages := []StageSpec{
		{Name: "researcher", SystemPrompt: "find facts"},
		{Name: "critic", SystemPrompt: "review findings"},
		{Name: "writer", SystemPrompt: "using all previous outputs, write the final answer"},
	}

	got := inferDependencies(stages, true)
	if !reflect.DeepEqual(got[2], []int{0, 1}) {
		t.Errorf("writer deps = %v, want [0 1]", got[2])
	}
}

func TestInferDependencies_ExplicitNameReference(t *testing.T) {
	stages := []StageSpec{
		{Name: "researcher", SystemPrompt: "find facts"},
		{Name: "critic", SystemPrompt: "review the researcher's findings"},
		{Name: "writer", SystemPrompt: "independent summary task"},
	}

	got := inferDependencies(stages, true)
	if !reflect.DeepEqual(got[1], []int{0}) {
		t.Errorf("critic deps = %v, want [0]", got[1])
	}
	if len(got[2]) != 0 {
		t.Errorf("writer deps = %v, want empty (independent phrase)", got[2])
	}
}

func TestInferDependencies_FallsBackToPreviousStage(t *testing.T) {
	stages := []StageSpec{
		{Name: "a", SystemPrompt: "find facts"},
		{Name: "b", SystemPrompt: "no hints here at all"},
	}

	got := inferDependencies(stages, true)
	if !reflect.DeepEqual(got[1], []int{0}) {
		t.Errorf("deps[1] = %v, want [0]", got[1])
	}
}
