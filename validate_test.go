package orchestrator

import "testing"

func TestValidateStages_AllowsUniqueNonReservedNames(t *testing.T) {
	stages := []StageSpec{{Name: "researcher"}, {Name: "writer"}}
	if err := validateStages(stages); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateStages_RejectsDuplicateNames(t *testing.T) {
	stages := []StageSpec{{Name: "writer"}, {Name: "writer"}}
	if err := validateStages(stages); err == nil {
		t.Error("expected an error for duplicate stage names")
	}
}

func TestValidateStages_RejectsReservedNames(t *testing.T) {
	for _, name := range []string{"synth", "quality_refine"} {
		stages := []StageSpec{{Name: name}}
		if err := validateStages(stages); err == nil {
			t.Errorf("expected an error for reserved name %q", name)
		}
	}
}

func TestValidateStages_TrimsWhitespaceBeforeComparing(t *testing.T) {
	stages := []StageSpec{{Name: "writer"}, {Name: " writer "}}
	if err := validateStages(stages); err == nil {
		t.Error("expected whitespace-padded duplicate to be rejected")
	}
}
