package udl

import (
	"strings"
	"testing"
)

func TestSeedHasThreePrinciples(t *testing.T) {
	framework := Seed()

	if len(framework.Principles) != 3 {
		t.Fatalf("expected 3 principles, got %d", len(framework.Principles))
	}
	for _, p := range framework.Principles {
		if len(p.Guidelines) != 3 {
			t.Fatalf("principle %q: expected 3 guidelines, got %d", p.Name, len(p.Guidelines))
		}
	}
	if len(framework.AssessmentGuidelines) == 0 {
		t.Fatal("expected assessment guidelines")
	}
}

func TestRenderContainsAllContent(t *testing.T) {
	framework := Seed()
	block := framework.Render()

	for _, p := range framework.Principles {
		if !strings.Contains(block, p.Name) {
			t.Fatalf("rendered block missing principle %q", p.Name)
		}
		for _, g := range p.Guidelines {
			if !strings.Contains(block, g) {
				t.Fatalf("rendered block missing guideline %q", g)
			}
		}
	}
	for _, g := range framework.AssessmentGuidelines {
		if !strings.Contains(block, g) {
			t.Fatalf("rendered block missing assessment guideline %q", g)
		}
	}
}
