package intent

import "testing"

func TestClassifyEvaluate(t *testing.T) {
	cases := []string{
		"Evaluate my assessment: a 50-question multiple choice final",
		"can you review this quiz for accessibility",
		"I'd like feedback on my unit test",
		"please analyze this rubric",
	}
	for _, msg := range cases {
		if got := Classify(msg); got != Evaluate {
			t.Fatalf("Classify(%q) = %s, want evaluate", msg, got)
		}
	}
}

func TestClassifyDesign(t *testing.T) {
	cases := []string{
		"create an assessment for 5th grade fractions",
		"generate some options for my history unit",
		"help me design alternatives to a written exam",
	}
	for _, msg := range cases {
		if got := Classify(msg); got != Design {
			t.Fatalf("Classify(%q) = %s, want design", msg, got)
		}
	}
}

func TestClassifyGeneral(t *testing.T) {
	cases := []string{
		"hello",
		"what is UDL?",
		"tell me about the engagement principle",
	}
	for _, msg := range cases {
		if got := Classify(msg); got != General {
			t.Fatalf("Classify(%q) = %s, want general", msg, got)
		}
	}
}

func TestClassifyEvaluateOutranksDesign(t *testing.T) {
	if got := Classify("review the assessment I designed last week"); got != Evaluate {
		t.Fatalf("Classify = %s, want evaluate when both buckets match", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("EVALUATE THIS TEST"); got != Evaluate {
		t.Fatalf("Classify = %s, want evaluate for upper-case input", got)
	}
}
