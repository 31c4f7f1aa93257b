package chat

import (
	"strings"
	"testing"
)

func TestMatchRule(t *testing.T) {
	tests := []struct {
		name     string
		question string
		wantHit  bool
		contains string
	}{
		{"cse hod", "Who is the HOD of CSE?", true, "Kumaraswamy"},
		{"mechanical hod", "Who is the HOD of Mechanical Engineering?", true, "Bharat Vinjamuri"},
		{"civil hod", "who is the hod of civil?", true, "Allamaprabhu Kamatagi"},
		{"mba hod", "HOD of MBA please", true, "Sanjeev Kumar Thalari"},
		{"case insensitive", "WHO IS THE HOD OF ECE", true, "Madhavi Mallam"},
		{"no hod gate", "Who leads the CSE department?", false, ""},
		{"hod without department", "Who is the HOD?", false, ""},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, ok := MatchRule(tt.question)
			if ok != tt.wantHit {
				t.Fatalf("MatchRule(%q) hit = %v, want %v", tt.question, ok, tt.wantHit)
			}
			if ok && !strings.Contains(answer, tt.contains) {
				t.Errorf("MatchRule(%q) = %q, want it to contain %q", tt.question, answer, tt.contains)
			}
		})
	}
}

func TestMatchRuleTableOrder(t *testing.T) {
	// "electronics" precedes "electrical" in the table, so a question naming
	// both departments gets the ECE answer.
	answer, ok := MatchRule("Who is the HOD of electrical and electronics?")
	if !ok {
		t.Fatal("expected a rule hit")
	}
	if !strings.Contains(answer, "Madhavi Mallam") {
		t.Errorf("first keyword in table order should win, got %q", answer)
	}
}
