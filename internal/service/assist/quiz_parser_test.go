package assist

import "testing"

func TestParseQuizWellFormedOutput(t *testing.T) {
	text := `1. What does chlorophyll absorb?
A) Sound
B) Light
C) Heat
D) Water
Answer: B

2) Where does the Krebs cycle run?
A. Nucleus
B. Ribosome
C. Mitochondria
D. Membrane
Answer: C`

	questions := parseQuiz(text)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	q := questions[0]
	if q.Question != "What does chlorophyll absorb?" {
		t.Errorf("question = %q", q.Question)
	}
	if len(q.Options) != 4 || q.Options[1] != "Light" {
		t.Errorf("options = %v", q.Options)
	}
	if q.Answer != "B" {
		t.Errorf("answer = %q, want B", q.Answer)
	}

	if questions[1].Answer != "C" {
		t.Errorf("second answer = %q, want C", questions[1].Answer)
	}
}

func TestParseQuizToleratesDrift(t *testing.T) {
	// Lowercase answer, dash separator, wrapped option text, and a
	// preamble line before the first question.
	text := `Here are your questions:

1. Which process splits glucose
   into pyruvate?
A) Glycolysis
B) Oxidative phosphorylation,
   in the mitochondria
answer - A`

	questions := parseQuiz(text)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}

	q := questions[0]
	if q.Question != "Which process splits glucose into pyruvate?" {
		t.Errorf("question = %q", q.Question)
	}
	if len(q.Options) != 2 {
		t.Fatalf("options = %v", q.Options)
	}
	if q.Options[1] != "Oxidative phosphorylation, in the mitochondria" {
		t.Errorf("wrapped option = %q", q.Options[1])
	}
	if q.Answer != "A" {
		t.Errorf("answer = %q, want A", q.Answer)
	}
}

func TestParseQuizDropsIncompleteQuestions(t *testing.T) {
	// Question 1 has a single option, question 2 is fine.
	text := `1. Orphan question?
A) only option
2. Real question?
A) yes
B) no
Answer: A`

	questions := parseQuiz(text)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].Question != "Real question?" {
		t.Errorf("question = %q", questions[0].Question)
	}
}

func TestParseQuizEmptyAndJunkInput(t *testing.T) {
	for _, input := range []string{"", "no questions here at all", "Answer: B"} {
		if got := parseQuiz(input); len(got) != 0 {
			t.Errorf("parseQuiz(%q) = %v, want none", input, got)
		}
	}
}
