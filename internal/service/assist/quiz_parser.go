package assist

import (
	"regexp"
	"strings"

	"scribe/internal/domain/services"
)

// The model is prompted for a fixed layout but is not guaranteed to
// follow it. The parser accepts minor drift: "1." or "1)", "A)" or
// "A.", an optional dash after "Answer", stray blank lines. Lines that
// fit no pattern extend the current question or option text.
var (
	questionLineRe = regexp.MustCompile(`^\s*\d+[.)]\s*(.+)$`)
	optionLineRe   = regexp.MustCompile(`^\s*([A-D])[.)]\s*(.+)$`)
	answerLineRe   = regexp.MustCompile(`(?i)^\s*answer\s*[:\-]\s*([A-D])\b`)
)

// parseQuiz extracts quiz questions from the model's semi-structured
// text output. Malformed fragments are skipped rather than failing the
// whole response; a question survives if it has text and at least two
// options.
func parseQuiz(text string) []services.QuizQuestion {
	var questions []services.QuizQuestion
	var current *services.QuizQuestion

	flush := func() {
		if current != nil && current.Question != "" && len(current.Options) >= 2 {
			questions = append(questions, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := questionLineRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &services.QuizQuestion{
				Question: strings.TrimSpace(m[1]),
				Options:  []string{},
			}
			continue
		}

		if current == nil {
			continue
		}

		if m := optionLineRe.FindStringSubmatch(line); m != nil {
			current.Options = append(current.Options, strings.TrimSpace(m[2]))
			continue
		}

		if m := answerLineRe.FindStringSubmatch(line); m != nil {
			current.Answer = strings.ToUpper(m[1])
			continue
		}

		// Continuation of the previous question or option text.
		if len(current.Options) > 0 {
			last := len(current.Options) - 1
			current.Options[last] += " " + strings.TrimSpace(line)
		} else {
			current.Question += " " + strings.TrimSpace(line)
		}
	}
	flush()

	return questions
}
