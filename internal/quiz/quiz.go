// Package quiz turns free-text model output into question/answer pairs.
package quiz

import (
	"fmt"
	"strings"
)

// MissingAnswer is the answer recorded when a question is the last line.
const MissingAnswer = "Answer not provided"

// QuestionCount is how many questions the prompt asks the model for.
const QuestionCount = 5

// QAPair is one parsed question with its answer.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// BuildPrompt wraps study notes in the generation instruction.
func BuildPrompt(notes string) string {
	return fmt.Sprintf("Generate %d quiz questions with answers from the following notes:\n\n%s", QuestionCount, notes)
}

// ParseQAPairs scans text line by line. Blank lines are dropped and the rest
// trimmed. A line starting with "q" or "question" (any case) opens a pair and
// the line after it is taken as the answer, whatever it says; both lines are
// consumed. Any other line is skipped on its own. The result is never nil.
func ParseQAPairs(text string) []QAPair {
	lines := make([]string, 0)
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}

	pairs := make([]QAPair, 0)
	for i := 0; i < len(lines); {
		if !isQuestion(lines[i]) {
			i++
			continue
		}
		answer := MissingAnswer
		if i+1 < len(lines) {
			answer = lines[i+1]
		}
		pairs = append(pairs, QAPair{Question: lines[i], Answer: answer})
		i += 2
	}
	return pairs
}

// isQuestion matches both the "q" and the "question" prefix.
func isQuestion(line string) bool {
	return strings.HasPrefix(strings.ToLower(line), "q")
}
