package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQAPairs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []QAPair
	}{
		{
			name: "question and answer lines",
			text: "Q1: What is virtue?\nVirtue is excellence.\nQuestion 2\nAnswer two",
			want: []QAPair{
				{Question: "Q1: What is virtue?", Answer: "Virtue is excellence."},
				{Question: "Question 2", Answer: "Answer two"},
			},
		},
		{
			name: "trailing question gets placeholder",
			text: "Q1: What is the Cave?\nAn allegory.\nQ2: Who wrote it?",
			want: []QAPair{
				{Question: "Q1: What is the Cave?", Answer: "An allegory."},
				{Question: "Q2: Who wrote it?", Answer: MissingAnswer},
			},
		},
		{
			name: "no question lines",
			text: "Here are some thoughts.\nNothing to ask.\n",
			want: []QAPair{},
		},
		{
			name: "empty input",
			text: "",
			want: []QAPair{},
		},
		{
			name: "blank lines and padding are dropped",
			text: "\n\n   q: lowercase prefix   \n\n   answer after blanks  \n",
			want: []QAPair{{Question: "q: lowercase prefix", Answer: "answer after blanks"}},
		},
		{
			name: "preamble lines are skipped one at a time",
			text: "Sure! Here you go:\nQUESTION: What is a form?\nAn ideal pattern.",
			want: []QAPair{{Question: "QUESTION: What is a form?", Answer: "An ideal pattern."}},
		},
		{
			name: "answer line is not checked for being a question",
			text: "Q1: first\nQ2: second\nQ3: third\nanswer three",
			want: []QAPair{
				{Question: "Q1: first", Answer: "Q2: second"},
				{Question: "Q3: third", Answer: "answer three"},
			},
		},
		{
			name: "any word starting with q counts",
			text: "Quite right.\nthat is so",
			want: []QAPair{{Question: "Quite right.", Answer: "that is so"}},
		},
		{
			name: "windows line endings",
			text: "Q: one\r\nA: one\r\n",
			want: []QAPair{{Question: "Q: one", Answer: "A: one"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQAPairs(tt.text)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Virtue is knowledge.")
	assert.Equal(t, "Generate 5 quiz questions with answers from the following notes:\n\nVirtue is knowledge.", prompt)
}
