package worksheet

import (
	"encoding/json"
	"fmt"
	"strings"
)

// typeRequirements describes the formatting contract for each type.
var typeRequirements = map[QuestionType]string{
	TypeMultipleChoice: `For multiple-choice questions, give exactly 4 options and set "correctAnswer" to the exact text of the correct option.`,
	TypeFillBlank:      `For fill-blank questions, mark the blank with "_____" in the question text and set "correctAnswer" to the missing word or phrase.`,
	TypeShortAnswer:    `For short-answer questions, set "correctAnswer" to a sample answer of one or two sentences.`,
	TypeEssay:          `For essay questions, set "correctAnswer" to the evaluation criteria a teacher would use.`,
}

// typeExamples seeds the literal output example for each type.
var typeExamples = map[QuestionType]exampleQuestion{
	TypeMultipleChoice: {
		Question:      "Question text here?",
		Options:       []string{"Option A", "Option B", "Option C", "Option D"},
		CorrectAnswer: "Option A",
		Explanation:   "Why Option A is correct.",
	},
	TypeFillBlank: {
		Question:      "Sentence with a _____ to fill in.",
		CorrectAnswer: "missing word",
		Explanation:   "Why this word fits.",
	},
	TypeShortAnswer: {
		Question:      "Question that needs a short written answer?",
		CorrectAnswer: "A sample answer.",
		Explanation:   "What a good answer includes.",
	},
	TypeEssay: {
		Question:      "Essay prompt here.",
		CorrectAnswer: "Evaluation criteria.",
		Explanation:   "What a strong essay covers.",
	},
}

type exampleQuestion struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Points        int          `json:"points"`
}

type exampleWorksheet struct {
	Title        string            `json:"title"`
	Instructions string            `json:"instructions"`
	Questions    []exampleQuestion `json:"questions"`
}

// BuildPrompt renders the generation instruction for req. It is
// deterministic and never fails.
func BuildPrompt(req Request) string {
	types := req.AllowedTypes()
	grade := req.Grade.Label()

	var b strings.Builder

	fmt.Fprintf(&b, "Create a %s English worksheet: %s.\n\n", grade, req.Subject.DisplayName())
	fmt.Fprintf(&b, "Topics: %s\n", strings.Join(req.TopicNames(), ", "))
	fmt.Fprintf(&b, "Difficulty: %s (focus on %s)\n", req.Difficulty, req.Difficulty.Descriptor())
	fmt.Fprintf(&b, "Number of questions: %d\n", req.QuestionCount)
	if req.TimeLimitMinutes > 0 {
		fmt.Fprintf(&b, "Time limit: %d minutes\n", req.TimeLimitMinutes)
	}

	fmt.Fprintf(&b, "\nIMPORTANT: ONLY create questions of the following types: %s. DO NOT include any other question types.\n", joinTypes(types))

	b.WriteString("\nRequirements:\n")
	n := 0
	item := func(format string, args ...any) {
		n++
		fmt.Fprintf(&b, "%d. ", n)
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	item("Every question must suit %s students and stay on the topics above.", grade)
	item("Spread the questions across all of the listed topics.")
	if req.Subject == SubjectReading {
		item("Include a short, age-appropriate reading passage in \"instructions\" and base every question on it.")
	}
	if req.TimeLimitMinutes > 0 {
		item("A student should be able to finish in about %d minutes.", req.TimeLimitMinutes)
	}
	for _, t := range types {
		item("%s", typeRequirements[t])
	}
	if req.ShowHints {
		item("Write each \"explanation\" as a helpful hint a student can read before answering.")
	} else {
		item("Give every question a short \"explanation\" of the correct answer.")
	}
	if req.IncludeAnswerKey {
		item("Always fill in \"correctAnswer\"; it is used to build the answer key.")
	}
	item("The \"type\" field must be one of: %s.", joinTypes(types))

	b.WriteString("\nReturn ONLY a JSON object in exactly this format, with no other text:\n")
	b.WriteString(exampleJSON(types))
	b.WriteByte('\n')

	return b.String()
}

func joinTypes(types []QuestionType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func exampleJSON(types []QuestionType) string {
	ex := exampleWorksheet{
		Title:        "Worksheet title",
		Instructions: "Instructions for the student",
	}
	for i, t := range types {
		q := typeExamples[t]
		q.ID = fmt.Sprint(i + 1)
		q.Type = t
		q.Points = t.DefaultPoints()
		ex.Questions = append(ex.Questions, q)
	}
	out, err := json.MarshalIndent(ex, "", "  ")
	if err != nil {
		// Static data; cannot fail.
		panic(err)
	}
	return string(out)
}
