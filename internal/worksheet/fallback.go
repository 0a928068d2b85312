package worksheet

import (
	"fmt"
	"strconv"
	"strings"
)

// FallbackInstructions is the single instruction line of a fallback
// worksheet.
const FallbackInstructions = "Complete the following questions to the best of your ability."

// Fallback builds placeholder content for req: one short-answer question
// per topic, capped at the requested question count. It needs no network
// and never fails.
func Fallback(req Request) *Worksheet {
	names := req.TopicNames()
	if len(names) == 0 {
		names = []string{req.Subject.DisplayName()}
	}
	limit := req.QuestionCount
	if limit < 1 {
		limit = 1
	}

	ws := &Worksheet{
		Title:        "Worksheet on " + strings.Join(names, ", "),
		Instructions: FallbackInstructions,
		Questions:    []Question{},
		AnswerKey:    map[string]string{},
		Fallback:     true,
	}
	for i, name := range names {
		if i >= limit {
			break
		}
		ws.Questions = append(ws.Questions, Question{
			ID:     strconv.Itoa(i + 1),
			Type:   TypeShortAnswer,
			Prompt: fmt.Sprintf("Write one or two sentences explaining what you know about %s.", name),
			Points: TypeShortAnswer.DefaultPoints(),
		})
	}
	return ws
}
