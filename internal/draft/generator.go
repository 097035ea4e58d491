package draft

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownContext = errors.New("unknown unheard context")
)

const closingNote = "※ この問いは、意見を評価するためのものではありません。\n日常の感じ方を知るための下書きです。"

var (
	familiarityOptions = []string{
		"よく利用している",
		"たまに利用している",
		"ほとんど利用していない",
		"名前は知っているが、使ったことはない",
	}
	impressionOptions = []string{
		"使いやすかった",
		"なんとなく入りづらかった",
		"自分向けではない気がした",
		"特に印象はない",
	}
)

// Generator builds question structures from a read-only phrasing table, so a
// single instance is safe for concurrent use.
type Generator struct {
	phrasings map[Mode]Phrasing
}

// NewGenerator returns a Generator. With loweredWording disabled the
// lowered_entry mode renders the same copy as the default mode.
func NewGenerator(loweredWording bool) *Generator {
	return &Generator{phrasings: phrasingTable(loweredWording)}
}

var defaultGenerator = NewGenerator(true)

// Generate builds a structure with the package default generator.
func Generate(theme, background string, mode Mode) (QuestionStructure, error) {
	return defaultGenerator.Generate(theme, background, mode)
}

func (g *Generator) Generate(theme, background string, mode Mode) (QuestionStructure, error) {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return QuestionStructure{}, fmt.Errorf("theme is empty: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(background) == "" {
		return QuestionStructure{}, fmt.Errorf("background is empty: %w", ErrInvalidInput)
	}

	p, ok := g.phrasings[mode]
	if !ok {
		return QuestionStructure{}, fmt.Errorf("mode %q: %w", mode, ErrInvalidInput)
	}

	questions := []Question{
		choiceQuestion(p.Familiarity, theme, familiarityOptions),
		choiceQuestion(p.Impression, theme, impressionOptions),
		textQuestion(p.Suggestion, theme),
	}
	for i := range questions {
		questions[i].Number = i + 1
	}

	return QuestionStructure{
		Explanation: fillTheme(p.Explanation, theme),
		Questions:   questions,
		Note:        closingNote,
	}, nil
}

func choiceQuestion(c QuestionCopy, theme string, options []string) Question {
	return Question{
		Title:   c.Title,
		Text:    fillTheme(c.Text, theme),
		Type:    QuestionTypeChoice,
		Options: append([]string(nil), options...),
	}
}

func textQuestion(c QuestionCopy, theme string) Question {
	return Question{
		Title: c.Title,
		Text:  fillTheme(c.Text, theme),
		Type:  QuestionTypeText,
	}
}
