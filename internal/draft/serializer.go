package draft

import (
	"fmt"
	"strings"
)

const (
	structureHeader     = "問いの構造"
	separatorLine       = "---"
	checkboxGlyph       = "□"
	freeTextPlaceholder = "（自由記述）"
)

// Serialize renders a structure as the plain text that gets copied to the
// clipboard. The output depends only on s.
func Serialize(s QuestionStructure) string {
	var b strings.Builder

	b.WriteString(structureHeader)
	b.WriteString("\n\n")
	b.WriteString(s.Explanation)
	b.WriteString("\n\n")
	b.WriteString(separatorLine)
	b.WriteString("\n\n")

	for _, q := range s.Questions {
		fmt.Fprintf(&b, "問い%d：%s\n\n", q.Number, q.Title)
		b.WriteString(q.Text)
		b.WriteString("\n\n")

		switch q.Type {
		case QuestionTypeChoice:
			for _, opt := range q.Options {
				fmt.Fprintf(&b, "%s %s\n", checkboxGlyph, opt)
			}
		case QuestionTypeText:
			b.WriteString(freeTextPlaceholder)
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(separatorLine)
		b.WriteString("\n\n")
	}

	b.WriteString(s.Note)
	return b.String()
}
