package draft

type Question struct {
	Number  int          `json:"number"`
	Title   string       `json:"title"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

type QuestionStructure struct {
	Explanation string     `json:"explanation"`
	Questions   []Question `json:"questions"`
	Note        string     `json:"note"`
}
