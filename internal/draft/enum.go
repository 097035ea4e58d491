package draft

type Mode string

const (
	ModeDefault      Mode = "default"
	ModeLoweredEntry Mode = "lowered_entry"
)

type QuestionType string

const (
	QuestionTypeChoice QuestionType = "choice"
	QuestionTypeText   QuestionType = "text"
)

// UnheardContext is one of the fixed labels describing people whose voice
// rarely reaches the requester.
type UnheardContext string

const (
	ContextBusy           UnheardContext = "忙しくて参加できていない人"
	ContextNotWorthSaying UnheardContext = "意見を言うほどではないと思っている人"
	ContextUnfamiliar     UnheardContext = "制度や仕組みがよく分からない人"
	ContextNoContact      UnheardContext = "普段あまり行政と接点がない人"
	ContextNoneInMind     UnheardContext = "特に思い浮かばない"
)

var AllUnheardContexts = []UnheardContext{
	ContextBusy,
	ContextNotWorthSaying,
	ContextUnfamiliar,
	ContextNoContact,
	ContextNoneInMind,
}

func (c UnheardContext) IsValid() bool {
	for _, v := range AllUnheardContexts {
		if c == v {
			return true
		}
	}
	return false
}
