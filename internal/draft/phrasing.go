package draft

import "strings"

const themePlaceholder = "{theme}"

// QuestionCopy is the wording of one question. Text may reference {theme}.
type QuestionCopy struct {
	Title string
	Text  string
}

// Phrasing holds every piece of wording that may vary by Mode. Options and
// the closing note are shared across modes and live in generator.go.
type Phrasing struct {
	Explanation string
	Familiarity QuestionCopy
	Impression  QuestionCopy
	Suggestion  QuestionCopy
}

var defaultPhrasing = Phrasing{
	Explanation: "このプロセスは、{theme}について、日常の経験や感じ方を思い出してもらう構成になっています。",
	Familiarity: QuestionCopy{
		Title: "最近の利用について",
		Text:  "{theme}について、最近利用したことはありますか？",
	},
	Impression: QuestionCopy{
		Title: "利用したときの印象（複数選択可）",
		Text:  "{theme}を利用したときの印象に、近いものがあれば選んでください。",
	},
	Suggestion: QuestionCopy{
		Title: "もう少し関わるとしたら（任意）",
		Text:  "もしよければ、{theme}について「こうだったら、もう少し関わるかも」と思うことがあれば自由に書いてください。（書かなくても大丈夫です）",
	},
}

var loweredEntryPhrasing = Phrasing{
	Explanation: "{theme}について、ふだん感じていることを気軽に答えてもらう構成です。答えにくい問いは、とばしても大丈夫です。",
	Familiarity: QuestionCopy{
		Title: "ふだんの利用（とばしてもOK）",
		Text:  "{theme}を、最近使いましたか？",
	},
	Impression: QuestionCopy{
		Title: "使ったときの印象（いくつ選んでもOK）",
		Text:  "{theme}を使ったとき、近いものはありますか？",
	},
	Suggestion: QuestionCopy{
		Title: "ひとこと（空欄でOK）",
		Text:  "{theme}が、こうだったらいいなと思うことがあれば、ひとことどうぞ。",
	},
}

func phrasingTable(loweredWording bool) map[Mode]Phrasing {
	lowered := loweredEntryPhrasing
	if !loweredWording {
		lowered = defaultPhrasing
	}
	return map[Mode]Phrasing{
		ModeDefault:      defaultPhrasing,
		ModeLoweredEntry: lowered,
	}
}

func fillTheme(tmpl, theme string) string {
	return strings.ReplaceAll(tmpl, themePlaceholder, theme)
}
