package event

import "strings"

type iconRule struct {
	keyword string
	icon    string
}

// eventIcons is an ordered association list: declaration order defines
// precedence and the first keyword contained in a title wins.
var eventIcons = []iconRule{
	{"運動会", "🏃"}, {"体育祭", "🏃"}, {"遠足", "🎒"}, {"修学旅行", "🚌"},
	{"入学", "🌸"}, {"卒業", "🎓"}, {"始業式", "📚"}, {"終業式", "🏖️"},
	{"保護者会", "👥"}, {"懇談会", "👥"}, {"個人懇談", "💬"}, {"面談", "💬"},
	{"授業参観", "👀"}, {"参観日", "👀"}, {"学習発表会", "🎭"},
	{"運動", "⚽"}, {"水泳", "🏊"}, {"プール", "🏊"}, {"音楽会", "🎵"},
	{"夏休み", "🌻"}, {"冬休み", "⛄"}, {"春休み", "🌸"},
	{"給食", "🍱"}, {"健康診断", "🏥"}, {"身体測定", "📏"},
	{"持久走", "🏃"}, {"マラソン", "🏃"}, {"発表会", "🎭"}, {"展覧会", "🖼️"},
	{"入園", "🌸"}, {"卒園", "🎓"}, {"避難訓練", "🚨"}, {"引き渡し", "🚨"},
	{"読書", "📖"}, {"図書", "📚"}, {"クリスマス", "🎄"}, {"七夕", "🎋"},
}

// DefaultIcon is used when no keyword matches a title.
const DefaultIcon = "📅"

// IconFor classifies a title to its display glyph.
func IconFor(title string) string {
	for _, r := range eventIcons {
		if strings.Contains(title, r.keyword) {
			return r.icon
		}
	}
	return DefaultIcon
}
