package item

import "strings"

type keywordRule struct {
	keyword string
	value   string
}

// itemIcons is an ordered association list: declaration order defines
// precedence and the first keyword contained in a name wins. The keyword set
// doubles as the vocabulary for the whole-text fallback scan.
var itemIcons = []keywordRule{
	{"体操服", "👕"}, {"体操着", "👕"}, {"水着", "🩱"}, {"水泳帽", "🏊"},
	{"水筒", "🫙"}, {"お弁当", "🍱"}, {"お弁当箱", "🍱"}, {"箸", "🥢"},
	{"ランドセル", "🎒"}, {"リュック", "🎒"}, {"上履き", "👟"}, {"外靴", "👟"},
	{"帽子", "🧢"}, {"赤白帽", "🧢"}, {"タオル", "🏷️"},
	{"鉛筆", "✏️"}, {"消しゴム", "🧹"}, {"ノート", "📓"}, {"教科書", "📚"},
	{"連絡帳", "📒"}, {"健康観察票", "📋"}, {"保険証", "🪪"}, {"診察券", "🪪"},
	{"ハンカチ", "🧻"}, {"ティッシュ", "🧻"}, {"マスク", "😷"},
	{"カッパ", "🌧️"}, {"雨具", "☂️"}, {"傘", "☂️"},
	{"絵の具", "🎨"}, {"習字", "✍️"}, {"習字道具", "✍️"},
	{"鍵盤ハーモニカ", "🎹"}, {"リコーダー", "🎵"},
	{"着替え", "👔"}, {"下着", "👔"}, {"靴下", "🧦"},
}

// itemCategories maps keywords to the fixed category label set
// (服装/持ち物/飲食/学用品/書類/その他), first match wins.
var itemCategories = []keywordRule{
	{"体操服", "服装"}, {"体操着", "服装"}, {"水着", "服装"}, {"帽子", "服装"},
	{"赤白帽", "服装"}, {"着替え", "服装"}, {"下着", "服装"}, {"靴下", "服装"},
	{"上履き", "持ち物"}, {"外靴", "持ち物"}, {"ランドセル", "持ち物"}, {"リュック", "持ち物"},
	{"水筒", "飲食"}, {"お弁当", "飲食"}, {"お弁当箱", "飲食"}, {"箸", "飲食"},
	{"鉛筆", "学用品"}, {"消しゴム", "学用品"}, {"ノート", "学用品"}, {"教科書", "学用品"},
	{"健康観察票", "書類"}, {"保険証", "書類"}, {"診察券", "書類"}, {"連絡帳", "書類"},
	{"ハンカチ", "その他"}, {"ティッシュ", "その他"}, {"マスク", "その他"}, {"タオル", "その他"},
}

// Defaults applied when no keyword matches.
const (
	DefaultIcon     = "📦"
	DefaultCategory = "持ち物"
)

// IconFor classifies an item name to its display glyph.
func IconFor(name string) string {
	for _, r := range itemIcons {
		if strings.Contains(name, r.keyword) {
			return r.value
		}
	}
	return DefaultIcon
}

// CategoryFor classifies an item name to its category label.
func CategoryFor(name string) string {
	for _, r := range itemCategories {
		if strings.Contains(name, r.keyword) {
			return r.value
		}
	}
	return DefaultCategory
}
