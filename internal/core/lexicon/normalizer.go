package lexicon

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalizer 詞彙正規化器：把轉寫或天城文食材名稱換成英文
type Normalizer struct {
	table   *Table
	ordered []compiledRule
}

// NewNormalizer 創建詞彙正規化器。
// 同一位置上多詞片語優先於單詞，字數相同時較長的鍵優先，其餘保持宣告順序；
// 所以 "hari mirch" 會整體換成 "green chili"，不會先被 "mirch" 拆開。
func NewNormalizer(table *Table) *Normalizer {
	n := &Normalizer{table: table}
	if table == nil {
		return n
	}

	n.ordered = append([]compiledRule(nil), table.rules...)
	sort.SliceStable(n.ordered, func(i, j int) bool {
		a, b := n.ordered[i], n.ordered[j]
		if a.words != b.words {
			return a.words > b.words
		}
		return len(a.From) > len(b.From)
	})
	return n
}

// Normalize 單次掃描替換所有整詞/整片語匹配，輸出為小寫
func (n *Normalizer) Normalize(text string) string {
	out := strings.ToLower(norm.NFC.String(text))
	if n == nil {
		return out
	}
	return replaceWords(out, n.ordered)
}
