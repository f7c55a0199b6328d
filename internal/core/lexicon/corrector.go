package lexicon

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Corrector 拼字修正器
//
// 規則依宣告順序逐條套用，後面的規則作用在已修正的字串上；
// 因此規則的輸出值不應等於前面任一條規則的鍵。
type Corrector struct {
	table *Table
}

// NewCorrector 創建拼字修正器
func NewCorrector(table *Table) *Corrector {
	return &Corrector{table: table}
}

// Correct 以整詞、不分大小寫的方式修正已知拼字錯誤，輸出為小寫。
// 未知詞原樣保留，沒有錯誤情況。
func (c *Corrector) Correct(text string) string {
	out := strings.ToLower(norm.NFC.String(text))
	if c == nil || c.table == nil {
		return out
	}
	for _, rule := range c.table.rules {
		out = replaceWords(out, []compiledRule{rule})
	}
	return out
}
