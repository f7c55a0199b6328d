// Package lexicon 提供跨文字（天城文、拉丁轉寫、英文）的食材拼字修正與詞彙正規化。
//
// 修正表與詞彙表在程序啟動時建立一次，之後只讀，可在多個請求間並行共用。
package lexicon

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Rule 單條替換規則：From 為變體或方言詞，To 為替換結果
type Rule struct {
	From string
	To   string
}

// compiledRule 已編譯的規則，pattern 錨定在字串開頭
type compiledRule struct {
	Rule
	words   int
	pattern *regexp.Regexp
}

// Table 不可變的有序規則表
type Table struct {
	name  string
	rules []compiledRule
	index map[string]string
}

// NewTable 依宣告順序建立規則表。
// 鍵與值會先轉為 NFC 小寫；鍵必須以文字字元開頭與結尾，且不可重複。
func NewTable(name string, rules []Rule) (*Table, error) {
	t := &Table{
		name:  name,
		rules: make([]compiledRule, 0, len(rules)),
		index: make(map[string]string, len(rules)),
	}

	for i, r := range rules {
		from := canonical(r.From)
		to := canonical(r.To)
		if from == "" {
			return nil, fmt.Errorf("%s: rule %d has an empty key", name, i)
		}
		if !startsWithWord(from) || !endsWithWord(from) {
			return nil, fmt.Errorf("%s: rule %q must start and end with a word character", name, r.From)
		}
		if _, dup := t.index[from]; dup {
			return nil, fmt.Errorf("%s: duplicate key %q", name, r.From)
		}

		parts := strings.Fields(from)
		quoted := make([]string, len(parts))
		for j, p := range parts {
			quoted[j] = regexp.QuoteMeta(p)
		}
		pattern, err := regexp.Compile(`^(?i:` + strings.Join(quoted, `\s+`) + `)`)
		if err != nil {
			return nil, fmt.Errorf("%s: compile %q: %w", name, r.From, err)
		}

		t.index[from] = to
		t.rules = append(t.rules, compiledRule{
			Rule:    Rule{From: from, To: to},
			words:   len(parts),
			pattern: pattern,
		})
	}

	return t, nil
}

// MustTable 與 NewTable 相同，失敗時 panic；僅用於內建表
func MustTable(name string, rules []Rule) *Table {
	t, err := NewTable(name, rules)
	if err != nil {
		panic(err)
	}
	return t
}

// Name 規則表名稱
func (t *Table) Name() string {
	return t.name
}

// Len 規則數量
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules 依宣告順序回傳規則的複本
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.Rule
	}
	return out
}

// Lookup 查詢單一鍵的替換結果
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.index[canonical(key)]
	return v, ok
}

// canonical 統一為 NFC 小寫並去除前後空白。
// 天城文的 nukta 字母（例如 ज़）有預組合與分解兩種寫法，NFC 後一致。
func canonical(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}
