package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordRune 判斷是否屬於詞內字元。
// 天城文的母音符號與 virama 屬於 Mark 類別，必須算在詞內，
// 否則 "आलू" 會在 "ू" 前被切開。
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}

func startsWithWord(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && isWordRune(r)
}

func endsWithWord(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r != utf8.RuneError && isWordRune(r)
}

// matchAt 在 s 開頭依序嘗試規則，回傳第一條在詞界結束的規則與匹配長度
func matchAt(s string, rules []compiledRule) (compiledRule, int, bool) {
	for _, rule := range rules {
		loc := rule.pattern.FindStringIndex(s)
		if loc == nil {
			continue
		}
		end := loc[1]
		if end < len(s) {
			next, _ := utf8.DecodeRuneInString(s[end:])
			if isWordRune(next) {
				continue
			}
		}
		return rule, end, true
	}
	return compiledRule{}, 0, false
}

// replaceWords 單次掃描：在每個詞首嘗試規則，匹配到的片段替換後不再重新掃描
func replaceWords(text string, rules []compiledRule) string {
	if text == "" || len(rules) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	prevWord := false
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !prevWord && isWordRune(r) {
			if rule, n, ok := matchAt(text[i:], rules); ok {
				b.WriteString(rule.To)
				i += n
				prevWord = true
				continue
			}
		}
		b.WriteString(text[i : i+size])
		prevWord = isWordRune(r)
		i += size
	}

	return b.String()
}
