package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize 以逗號切分，去除空白並轉小寫；空片段會被略過
func Tokenize(text string) []string {
	parts := strings.Split(text, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}

// DisplayCase 給使用者看的版本：每個 token 的每個單字首字大寫
func DisplayCase(text string) string {
	tokens := Tokenize(text)
	for i, tok := range tokens {
		words := strings.Fields(tok)
		for j, w := range words {
			words[j] = titleWord(w)
		}
		tokens[i] = strings.Join(words, " ")
	}
	return strings.Join(tokens, ", ")
}

func titleWord(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
