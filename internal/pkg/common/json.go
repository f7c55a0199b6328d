package common

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ParseJSON 解析 JSON 字符串到結構體
func ParseJSON(data string, v interface{}) error {
	return decodeJSON(strings.NewReader(data), v)
}

func decodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)

	if err := dec.Decode(v); err != nil {
		return err
	}

	// 確保沒有多餘資料
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return err
		}
		return fmt.Errorf("unexpected extra JSON data")
	}
	return nil
}

var unquotedKeyPattern = regexp.MustCompile(`([{\[,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)

// QuoteJSONKeys 將未加雙引號的鍵補上雙引號；字串值內的內容不會被改動
func QuoteJSONKeys(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 16)

	start := 0
	inString, escaped := false, false
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
				b.WriteString(raw[start : i+1])
				start = i + 1
			}
			continue
		}
		if ch == '"' {
			b.WriteString(unquotedKeyPattern.ReplaceAllString(raw[start:i], `$1"$2":`))
			start = i
			inString = true
		}
	}

	if inString {
		b.WriteString(raw[start:])
	} else {
		b.WriteString(unquotedKeyPattern.ReplaceAllString(raw[start:], `$1"$2":`))
	}
	return b.String()
}

// ExtractJSONObject 從模型輸出中擷取 JSON 物件：
// 去掉 ```json ... ``` 包裹，再取第一個 { 到最後一個 }
func ExtractJSONObject(content string) (string, error) {
	txt := strings.TrimSpace(content)
	txt = strings.TrimPrefix(txt, "```json")
	txt = strings.TrimPrefix(txt, "```")
	txt = strings.TrimSuffix(txt, "```")
	txt = strings.TrimSpace(txt)

	start, end := strings.Index(txt, "{"), strings.LastIndex(txt, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object found in content")
	}
	return txt[start : end+1], nil
}
