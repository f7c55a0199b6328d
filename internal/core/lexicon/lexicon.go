package lexicon

import "sync"

// Result 一次完整的正規化結果
type Result struct {
	Corrected  string   // 拼字修正後的文字（小寫）
	Display    string   // 修正後文字的顯示版本（每個單字首字大寫）
	Normalized string   // 英文正規化文字
	Tokens     []string // 比對用的食材 token
}

// Lexicon 串接拼字修正與詞彙正規化
type Lexicon struct {
	corrector  *Corrector
	normalizer *Normalizer
}

// New 以指定的修正表與詞彙表建立 Lexicon
func New(corrections, vocabulary *Table) *Lexicon {
	return &Lexicon{
		corrector:  NewCorrector(corrections),
		normalizer: NewNormalizer(vocabulary),
	}
}

var (
	defaultOnce    sync.Once
	defaultLexicon *Lexicon
)

// Default 內建表，整個程序只建立一次
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLexicon = New(
			MustTable("corrections", defaultCorrections),
			MustTable("vocabulary", defaultVocabulary),
		)
	})
	return defaultLexicon
}

// Correct 拼字修正
func (l *Lexicon) Correct(text string) string {
	return l.corrector.Correct(text)
}

// Normalize 詞彙正規化（應在拼字修正之後呼叫）
func (l *Lexicon) Normalize(text string) string {
	return l.normalizer.Normalize(text)
}

// Process 修正 → 正規化 → 切 token
func (l *Lexicon) Process(text string) Result {
	corrected := l.corrector.Correct(text)
	normalized := l.normalizer.Normalize(corrected)
	return Result{
		Corrected:  corrected,
		Display:    DisplayCase(corrected),
		Normalized: normalized,
		Tokens:     Tokenize(normalized),
	}
}
