package lexicon

// 預設拼字修正表（依宣告順序套用）。
// 拉丁轉寫與英文的變體統一成轉寫拼法，再由詞彙表換成英文。
var defaultCorrections = []Rule{
	// 常見 Hinglish 拼字錯誤
	{"piaz", "pyaz"},
	{"piyaz", "pyaz"},
	{"onoin", "onion"},
	{"onon", "onion"},
	{"anda", "ande"},
	{"andey", "ande"},
	{"eggs", "ande"},
	{"dudh", "doodh"},
	{"dud", "doodh"},
	{"milk", "doodh"},
	{"alu", "aloo"},
	{"allu", "aloo"},
	{"potato", "aloo"},
	{"potatos", "aloo"},
	{"tamater", "tamatar"},
	{"tomato", "tamatar"},
	{"tomatos", "tamatar"},
	{"mirchi", "mirch"},
	{"chili", "mirch"},
	{"chilli", "mirch"},
	{"namac", "namak"},
	{"salt", "namak"},
	{"oil", "tel"},
	{"cumin", "jeera"},
	{"turmeric", "haldi"},
	{"coriander", "dhaniya"},
	{"ginger", "adrak"},
	{"garlic", "lehsun"},
	{"chaval", "chawal"},
	{"rice", "chawal"},
	{"lentils", "dal"},
	{"panir", "paneer"},
	{"paner", "paneer"},
	{"cottage cheese", "paneer"},

	// 天城文拼字變體
	{"प्याज़", "प्याज"},
	{"पियाज", "प्याज"},
	{"अण्डे", "अंडे"},
	{"अंडा", "अंडे"},
	{"दुध", "दूध"},
	{"आलु", "आलू"},
	{"मिर्ची", "मिर्च"},
	{"हलदी", "हल्दी"},
	{"धनियां", "धनिया"},
	{"अदरख", "अदरक"},
	{"लहसन", "लहसुन"},
	{"चांवल", "चावल"},
	{"पनिर", "पनीर"},
}

// 預設詞彙表：轉寫與天城文 → 英文
var defaultVocabulary = []Rule{
	// Hinglish → English
	{"pyaz", "onion"},
	{"ande", "eggs"},
	{"doodh", "milk"},
	{"aloo", "potato"},
	{"tamatar", "tomato"},
	{"mirch", "chili"},
	{"namak", "salt"},
	{"tel", "oil"},
	{"jeera", "cumin"},
	{"haldi", "turmeric"},
	{"dhaniya", "coriander"},
	{"adrak", "ginger"},
	{"lehsun", "garlic"},
	{"chawal", "rice"},
	{"dal", "lentils"},
	{"paneer", "cottage cheese"},
	{"sabzi", "vegetables"},
	{"masala", "spices"},
	{"garam masala", "garam masala"},
	{"hari mirch", "green chili"},
	{"lal mirch", "red chili"},
	{"kala namak", "black salt"},
	{"safed namak", "white salt"},
	{"sarson ka tel", "mustard oil"},
	{"ghee", "clarified butter"},
	{"makhan", "butter"},
	{"dahi", "yogurt"},
	{"chini", "sugar"},
	{"gud", "jaggery"},
	{"atta", "wheat flour"},
	{"maida", "refined flour"},
	{"besan", "gram flour"},
	{"suji", "semolina"},
	{"poha", "flattened rice"},

	// 天城文 → English
	{"प्याज", "onion"},
	{"अंडे", "eggs"},
	{"दूध", "milk"},
	{"आलू", "potato"},
	{"टमाटर", "tomato"},
	{"मिर्च", "chili"},
	{"हरी मिर्च", "green chili"},
	{"लाल मिर्च", "red chili"},
	{"नमक", "salt"},
	{"काला नमक", "black salt"},
	{"तेल", "oil"},
	{"सरसों का तेल", "mustard oil"},
	{"जीरा", "cumin"},
	{"हल्दी", "turmeric"},
	{"धनिया", "coriander"},
	{"अदरक", "ginger"},
	{"लहसुन", "garlic"},
	{"चावल", "rice"},
	{"दाल", "lentils"},
	{"पनीर", "cottage cheese"},
	{"सब्जी", "vegetables"},
	{"मसाला", "spices"},
	{"गरम मसाला", "garam masala"},
	{"घी", "clarified butter"},
	{"मक्खन", "butter"},
	{"दही", "yogurt"},
	{"चीनी", "sugar"},
	{"गुड़", "jaggery"},
	{"आटा", "wheat flour"},
	{"मैदा", "refined flour"},
	{"बेसन", "gram flour"},
	{"सूजी", "semolina"},
	{"पोहा", "flattened rice"},
}

// DefaultCorrections 內建拼字修正規則（複本）
func DefaultCorrections() []Rule {
	return append([]Rule(nil), defaultCorrections...)
}

// DefaultVocabulary 內建詞彙規則（複本）
func DefaultVocabulary() []Rule {
	return append([]Rule(nil), defaultVocabulary...)
}
