package coverage

// Blocks is the reference table of Unicode blocks offered for coverage
// analysis. It deliberately covers a practical selection of scripts and
// symbol ranges rather than the complete Unicode block inventory.
var Blocks = []Block{
	{"Basic Latin", 0x0020, 0x007F},
	{"Latin-1 Supplement", 0x0080, 0x00FF},
	{"Latin Extended-A", 0x0100, 0x017F},
	{"Latin Extended-B", 0x0180, 0x024F},
	{"Cyrillic", 0x0400, 0x04FF},
	{"Greek and Coptic", 0x0370, 0x03FF},
	{"Arabic", 0x0600, 0x06FF},
	{"Devanagari", 0x0900, 0x097F},
	{"CJK Unified Ideographs", 0x4E00, 0x9FFF},
	{"Hiragana", 0x3040, 0x309F},
	{"Katakana", 0x30A0, 0x30FF},
	{"Hangul Syllables", 0xAC00, 0xD7AF},
	{"Thai", 0x0E00, 0x0E7F},
	{"Georgian", 0x10A0, 0x10FF},
	{"Armenian", 0x0530, 0x058F},
	{"Hebrew", 0x0590, 0x05FF},
	{"Ethiopic", 0x1200, 0x137F},
	{"Mathematical Operators", 0x2200, 0x22FF},
	{"Box Drawing", 0x2500, 0x257F},
	{"Currency Symbols", 0x20A0, 0x20CF},
	{"General Punctuation", 0x2000, 0x206F},
	{"Arrows", 0x2190, 0x21FF},
	{"Dingbats", 0x2700, 0x27BF},
	{"Emoticons", 0x1F600, 0x1F64F},
}
