package slug

// CJK classification pinned to Unicode 16.0. The table bundles every block
// treated as CJK for slug purposes: Han, Hiragana, Katakana, and Hangul plus
// their radicals, compatibility forms, fullwidth/halfwidth forms, and the
// historic ideographic scripts that share their segmentation behavior.
// The ranges are a fixed data table so slug output is identical on every
// platform regardless of host locale or ICU version.
type runeRange struct {
	lo, hi rune
}

// cjkRanges is sorted by lo and non-overlapping.
var cjkRanges = []runeRange{
	{0x1100, 0x11FF},   // Hangul Jamo
	{0x20A9, 0x20A9},   // Won Sign
	{0x2329, 0x232A},   // Angle Brackets
	{0x2630, 0x2637},   // Trigrams for Divination
	{0x268A, 0x268F},   // Monograms and Digrams
	{0x2E80, 0x2E99},   // CJK Radicals Supplement
	{0x2E9B, 0x2EF3},   // CJK Radicals Supplement
	{0x2F00, 0x2FD5},   // Kangxi Radicals
	{0x2FF0, 0x303E},   // Ideographic Description + CJK Symbols and Punctuation
	{0x3041, 0x3096},   // Hiragana
	{0x3099, 0x30FF},   // Combining Kana Marks + Katakana
	{0x3105, 0x312F},   // Bopomofo
	{0x3131, 0x318E},   // Hangul Compatibility Jamo
	{0x3190, 0x31E5},   // Kanbun + CJK Strokes + Katakana Phonetic Extensions
	{0x31EF, 0x321E},   // Enclosed CJK Letters and Months
	{0x3220, 0x3247},   // Enclosed CJK Letters and Months
	{0x3250, 0xA48C},   // CJK Compatibility .. Unified Ideographs .. Yi Syllables
	{0xA490, 0xA4C6},   // Yi Radicals
	{0xA960, 0xA97C},   // Hangul Jamo Extended-A
	{0xAC00, 0xD7A3},   // Hangul Syllables
	{0xD7B0, 0xD7C6},   // Hangul Jamo Extended-B
	{0xD7CB, 0xD7FB},   // Hangul Jamo Extended-B
	{0xF900, 0xFAFF},   // CJK Compatibility Ideographs
	{0xFE10, 0xFE19},   // Vertical Forms
	{0xFE30, 0xFE52},   // CJK Compatibility Forms
	{0xFE54, 0xFE66},   // CJK Compatibility Forms
	{0xFE68, 0xFE6B},   // CJK Compatibility Forms
	{0xFF01, 0xFFBE},   // Fullwidth Forms
	{0xFFC2, 0xFFC7},   // Halfwidth Hangul
	{0xFFCA, 0xFFCF},   // Halfwidth Hangul
	{0xFFD2, 0xFFD7},   // Halfwidth Hangul
	{0xFFDA, 0xFFDC},   // Halfwidth Hangul
	{0xFFE0, 0xFFE6},   // Fullwidth Signs
	{0xFFE8, 0xFFEE},   // Halfwidth Signs
	{0x16FE0, 0x16FE4}, // Ideographic Symbols and Punctuation
	{0x16FF0, 0x16FF6}, // Vietnamese Alternate Reading Marks
	{0x17000, 0x18CD5}, // Tangut Ideographs + Components
	{0x18CFF, 0x18D1E}, // Tangut Supplement
	{0x18D80, 0x18DF2}, // Tangut Supplement
	{0x1AFF0, 0x1AFF3}, // Kana Extended-B
	{0x1AFF5, 0x1AFFB}, // Kana Extended-B
	{0x1AFFD, 0x1AFFE}, // Kana Extended-B
	{0x1B000, 0x1B122}, // Kana Supplement + Kana Extended-A
	{0x1B132, 0x1B132}, // Hiragana Letter Small Ko
	{0x1B150, 0x1B152}, // Small Kana Extension
	{0x1B155, 0x1B155}, // Katakana Letter Small Ko
	{0x1B164, 0x1B167}, // Small Kana Extension
	{0x1B170, 0x1B2FB}, // Nushu
	{0x1D300, 0x1D356}, // Tai Xuan Jing Symbols
	{0x1D360, 0x1D376}, // Counting Rod Numerals
	{0x1F200, 0x1F200}, // Square Hiragana Hoka
	{0x1F202, 0x1F202}, // Squared Katakana Sa
	{0x1F210, 0x1F219}, // Enclosed Ideographic Supplement
	{0x1F21B, 0x1F22E}, // Enclosed Ideographic Supplement
	{0x1F230, 0x1F231}, // Enclosed Ideographic Supplement
	{0x1F237, 0x1F237}, // Enclosed Ideographic Supplement
	{0x1F23B, 0x1F23B}, // Enclosed Ideographic Supplement
	{0x1F240, 0x1F248}, // Tortoise Shell Bracketed Ideographs
	{0x1F260, 0x1F265}, // Circled Ideographs
	{0x20000, 0x3FFFD}, // CJK Unified Ideographs Extensions B through I
}

// IsCJK reports whether r belongs to a CJK script per the bundled Unicode
// 16.0 table. Runs of such runes are kept contiguous in slugs with no
// internal hyphenation.
func IsCJK(r rune) bool {
	lo, hi := 0, len(cjkRanges)
	for lo < hi {
		mid := (lo + hi) / 2
		rg := cjkRanges[mid]
		switch {
		case r < rg.lo:
			hi = mid
		case r > rg.hi:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}
