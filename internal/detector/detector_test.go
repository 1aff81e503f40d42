package detector

import "testing"

func TestDetectScript(t *testing.T) {
	cases := []struct {
		name string
		text string
		want ScriptKind
	}{
		{"english", "The quick brown fox jumps over the lazy dog", ScriptLatin},
		{"chinese", "今天天气很好，我们去公园散步吧", ScriptChinese},
		{"japanese", "今日はいい天気ですね、公園に行きましょう", ScriptJapanese},
		{"korean", "오늘 날씨가 좋아서 공원에 갑니다", ScriptKorean},
		{"cyrillic", "Сьогодні гарна погода, ходімо в парк", ScriptCyrillic},
		{"arabic", "الطقس جميل اليوم فلنذهب إلى الحديقة", ScriptArabic},
		{"thai", "วันนี้อากาศดีไปสวนกันเถอะ", ScriptThai},
		{"empty", "", ScriptUnknown},
		{"punctuation only", "... !!! 123", ScriptUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectScript(tc.text); got != tc.want {
				t.Errorf("DetectScript(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestSameScript_Match(t *testing.T) {
	if !SameScript("Hello there", "General Kenobi") {
		t.Error("expected matching latin scripts")
	}
}

func TestSameScript_Mismatch(t *testing.T) {
	if SameScript("Hello there", "你好，很高兴认识你") {
		t.Error("expected script mismatch between latin and chinese")
	}
}

func TestSameScript_UnknownNeverMismatches(t *testing.T) {
	if !SameScript("", "Hello there") {
		t.Error("unknown script should not count as a mismatch")
	}
}
