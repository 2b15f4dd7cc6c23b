package label

import "testing"

func TestForLanguage(t *testing.T) {
	tests := []struct {
		name      string
		lang      Language
		reference string
	}{
		{name: "english", lang: English, reference: "Reference"},
		{name: "german", lang: German, reference: "Referenz"},
		{name: "french", lang: French, reference: "Référence"},
		{name: "italian", lang: Italian, reference: "Riferimento"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForLanguage(tt.lang).Reference; got != tt.reference {
				t.Errorf("Reference = %q, want %q", got, tt.reference)
			}
		})
	}
}

func TestFromCode(t *testing.T) {
	if FromCode("de") != German {
		t.Error("FromCode(\"de\") should be German")
	}
	if FromCode("unknown") != English {
		t.Error("unknown codes should default to English")
	}
}
