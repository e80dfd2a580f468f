package textprep

import "testing"

func TestStripHTMLRemovesTags(t *testing.T) {
	got := StripHTML("<p>кот <b>и</b> дом</p>")
	if got != "кот и дом" {
		t.Errorf("Expected 'кот и дом', got %q", got)
	}
}

func TestStripHTMLKeepsPlainText(t *testing.T) {
	got := StripHTML("мама мыла раму")
	if got != "мама мыла раму" {
		t.Errorf("Plain text should pass through, got %q", got)
	}
}

func TestStripHTMLSeparatesBlocks(t *testing.T) {
	// Adjacent blocks must not glue their words together
	got := StripHTML("<p>кот</p><p>дом</p>")
	if got != "кот дом" {
		t.Errorf("Expected 'кот дом', got %q", got)
	}
}

func TestStripHTMLSkipsScripts(t *testing.T) {
	got := StripHTML("<p>кот</p><script>var x = 'дом';</script>")
	if got != "кот" {
		t.Errorf("Script content should be dropped, got %q", got)
	}
}
