package morph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andreystarchikov/lemmatizator/pkg/lemma/pos"
)

func TestDictionaryParses(t *testing.T) {
	dict := NewDictionary([]Entry{
		{Form: "кота", Parse: Parse{NormalForm: "кот", Category: pos.Noun}},
		{Form: "мыла", Parse: Parse{NormalForm: "мыть", Category: pos.Verb}},
		{Form: "мыла", Parse: Parse{NormalForm: "мыло", Category: pos.Noun}},
	})

	parses := dict.Parses("кота")
	if len(parses) != 1 || parses[0].NormalForm != "кот" {
		t.Errorf("Expected single parse кот, got %v", parses)
	}

	// Entry order is confidence order: the first recorded parse wins
	parses = dict.Parses("мыла")
	if len(parses) != 2 {
		t.Fatalf("Expected 2 parses, got %d", len(parses))
	}
	if parses[0].NormalForm != "мыть" || parses[0].Category != pos.Verb {
		t.Errorf("Top parse should be мыть/VERB, got %v", parses[0])
	}

	if parses := dict.Parses("неизвестное"); parses != nil {
		t.Errorf("Unknown form should have no parses, got %v", parses)
	}
}

func TestDictionaryCaseFolding(t *testing.T) {
	dict := NewDictionary([]Entry{
		{Form: "Кот", Parse: Parse{NormalForm: "Кот", Category: pos.Noun}},
	})

	parses := dict.Parses("кот")
	if len(parses) != 1 || parses[0].NormalForm != "кот" {
		t.Errorf("Forms and lemmas should be lowercased, got %v", parses)
	}
}

func TestLoadTextEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	content := `# comment
кот|кот|NOUN

кота|кот|NOUN
и|и|CONJ
malformed line
лишь|лишь
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := LoadTextEntries(path)
	if err != nil {
		t.Fatalf("LoadTextEntries: %v", err)
	}

	// Comments, blanks and lines with fewer than three fields are skipped
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d: %v", len(entries), entries)
	}
	if entries[2].Parse.Category != pos.Conjunction {
		t.Errorf("Expected CONJ, got %s", entries[2].Parse.Category)
	}
}

func TestLoadTextEntriesMissingFile(t *testing.T) {
	if _, err := LoadTextEntries(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}
