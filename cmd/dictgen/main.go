// Command dictgen compiles a pipe-delimited source dictionary into the
// SQLite dictionary file the service loads at runtime.
//
// Source format, one word form per line:
//
//	form|lemma|category
//
// Lines starting with # are comments. Categories use OpenCorpora tags
// (NOUN, VERB, PREP, CONJ, PRCL, INTJ, ...); unknown tags are kept as UNKN.
//
//	go run ./cmd/dictgen -input data/dict.ru.txt -output data/dict.db
package main

import (
	"context"
	"flag"
	"log"

	"github.com/andreystarchikov/lemmatizator/pkg/lemma/morph"
)

func main() {
	var (
		input  = flag.String("input", "data/dict.ru.txt", "Source dictionary (form|lemma|category lines)")
		output = flag.String("output", "data/dict.db", "Compiled SQLite dictionary")
	)
	flag.Parse()

	entries, err := morph.LoadTextEntries(*input)
	if err != nil {
		log.Fatalf("load source dictionary: %v", err)
	}
	if len(entries) == 0 {
		log.Fatalf("no word forms found in %s", *input)
	}

	ctx := context.Background()
	if err := morph.CreateSQLiteDictionary(ctx, *output, entries); err != nil {
		log.Fatalf("write dictionary: %v", err)
	}

	log.Printf("compiled %d word forms into %s", len(entries), *output)
}
