// Package pamflet parses pamflets, the plain-text markup of a flashcard slide,
// into typed content elements.
//
// Parsing happens in two passes. A character level tokenizer classifies every
// line as text, list item, property, comment or keyword block, and a token
// level parser assembles the tokens into elements. Both passes are explicit
// state machines and never fail on user input: unknown properties, bad
// answer indices or malformed URLs fall back to defaults.
//
// The dialect:
//
//	What is the capital of France?
//	.textAlign: left
//	- Berlin
//	- Paris
//	- Madrid
//	.correct: 1
//	.explanation: Paris has been the capital since 508.
//	// comments are ignored
//	Lnk "https://en.wikipedia.org/wiki/Paris" Read more
//	Img "paris.png" The Eiffel tower at night
//	Aud "bonjour.mp3"
//
// Example:
//
//	elements, err := pamflet.Parse(src)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, e := range elements {
//		fmt.Println(e.Kind(), e.ElementID())
//	}
//
// Each call builds a fresh tokenizer and parser, so Parse is safe to call
// from multiple goroutines.
package pamflet
