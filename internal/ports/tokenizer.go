package ports

// Tokenizer defines the interface for splitting raw text into an ordered
// sequence of normalized tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}
