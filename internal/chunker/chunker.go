package chunker

// DefaultWindow is the window size used when the caller passes a non-positive size.
const DefaultWindow = 1024

// Chunk is one fixed window of the source text.
type Chunk struct {
	Index int
	Text  string
}

// Split cuts text into non-overlapping windows of size runes.
// Windows are positional, not linguistic: a boundary may fall mid-word
// or mid-sentence. The final window holds whatever remains.
func Split(text string, size int) []Chunk {
	if size <= 0 {
		size = DefaultWindow
	}

	runes := []rune(text)
	var chunks []Chunk
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Text:  string(runes[start:end]),
		})
	}
	return chunks
}
