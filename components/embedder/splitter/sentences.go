package splitter

import (
	"strings"

	"github.com/clipperhouse/uax29/sentences"

	"github.com/bububa/agent-toolkit/components/embedder"
)

// Sentences splits text on Unicode sentence boundaries and groups the
// sentences into token-budgeted chunks with a configurable overlap.
type Sentences struct {
	Options
}

var _ embedder.Chunker = (*Sentences)(nil)

func NewSentences(opts ...Option) *Sentences {
	ret := new(Sentences)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.chunkSize <= 0 {
		ret.chunkSize = 200
	}
	if ret.overlap < 0 {
		ret.overlap = 0
	}
	if ret.tokenCounter == nil {
		ret.tokenCounter = new(embedder.DefaultTokenCounter)
	}
	return ret
}

// SplitText implements embedder.Chunker
func (s *Sentences) SplitText(text string) []string {
	parts := s.segment(text)
	if len(parts) == 0 {
		return nil
	}
	var (
		chunks  []string
		current []string
		tokens  int
	)
	for i := 0; i < len(parts); i++ {
		cnt := s.tokenCounter.Count(parts[i])
		if tokens+cnt > s.chunkSize && tokens > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			// Carry trailing sentences into the next chunk until the overlap
			// budget is spent.
			overlapTokens := 0
			var carried []string
			for j := len(current) - 1; j >= 0 && overlapTokens < s.overlap; j-- {
				overlapTokens += s.tokenCounter.Count(current[j])
				carried = append([]string{current[j]}, carried...)
			}
			current = carried
			tokens = overlapTokens
		}
		current = append(current, parts[i])
		tokens += cnt
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

// TokenCount implements embedder.Chunker
func (s *Sentences) TokenCount(txt string) int {
	return s.tokenCounter.Count(txt)
}

func (s *Sentences) segment(text string) []string {
	seg := sentences.NewSegmenter([]byte(text))
	var parts []string
	for seg.Next() {
		if part := strings.TrimSpace(string(seg.Bytes())); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
