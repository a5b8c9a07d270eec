package document

// Document is a piece of corpus text with metadata, ready for chunking and
// embedding.
type Document struct {
	content string
	meta    map[string]string
}

// New returns a plain text Document
func New(content string, meta map[string]string) Document {
	return Document{
		content: content,
		meta:    meta,
	}
}

func (d Document) String() string {
	return d.content
}

// Meta returns document metadata
func (d Document) Meta() map[string]string {
	return d.meta
}
