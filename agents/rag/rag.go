package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/bububa/agent-toolkit/agents"
	"github.com/bububa/agent-toolkit/components"
	"github.com/bububa/agent-toolkit/components/document"
	"github.com/bububa/agent-toolkit/components/embedder"
	"github.com/bububa/agent-toolkit/components/vectordb"
	"github.com/bububa/agent-toolkit/schema"
)

type Options struct {
	name              string
	enhanceQueryAgent agents.TypeableAgent[schema.String, schema.String]
	embedder          embedder.Embedder
	chunker           embedder.Chunker
	vectordb          vectordb.Engine
	contextGenerator  func(string, []vectordb.Record) string
	searchOptions     []vectordb.SearchOption
}

// RAG answers queries by retrieving relevant chunks from a vector store and
// handing them, together with the query, to an answering agent.
type RAG[O schema.Schema] struct {
	agent agents.TypeableAgent[schema.String, O]
	Options
}

type Option func(*Options)

func WithName(name string) Option {
	return func(r *Options) {
		r.name = name
	}
}

func WithChunker(chunker embedder.Chunker) Option {
	return func(r *Options) {
		r.chunker = chunker
	}
}

func WithEmbedder(e embedder.Embedder) Option {
	return func(r *Options) {
		r.embedder = e
	}
}

func WithVectorDB(v vectordb.Engine) Option {
	return func(r *Options) {
		r.vectordb = v
	}
}

func WithEnhanceQueryAgent(v agents.TypeableAgent[schema.String, schema.String]) Option {
	return func(r *Options) {
		r.enhanceQueryAgent = v
	}
}

func WithContextGenerator(fn func(string, []vectordb.Record) string) Option {
	return func(r *Options) {
		r.contextGenerator = fn
	}
}

func WithSearchOptions(opts ...vectordb.SearchOption) Option {
	return func(r *Options) {
		r.searchOptions = opts
	}
}

func NewRAG[O schema.Schema](agent agents.TypeableAgent[schema.String, O], opts ...Option) *RAG[O] {
	ret := new(RAG[O])
	ret.agent = agent
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.contextGenerator == nil {
		ret.contextGenerator = defaultContextGenerator
	}
	return ret
}

func (r *RAG[O]) Name() string {
	return r.name
}

func (r *RAG[O]) SetSearchOptions(opts ...vectordb.SearchOption) {
	r.searchOptions = opts
}

// AddDocuments chunks, embeds, and inserts documents into the named
// collection. Document meta is carried onto every chunk's record.
func (r *RAG[O]) AddDocuments(ctx context.Context, collectionName string, docs ...document.Document) (*components.ApiUsage, error) {
	totalUsage := new(components.ApiUsage)
	for _, doc := range docs {
		var parts []string
		content := doc.String()
		if r.chunker != nil {
			parts = r.chunker.SplitText(content)
		} else {
			parts = []string{content}
		}
		usage := new(components.ApiUsage)
		embeddings, err := r.embedder.BatchEmbed(ctx, parts, usage)
		totalUsage.Merge(usage)
		if err != nil {
			return totalUsage, err
		}
		records := make([]vectordb.Record, 0, len(embeddings))
		for _, embedding := range embeddings {
			embedding.Meta = doc.Meta()
			records = append(records, vectordb.Record{Embedding: embedding})
		}
		if err := r.vectordb.Insert(ctx, collectionName, records...); err != nil {
			return totalUsage, err
		}
	}
	return totalUsage, nil
}

// Search embeds the query and returns the most similar records.
func (r *RAG[O]) Search(ctx context.Context, query string, opts ...vectordb.SearchOption) ([]vectordb.Record, *components.ApiUsage, error) {
	embedding := new(embedder.Embedding)
	usage := new(components.ApiUsage)
	if err := r.embedder.Embed(ctx, query, embedding, usage); err != nil {
		return nil, nil, err
	}
	records, err := r.vectordb.Search(ctx, embedding.Embedding, opts...)
	if err != nil {
		return nil, usage, err
	}
	return records, usage, nil
}

// Run retrieves context for the query and runs the answering agent over it.
func (r *RAG[O]) Run(ctx context.Context, query *schema.String, output *O, apiResp *components.ApiResponse) error {
	enhancedQuery, err := r.generateEnhancedQuery(ctx, query, apiResp)
	if err != nil {
		return err
	}
	usage := new(components.ApiUsage)
	if apiResp != nil {
		usage.Merge(apiResp.Usage)
	}
	records, searchUsage, err := r.Search(ctx, enhancedQuery, r.searchOptions...)
	usage.Merge(searchUsage)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no relevant information to answer question: %s", query.String())
	}
	input := schema.NewString(r.contextGenerator(query.String(), records))
	err = r.agent.Run(ctx, input, output, apiResp)
	if apiResp != nil {
		usage.Merge(apiResp.Usage)
		apiResp.Usage = usage
	}
	return err
}

// ReturnAnswer answers a single query with the retrieval pipeline and
// renders the agent output as text. It satisfies the retrieval tool's
// Engine interface.
func (r *RAG[O]) ReturnAnswer(ctx context.Context, query string) (string, error) {
	input := schema.String(query)
	output := new(O)
	apiResp := new(components.ApiResponse)
	if err := r.Run(ctx, &input, output, apiResp); err != nil {
		return "", err
	}
	return schema.Stringify(*output), nil
}

func (r *RAG[O]) generateEnhancedQuery(ctx context.Context, query *schema.String, apiResp *components.ApiResponse) (string, error) {
	if r.enhanceQueryAgent == nil {
		return query.String(), nil
	}
	var out schema.String
	if err := r.enhanceQueryAgent.Run(ctx, query, &out, apiResp); err != nil {
		return "", err
	}
	return out.String(), nil
}

func defaultContextGenerator(query string, records []vectordb.Record) string {
	sb := new(strings.Builder)
	sb.WriteString("Based on the following information:\n\n")
	for i, record := range records {
		fmt.Fprintf(sb, "%d. %s\n", i+1, record.Embedding.Object)
		if meta := record.Embedding.Meta; meta != nil {
			for k, v := range meta {
				fmt.Fprintf(sb, "  - %s: %s\n", k, v)
			}
		}
		fmt.Fprintf(sb, " - Score: %.3f\n", record.Score)
	}
	fmt.Fprintf(sb, "\nPlease provide a comprehensive answer to this question: %s", query)
	return sb.String()
}
