package memory

import (
	"context"
	"testing"

	"github.com/bububa/agent-toolkit/components/embedder"
	"github.com/bububa/agent-toolkit/components/vectordb"
)

func newRecord(content string, vector []float64, meta map[string]string) vectordb.Record {
	return vectordb.Record{
		Embedding: embedder.Embedding{
			Object:    content,
			Embedding: vector,
			Meta:      meta,
		},
	}
}

func TestSearchRanking(t *testing.T) {
	ctx := context.Background()
	engine, err := New(vectordb.WithTopK(2))
	if err != nil {
		t.Fatal(err)
	}
	err = engine.Insert(ctx, "docs",
		newRecord("exact", []float64{1, 0}, nil),
		newRecord("close", []float64{0.9, 0.1}, nil),
		newRecord("far", []float64{0, 1}, nil),
	)
	if err != nil {
		t.Fatal(err)
	}
	records, err := engine.Search(ctx, []float64{1, 0}, vectordb.SearchWithCollection("docs"))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expect topK 2 results, got %d", len(records))
	}
	if records[0].Embedding.Object != "exact" {
		t.Errorf("expect best match first, got %q", records[0].Embedding.Object)
	}
	if records[0].Score < records[1].Score {
		t.Error("expect results sorted by descending score")
	}
}

func TestSearchMetaFilter(t *testing.T) {
	ctx := context.Background()
	engine, err := New()
	if err != nil {
		t.Fatal(err)
	}
	err = engine.Insert(ctx, "docs",
		newRecord("kept", []float64{1, 0}, map[string]string{"source": "manual"}),
		newRecord("dropped", []float64{1, 0}, map[string]string{"source": "web"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	records, err := engine.Search(ctx, []float64{1, 0},
		vectordb.SearchWithCollection("docs"),
		vectordb.SearchWithTopK(10),
		vectordb.SearchWithMeta(map[string]string{"source": "manual"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Embedding.Object != "kept" {
		t.Errorf("expect meta filter to keep one record, got %+v", records)
	}
}

func TestRecordIDAssigned(t *testing.T) {
	ctx := context.Background()
	engine, _ := New()
	if err := engine.Insert(ctx, "docs", newRecord("content", []float64{1}, nil)); err != nil {
		t.Fatal(err)
	}
	col, _ := engine.Collection(ctx, "docs")
	if got := col.Records(); len(got) != 1 || got[0].ID == "" {
		t.Error("expect inserted record to be assigned a deterministic ID")
	}
}
