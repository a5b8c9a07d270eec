package components

import (
	"testing"

	"github.com/bububa/agent-toolkit/schema"
)

func TestMemoryOverflow(t *testing.T) {
	mem := NewMemory(2)
	mem.NewMessage(UserRole, schema.String("first"))
	mem.NewMessage(AssistantRole, schema.String("second"))
	mem.NewMessage(UserRole, schema.String("third"))
	history := mem.History()
	if len(history) != 2 {
		t.Fatalf("expect 2 messages, got %d", len(history))
	}
	if got := history[0].StringifiedContent(); got != "second" {
		t.Errorf("expect oldest message dropped, got %q first", got)
	}
}

func TestMemoryDeleteTurn(t *testing.T) {
	mem := NewMemory(0)
	mem.NewTurn()
	first := mem.TurnID()
	mem.NewMessage(UserRole, schema.String("q1"))
	mem.NewMessage(AssistantRole, schema.String("a1"))
	mem.NewTurn()
	mem.NewMessage(UserRole, schema.String("q2"))
	if err := mem.DeleteTurn(first); err != nil {
		t.Fatal(err)
	}
	if mem.MessageCount() != 1 {
		t.Errorf("expect 1 message, got %d", mem.MessageCount())
	}
	if err := mem.DeleteTurn("missing"); err == nil {
		t.Error("expect error for unknown turn ID")
	}
}

func TestMemoryCopyIsolated(t *testing.T) {
	src := NewMemory(10)
	src.NewTurn()
	src.NewMessage(UserRole, schema.String("hello"))
	dst := NewMemory(0)
	dst.Copy(src)
	src.NewMessage(AssistantRole, schema.String("world"))
	if dst.MessageCount() != 1 {
		t.Errorf("expect copy isolated from source, got %d messages", dst.MessageCount())
	}
	if dst.TurnID() != src.TurnID() {
		t.Errorf("expect turn ID copied")
	}
}
