package lookup

import (
	"context"
	"fmt"
	"testing"
)

func TestTool(t *testing.T) {
	ctx := context.Background()
	tool := New()
	tests := []struct {
		name string
		want string
	}{
		{"Alex", CoolAnswer},
		{"Bob", NotCoolAnswer},
		{"alex", NotCoolAnswer},
		{"", NotCoolAnswer},
	}
	for _, tt := range tests {
		ret, err := tool.Run(ctx, NewInput(tt.name))
		if err != nil {
			t.Fatal(err)
		}
		if ret.Answer != tt.want {
			t.Errorf("Run(%q) = %q, want %q", tt.name, ret.Answer, tt.want)
		}
	}
}

func TestToolWithCoolName(t *testing.T) {
	ctx := context.Background()
	tool := New(WithCoolName("Dana"))
	ret, err := tool.Run(ctx, NewInput("Dana"))
	if err != nil {
		t.Fatal(err)
	}
	if ret.Answer != CoolAnswer {
		t.Errorf("got %q, want %q", ret.Answer, CoolAnswer)
	}
	ret, err = tool.Run(ctx, NewInput("Alex"))
	if err != nil {
		t.Fatal(err)
	}
	if ret.Answer != NotCoolAnswer {
		t.Errorf("got %q, want %q", ret.Answer, NotCoolAnswer)
	}
}

func TestToolRunAnonymous(t *testing.T) {
	ctx := context.Background()
	tool := New()
	out, err := tool.RunAnonymous(ctx, `{"name": "Alex"}`)
	if err != nil {
		t.Fatal(err)
	}
	if ret := out.(*Output); ret.Answer != CoolAnswer {
		t.Errorf("got %q, want %q", ret.Answer, CoolAnswer)
	}
	out, err = tool.RunAnonymous(ctx, "Bob")
	if err != nil {
		t.Fatal(err)
	}
	if ret := out.(*Output); ret.Answer != NotCoolAnswer {
		t.Errorf("got %q, want %q", ret.Answer, NotCoolAnswer)
	}
}

func ExampleTool() {
	ctx := context.Background()
	tool := New()
	ret, _ := tool.Run(ctx, NewInput("Alex"))
	fmt.Println(ret.Answer)
	// Output:
	// is cool
}
