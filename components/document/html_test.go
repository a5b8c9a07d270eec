package document

import (
	"strings"
	"testing"
)

const samplePage = `<html>
<head><title>Fee Schedule</title></head>
<body>
<nav>ignore me</nav>
<article>
<h1>Fees</h1>
<p>The annual fee is <em>twelve</em> dollars.</p>
<script>alert("nope")</script>
</article>
<footer>copyright</footer>
</body>
</html>`

func TestFromHTML(t *testing.T) {
	doc, err := FromHTML(strings.NewReader(samplePage), nil)
	if err != nil {
		t.Fatal(err)
	}
	content := doc.String()
	if !strings.Contains(content, "# Fees") {
		t.Errorf("expect heading converted to markdown, got %q", content)
	}
	if !strings.Contains(content, "*twelve*") {
		t.Errorf("expect emphasis converted to markdown, got %q", content)
	}
	for _, excluded := range []string{"ignore me", "copyright", "alert"} {
		if strings.Contains(content, excluded) {
			t.Errorf("expect %q stripped from content", excluded)
		}
	}
	if got := doc.Meta()["title"]; got != "Fee Schedule" {
		t.Errorf("expect title metadata, got %q", got)
	}
}

func TestFromHTMLKeepsCallerMeta(t *testing.T) {
	doc, err := FromHTML(strings.NewReader(samplePage), map[string]string{"source": "handbook"})
	if err != nil {
		t.Fatal(err)
	}
	if doc.Meta()["source"] != "handbook" {
		t.Error("expect caller metadata preserved")
	}
}
