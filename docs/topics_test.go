package docs

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/expenses"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md loads, and every .md file is listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		if _, err := Topic(topic); err != nil {
			t.Errorf("Topic(%q): %v", topic, err)
		}
	}

	mdFiles, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range mdFiles {
		name := strings.TrimSuffix(f, ".md")
		if name == Index {
			continue
		}
		found := false
		for _, l := range listed {
			if l == name {
				found = true
			}
		}
		if !found {
			t.Errorf("%s is not listed in readme.md", f)
		}
	}

	all, err := All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(listed) {
		t.Errorf("All() = %v, readme.md lists %v", all, listed)
	}
}

func TestTopics_Star(t *testing.T) {
	got, err := Topics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, heading := range []string{"# Backups", "# Configuration", "# The interactive menu", "# Expense store format"} {
		if !strings.Contains(got, heading) {
			t.Errorf("Topics(\"*\") lacks %q", heading)
		}
	}
	if strings.Contains(got, "# exps documentation") {
		t.Error("Topics(\"*\") includes the index")
	}
}

func TestTopic_NotFound(t *testing.T) {
	if _, err := Topic("nope"); err == nil {
		t.Error("Topic(\"nope\") succeeded, want an error")
	}
}

// TestStoreFormatExample checks that the JSON example of the store format is
// what the store actually writes.
func TestStoreFormatExample(t *testing.T) {
	src, err := os.ReadFile("store-format.md")
	if err != nil {
		t.Fatal(err)
	}
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var example string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		block, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || string(block.Language(src)) != "json" {
			return ast.WalkContinue, nil
		}
		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			example += string(seg.Value(src))
		}
		return ast.WalkStop, nil
	})

	var want bytes.Buffer
	if err := expenses.EncodeExpenses(&want, expenses.Expenses{expenses.NewExpense("1/1", "coffee", "3.50")}); err != nil {
		t.Fatal(err)
	}
	if example != want.String() {
		t.Errorf("store-format example = %q, want %q", example, want.String())
	}
}
