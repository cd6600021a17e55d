package jacklex_test

import (
	"testing"

	"github.com/hackcore/nand2tetris/jacklex"
	"github.com/hackcore/nand2tetris/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanClassExample(t *testing.T) {
	src := `class Foo { method int bar(int x) { return x + 1; } }`
	toks, err := jacklex.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	want := []token.Kind{
		token.Keyword, token.Identifier, token.SymbolKind,
		token.Keyword, token.Keyword, token.Identifier, token.SymbolKind,
		token.Keyword, token.Identifier, token.SymbolKind, token.SymbolKind,
		token.Keyword, token.Identifier, token.SymbolKind, token.IntegerConstant,
		token.SymbolKind, token.SymbolKind, token.SymbolKind, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d kind = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexRoundTrip(t *testing.T) {
	src := `let x = "hi there"; // comment
	/* block
	   comment */
	do Foo.bar(1, 2);`
	toks, err := jacklex.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	for _, tk := range toks {
		if tk.Kind == token.EOF {
			if tk.Span.Len != 0 {
				t.Errorf("Eof span len = %d, want 0", tk.Span.Len)
			}
			continue
		}
		end := tk.Span.End()
		if end > uint32(len(src)) {
			t.Fatalf("token %v span exceeds source length", tk)
		}
		if src[tk.Span.Offset:end] != tk.Text {
			t.Errorf("lexeme mismatch: span text %q != Text %q", src[tk.Span.Offset:end], tk.Text)
		}
	}
}

func TestIntegerBounds(t *testing.T) {
	cases := []struct {
		src     string
		wantErr bool
	}{
		{"32767", false},
		{"0", false},
		{"32768", true},
		{"99999", true},
	}
	for _, c := range cases {
		toks, err := jacklex.Tokenize(c.src)
		if c.wantErr {
			if err == nil {
				t.Errorf("Tokenize(%q): expected error, got tokens %v", c.src, toks)
				continue
			}
			lexErr, ok := err.(*jacklex.Error)
			if !ok || lexErr.Kind != jacklex.IntegerOutOfRange {
				t.Errorf("Tokenize(%q): expected IntegerOutOfRange, got %v", c.src, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Tokenize(%q): unexpected error %v", c.src, err)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := jacklex.Tokenize(`"never closed`)
	lexErr, ok := err.(*jacklex.Error)
	if !ok || lexErr.Kind != jacklex.UnterminatedString {
		t.Fatalf("expected UnterminatedString, got %v", err)
	}
}

func TestUnterminatedStringRejectsEmbeddedNewline(t *testing.T) {
	_, err := jacklex.Tokenize("\"abc\ndef\"")
	lexErr, ok := err.(*jacklex.Error)
	if !ok || lexErr.Kind != jacklex.UnterminatedString {
		t.Fatalf("expected UnterminatedString for embedded newline, got %v", err)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, err := jacklex.Tokenize("/* never closed")
	lexErr, ok := err.(*jacklex.Error)
	if !ok || lexErr.Kind != jacklex.UnterminatedComment {
		t.Fatalf("expected UnterminatedComment, got %v", err)
	}
}

func TestInvalidSymbol(t *testing.T) {
	_, err := jacklex.Tokenize("let x = 1 @ 2;")
	lexErr, ok := err.(*jacklex.Error)
	if !ok || lexErr.Kind != jacklex.InvalidSymbol {
		t.Fatalf("expected InvalidSymbol, got %v", err)
	}
}

func TestDocCommentTreatedAsLineOrBlockComment(t *testing.T) {
	toks, err := jacklex.Tokenize("/** doc comment */ class Foo {}")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[0].Kind != token.Keyword || toks[0].Keyword != token.KeywordClass {
		t.Errorf("first token = %v, want class keyword", toks[0])
	}
}

func TestLineColumnTracking(t *testing.T) {
	src := "class\nFoo"
	toks, err := jacklex.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[0].Span.Line != 1 || toks[0].Span.Column != 1 {
		t.Errorf("class token at %d:%d, want 1:1", toks[0].Span.Line, toks[0].Span.Column)
	}
	if toks[1].Span.Line != 2 || toks[1].Span.Column != 1 {
		t.Errorf("Foo token at %d:%d, want 2:1", toks[1].Span.Line, toks[1].Span.Column)
	}
}
