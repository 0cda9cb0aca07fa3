package lexer

import "testing"

func TestNextToken(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   []TokenType
	}{
		{
			name:  "entity header with identifier and reference",
			input: "widget kpi #mykpi @ref.chain\n",
			want: []TokenType{
				Identifier, Identifier, Hash, Identifier, Reference, EOL, EOF,
			},
		},
		{
			name:  "field with string and number",
			input: `label : "hello" + 1.5` + "\n",
			want:  []TokenType{Identifier, Colon, String, Plus, Number, EOL, EOF},
		},
		{
			name:  "punctuation",
			input: "{}(),:",
			want:  []TokenType{OpenBrace, CloseBrace, OpenParen, CloseParen, Comma, Colon, EOF},
		},
		{
			name:  "unrecognized character",
			input: "%",
			want:  []TokenType{ILLEGAL, EOF},
		},
		{
			name:  "empty reference",
			input: "@",
			want:  []TokenType{Reference, EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			for i, wantType := range tt.want {
				tok := l.NextToken()
				if tok.Type != wantType {
					t.Fatalf("token %d: Type = %s, want %s", i, tok.Type, wantType)
				}
			}
		})
	}
}

func TestReadString_Unterminated(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Errorf("Type = %s, want ILLEGAL", tok.Type)
	}
}

func TestReadString_Value(t *testing.T) {
	l := New(`"hello world"`)
	tok := l.NextToken()
	if tok.Type != String {
		t.Fatalf("Type = %s, want String", tok.Type)
	}
	if tok.Value != "hello world" {
		t.Errorf("Value = %q, want %q", tok.Value, "hello world")
	}
}

func TestTokenizeAll_EndsWithEOF(t *testing.T) {
	tokens := New("widget {\n}\n").TokenizeAll()
	if len(tokens) == 0 {
		t.Fatal("TokenizeAll returned no tokens")
	}
	last := tokens[len(tokens)-1]
	if last.Type != EOF {
		t.Errorf("last token Type = %s, want EOF", last.Type)
	}
}

func TestPosition_LineTracking(t *testing.T) {
	l := New("a\nb")
	first := l.NextToken()
	if first.Start.Line != 1 {
		t.Errorf("first token Start.Line = %d, want 1", first.Start.Line)
	}
	eol := l.NextToken()
	if eol.Type != EOL {
		t.Fatalf("second token Type = %s, want EOL", eol.Type)
	}
	third := l.NextToken()
	if third.Start.Line != 2 {
		t.Errorf("third token Start.Line = %d, want 2 (after EOL)", third.Start.Line)
	}
}
