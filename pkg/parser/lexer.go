package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/vqltools/vqlkeeper/pkg/vql"
)

// vqlLexer tokenizes fragment bodies for reference extraction. The final
// Punct rule is a catch-all so arbitrary characters in string-free positions
// never fail the lex.
var vqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\r\n]*`},
	{Name: "String", Pattern: `'([^'\\]|\\.)*'`},
	{Name: "QuotedIdent", Pattern: `"([^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `\d+(\.\d*)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Punct", Pattern: `[^\s\w]`},
})

var (
	identType       = vqlLexer.Symbols()["Ident"]
	quotedIdentType = vqlLexer.Symbols()["QuotedIdent"]
)

// identifiers returns the distinct identifier tokens mentioned in a
// fragment, lower-cased, in first-mention order. Results are cached by
// content hash since lexing dominates parse time on large exports.
func (p *Parser) identifiers(code string) ([]string, error) {
	key := vql.HashCode(code)
	if refs, ok := p.refCache.Get(key); ok {
		return refs, nil
	}

	lex, err := vqlLexer.Lex("", strings.NewReader(code))
	if err != nil {
		return nil, errors.Wrap(err, "failed to lex fragment")
	}

	seen := make(map[string]struct{})
	refs := make([]string, 0, 16)
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, errors.Wrap(err, "failed to tokenize fragment")
		}
		if tok.EOF() {
			break
		}

		var ident string
		switch tok.Type {
		case identType:
			ident = strings.ToLower(tok.Value)
		case quotedIdentType:
			ident = strings.ToLower(strings.Trim(tok.Value, `"`))
		default:
			continue
		}

		if _, ok := seen[ident]; ok {
			continue
		}
		seen[ident] = struct{}{}
		refs = append(refs, ident)
	}

	p.refCache.Add(key, refs)
	return refs, nil
}
