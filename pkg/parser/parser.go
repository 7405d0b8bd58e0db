package parser

import (
	"io"
	"os"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/vqltools/vqlkeeper/pkg/consts"
	"github.com/vqltools/vqlkeeper/pkg/vql"
)

// refCacheSize bounds the dependency-extraction cache. Entries are keyed by
// content hash, so reloading an unchanged repository tree never re-lexes a
// fragment.
const refCacheSize = 4096

type (
	// Parser splits VQL export scripts into code objects. The zero value is
	// not usable; create instances with New. A single Parser is safe for
	// concurrent use.
	Parser struct {
		refCache *lru.Cache[string, []string]
	}

	// fragment is one object definition cut out of a chapter.
	fragment struct {
		kind vql.Kind
		name string
		code string
	}
)

var defaultParser = New()

// New creates a Parser with a fresh dependency-extraction cache.
func New() *Parser {
	cache, err := lru.New[string, []string](refCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}

	return &Parser{refCache: cache}
}

// Parse reads a full export script from r and returns the code objects it
// defines, in script order. See ParseString for details.
func Parse(r io.Reader) ([]*vql.CodeObject, error) { return defaultParser.Parse(r) }

// ParseString parses a full export script. See the Parser method for
// details.
func ParseString(script string) ([]*vql.CodeObject, error) {
	return defaultParser.ParseString(script)
}

// ParseFile parses the export script at path.
func ParseFile(path string) ([]*vql.CodeObject, error) { return defaultParser.ParseFile(path) }

// Parse reads a full export script from r and returns the code objects it
// defines, in script order.
func (p *Parser) Parse(r io.Reader) ([]*vql.CodeObject, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read script")
	}

	return p.ParseString(string(data))
}

// ParseFile parses the export script at path.
func (p *Parser) ParseFile(path string) ([]*vql.CodeObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	return p.Parse(f)
}

// ParseString parses a full export script and returns the code objects it
// defines, in script order.
//
// Name collisions are not resolved here; they surface as
// *vql.DuplicateIdentityError when the objects are assembled into a
// Codebase. Content before the first chapter banner (such as the
// properties-file preamble) is ignored.
func (p *Parser) ParseString(script string) ([]*vql.CodeObject, error) {
	fragments, err := splitScript(script)
	if err != nil {
		return nil, err
	}

	// Index every name declared in this script so identifier mentions in
	// fragment bodies can be resolved to identities. A name may exist under
	// several kinds; a mention then references all of them (best-effort).
	byName := make(map[string][]vql.Identity)
	for _, frag := range fragments {
		id := vql.NewIdentity(frag.kind, frag.name)
		byName[id.Name] = append(byName[id.Name], id)
	}

	objects := make([]*vql.CodeObject, 0, len(fragments))
	for _, frag := range fragments {
		id := vql.NewIdentity(frag.kind, frag.name)

		refs, err := p.identifiers(frag.code)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to extract references for %s", id)
		}

		var deps []vql.Identity
		for _, ref := range refs {
			deps = append(deps, byName[ref]...)
		}

		objects = append(objects, vql.NewCodeObject(id, frag.code, deps))
	}

	return objects, nil
}

// splitScript cuts an export into per-object fragments: first into chapters
// at their banners, then into definitions at the object delimiter.
func splitScript(script string) ([]fragment, error) {
	type span struct {
		kind  vql.Kind
		start int
	}

	var spans []span
	for _, kind := range vql.Kinds() {
		if i := strings.Index(script, kind.Banner()); i >= 0 {
			spans = append(spans, span{kind: kind, start: i})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var fragments []fragment
	for i, sp := range spans {
		end := len(script)
		if i+1 < len(spans) {
			end = spans[i+1].start
		}
		chapter := script[sp.start:end]

		// The first piece is the banner plus any prose before the first
		// definition; everything after starts a new object.
		pieces := strings.Split(chapter, consts.ObjectDelimiter)
		for _, piece := range pieces[1:] {
			code := consts.ObjectDelimiter + piece

			name, err := extractObjectName(sp.kind, code)
			if err != nil {
				return nil, err
			}

			fragments = append(fragments, fragment{kind: sp.kind, name: name, code: code})
		}
	}

	return fragments, nil
}
