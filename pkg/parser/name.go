package parser

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/vqltools/vqlkeeper/pkg/vql"
)

// extractObjectName pulls the object name out of the first line of a
// definition fragment. Each kind writes its name in a slightly different
// position on the CREATE OR REPLACE line.
//
// The rules follow the layout Denodo used at the time the export format was
// reverse engineered; newer server versions should be checked against them.
func extractObjectName(kind vql.Kind, code string) (string, error) {
	firstLine := code
	if i := strings.IndexByte(code, '\n'); i >= 0 {
		firstLine = code[:i]
	}
	firstLine = strings.TrimSpace(firstLine)

	var name string
	switch kind {
	case vql.KindI18NMaps:
		// CREATE OR REPLACE I18N MAP <name> ( ... the name precedes the
		// opening parenthesis.
		name = lastWord(strings.TrimRight(firstLine, " \t('"))

	case vql.KindFolders:
		// CREATE OR REPLACE FOLDER '/path/to/folder' ... the quoted path
		// becomes the name, with separators flattened.
		path := quotedValue(firstLine)
		path = strings.Trim(path, "/")
		name = strings.NewReplacer(" ", "_", "/", "_").Replace(path)

	case vql.KindTypes, vql.KindBaseViews, vql.KindAssociations:
		// CREATE OR REPLACE <KEYWORD> <name> — the name is the fifth word.
		name = wordAt(firstLine, 4)

	case vql.KindViews:
		// CREATE OR REPLACE VIEW <name>, or
		// CREATE OR REPLACE INTERFACE VIEW <name>.
		if strings.EqualFold(wordAt(firstLine, 3), "INTERFACE") {
			name = wordAt(firstLine, 5)
		} else {
			name = wordAt(firstLine, 4)
		}

	default:
		// DATASOURCES, WRAPPERS, and the remaining kinds put the name last
		// on the line.
		name = lastWord(firstLine)
	}

	name = strings.Trim(name, ";'\"")
	if name == "" {
		return "", errors.Errorf("could not determine %s object name from %q", kind, firstLine)
	}

	return name, nil
}

// lastWord returns the final whitespace-separated word of line, or "" for a
// blank line.
func lastWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// wordAt returns the i-th whitespace-separated word of line (0-based),
// falling back to the last word when the line is shorter than expected.
func wordAt(line string, i int) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	if i >= len(fields) {
		return fields[len(fields)-1]
	}
	return fields[i]
}

// quotedValue returns the content of the first single-quoted string on the
// line, or "" when there is none.
func quotedValue(line string) string {
	start := strings.IndexByte(line, '\'')
	if start < 0 {
		return ""
	}
	rest := line[start+1:]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return rest
	}
	return rest[:end]
}
