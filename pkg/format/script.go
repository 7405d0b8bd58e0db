package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vqltools/vqlkeeper/pkg/consts"
	"github.com/vqltools/vqlkeeper/pkg/vql"
)

// Script writes a snapshot as a single export script: the properties
// preamble, then each non-empty chapter with its banner and object
// fragments in (kind, name) order. Parsing the output yields a model
// equivalent to cb.
//
// Example:
//
//	f, err := os.Create("combined.vql")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	if err := format.Script(f, codebase); err != nil {
//	    log.Fatal(err)
//	}
func Script(w io.Writer, cb *vql.Codebase) error {
	if _, err := io.WriteString(w, consts.PropertiesPreamble); err != nil {
		return errors.Wrap(err, "failed to write script preamble")
	}

	byKind := make(map[vql.Kind][]*vql.CodeObject)
	for _, obj := range cb.Objects() {
		kind := obj.Identity().Kind
		byKind[kind] = append(byKind[kind], obj)
	}

	for _, kind := range vql.Kinds() {
		objects := byKind[kind]
		if len(objects) == 0 {
			continue
		}

		if _, err := io.WriteString(w, kind.Banner()); err != nil {
			return errors.Wrapf(err, "failed to write %s banner", kind)
		}

		for _, obj := range objects {
			fragment := strings.TrimRight(obj.Code(), "\n") + "\n\n"
			if _, err := io.WriteString(w, fragment); err != nil {
				return errors.Wrapf(err, "failed to write %s", obj.Identity())
			}
		}
	}

	return nil
}
