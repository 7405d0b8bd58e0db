package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/vqltools/vqlkeeper/pkg/parser"
	"github.com/vqltools/vqlkeeper/pkg/repository"
	"github.com/vqltools/vqlkeeper/pkg/vql"
)

// loadModel builds a snapshot from path, which may be either a repository
// tree (directory) or a raw export script (file). name becomes the
// snapshot's name in reports.
func loadModel(path, name string) (*vql.Codebase, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", path)
	}

	if info.IsDir() {
		return repository.New(path).Load(name)
	}

	objects, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	return vql.NewCodebase(name, objects)
}
