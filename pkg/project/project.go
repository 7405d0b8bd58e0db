// Package project scaffolds and represents a vqlkeeper project directory:
// a vqlkeeper.yaml configuration plus directories for raw exports and the
// split repository tree.
package project

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing/fstest"

	"github.com/pkg/errors"
	"github.com/vqltools/vqlkeeper/pkg/consts"
)

var (
	//go:embed embed/vqlkeeper.yaml
	defaultConfig []byte

	image = fstest.MapFS{
		consts.DefaultExportsDir:    {Mode: os.ModeDir | consts.ModeDir},
		consts.DefaultRepositoryDir: {Mode: os.ModeDir | consts.ModeDir},
		consts.ConfigFileName:       {Data: defaultConfig},
	}
)

// Project represents a vqlkeeper project rooted at a directory.
type Project struct {
	root string
}

// New creates a Project instance for the given directory. The directory
// must exist; Initialize fills in missing structure.
//
// Example:
//
//	p := project.New("/path/to/my/project")
//	if err := p.Initialize(); err != nil {
//	    log.Fatal(err)
//	}
func New(path string) *Project {
	return &Project{root: path}
}

// Root returns the project root directory.
func (p *Project) Root() string { return p.root }

// Initialize sets up the project directory structure and configuration.
// It is idempotent: only missing files and directories are created,
// existing content is preserved.
func (p *Project) Initialize() error {
	info, err := os.Stat(p.root)
	if err != nil {
		return errors.Wrapf(err, "project directory %s not accessible", p.root)
	}
	if !info.IsDir() {
		return errors.Errorf("project path %s is not a directory", p.root)
	}

	for path, entry := range image {
		fullPath := filepath.Join(p.root, path)

		if _, err := os.Stat(fullPath); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to stat %s", fullPath)
		}

		if entry.Mode.IsDir() {
			if err := os.MkdirAll(fullPath, entry.Mode.Perm()); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", fullPath)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(fullPath), consts.ModeDir); err != nil {
			return errors.Wrapf(err, "failed to create parent directory for %s", fullPath)
		}

		if err := os.WriteFile(fullPath, entry.Data, consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write file %s", fullPath)
		}
	}

	return nil
}
