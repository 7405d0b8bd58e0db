package repository

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/vqltools/vqlkeeper/pkg/consts"
	"github.com/vqltools/vqlkeeper/pkg/parser"
	"github.com/vqltools/vqlkeeper/pkg/vql"
)

// Repository manages one on-disk repository tree rooted at a directory.
type Repository struct {
	root   string
	parser *parser.Parser
}

// New creates a Repository rooted at dir. The directory does not need to
// exist yet; Write creates it.
//
// Example:
//
//	repo := repository.New("repo")
//	if err := repo.Write(codebase); err != nil {
//	    log.Fatal(err)
//	}
//
//	loaded, err := repo.Load("base")
func New(dir string) *Repository {
	return &Repository{
		root:   dir,
		parser: parser.New(),
	}
}

// Root returns the repository's root directory.
func (r *Repository) Root() string { return r.root }

// Write persists a snapshot as a repository tree, replacing any previous
// tree: one folder per kind with a .vql file per object and a part.log
// listing the files in model order, plus the vqlkeeper.sum integrity file
// at the root.
func (r *Repository) Write(cb *vql.Codebase) error {
	if err := r.clean(); err != nil {
		return err
	}

	if err := os.MkdirAll(r.root, consts.ModeDir); err != nil {
		return errors.Wrapf(err, "failed to create repository root %s", r.root)
	}

	sum := NewSumFile()

	for _, kind := range vql.Kinds() {
		objects := objectsOfKind(cb, kind)
		if len(objects) == 0 {
			continue
		}

		dir := filepath.Join(r.root, kind.DirName())
		if err := os.MkdirAll(dir, consts.ModeDir); err != nil {
			return errors.Wrapf(err, "failed to create chapter directory %s", dir)
		}

		var partLog []string
		for _, obj := range objects {
			fileName := obj.Identity().Name + consts.VQLFileExt
			path := filepath.Join(dir, fileName)

			if err := os.WriteFile(path, []byte(obj.Code()), consts.ModeFile); err != nil {
				return errors.Wrapf(err, "failed to write object file %s", path)
			}

			partLog = append(partLog, fileName)
			sum.AddFile(kind.DirName()+"/"+fileName, []byte(obj.Code()))
		}

		logPath := filepath.Join(dir, consts.PartLogName)
		content := strings.Join(partLog, "\n") + "\n"
		if err := os.WriteFile(logPath, []byte(content), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write %s", logPath)
		}
	}

	return r.writeSumFile(sum)
}

// Load reads the repository tree back into a snapshot named name. Object
// files are read in part.log order per chapter; files not listed in a
// part.log are appended in name order so hand-added objects are not lost.
func (r *Repository) Load(name string) (*vql.Codebase, error) {
	if _, err := os.Stat(r.root); err != nil {
		return nil, errors.Wrapf(err, "repository %s not readable", r.root)
	}

	// Reassemble a single script and reuse the parser so dependency
	// extraction sees every chapter at once.
	var script strings.Builder
	for _, kind := range vql.Kinds() {
		dir := filepath.Join(r.root, kind.DirName())
		files, err := chapterFiles(dir)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			continue
		}

		script.WriteString(kind.Banner())
		for _, f := range files {
			data, err := os.ReadFile(filepath.Join(dir, f))
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read object file %s", f)
			}
			script.Write(data)
			script.WriteString("\n")
		}
	}

	objects, err := r.parser.ParseString(script.String())
	if err != nil {
		return nil, err
	}

	return vql.NewCodebase(name, objects)
}

type (
	// VerifyResult describes how a repository tree differs from its sum
	// file. All slices hold root-relative file paths, sorted.
	VerifyResult struct {
		// Drifted lists files whose content no longer matches the recorded hash.
		Drifted []string

		// Missing lists files recorded in the sum file but absent from disk.
		Missing []string

		// Untracked lists object files on disk that the sum file does not record.
		Untracked []string
	}
)

// Clean reports whether the tree matches its sum file exactly.
func (v *VerifyResult) Clean() bool {
	return len(v.Drifted) == 0 && len(v.Missing) == 0 && len(v.Untracked) == 0
}

// Verify recomputes hashes for the tree and compares them against the
// vqlkeeper.sum file written by the last Write.
func (r *Repository) Verify() (*VerifyResult, error) {
	f, err := os.Open(filepath.Join(r.root, consts.SumFileName))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", consts.SumFileName)
	}
	defer func() { _ = f.Close() }()

	stored, err := LoadSumFile(f)
	if err != nil {
		return nil, err
	}

	recorded := stored.Entries()
	result := &VerifyResult{}

	onDisk := make(map[string]struct{})
	for _, kind := range vql.Kinds() {
		dir := filepath.Join(r.root, kind.DirName())
		files, err := chapterFiles(dir)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			rel := kind.DirName() + "/" + file
			onDisk[rel] = struct{}{}

			want, ok := recorded[rel]
			if !ok {
				result.Untracked = append(result.Untracked, rel)
				continue
			}

			data, err := os.ReadFile(filepath.Join(dir, file))
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read object file %s", rel)
			}

			check := NewSumFile()
			check.AddFile(rel, data)
			if check.Entries()[rel] != want {
				result.Drifted = append(result.Drifted, rel)
			}
		}
	}

	for _, name := range stored.Names() {
		if _, ok := onDisk[name]; !ok {
			result.Missing = append(result.Missing, name)
		}
	}

	sort.Strings(result.Drifted)
	sort.Strings(result.Missing)
	sort.Strings(result.Untracked)
	return result, nil
}

// clean removes chapter directories and the sum file from a previous Write,
// leaving unrelated files in the root untouched.
func (r *Repository) clean() error {
	for _, kind := range vql.Kinds() {
		dir := filepath.Join(r.root, kind.DirName())
		if err := os.RemoveAll(dir); err != nil {
			return errors.Wrapf(err, "failed to remove %s", dir)
		}
	}

	sumPath := filepath.Join(r.root, consts.SumFileName)
	if err := os.Remove(sumPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove %s", sumPath)
	}

	return nil
}

func (r *Repository) writeSumFile(sum *SumFile) error {
	path := filepath.Join(r.root, consts.SumFileName)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() { _ = f.Close() }()

	if _, err := sum.WriteTo(f); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}

// chapterFiles lists the object files in a chapter directory, honoring
// part.log order when present and appending unlisted files in name order.
// A missing directory is an empty chapter.
func chapterFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read chapter directory %s", dir)
	}

	present := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), consts.VQLFileExt) {
			continue
		}
		present[entry.Name()] = struct{}{}
	}

	var files []string
	listed := make(map[string]struct{})

	if data, err := os.ReadFile(filepath.Join(dir, consts.PartLogName)); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			name := strings.TrimSpace(line)
			if name == "" {
				continue
			}
			if _, ok := present[name]; !ok {
				continue // stale part.log entry; Verify reports it via the sum file
			}
			files = append(files, name)
			listed[name] = struct{}{}
		}
	}

	var extra []string
	for name := range present {
		if _, ok := listed[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	return append(files, extra...), nil
}

func objectsOfKind(cb *vql.Codebase, kind vql.Kind) []*vql.CodeObject {
	var out []*vql.CodeObject
	for _, obj := range cb.Objects() {
		if obj.Identity().Kind == kind {
			out = append(out, obj)
		}
	}
	return out
}
