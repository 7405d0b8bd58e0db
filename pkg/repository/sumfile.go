package repository

import (
	"bufio"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type (
	// SumFile records the content hash of every object file in a repository
	// tree plus a total hash over all of them. The total hash is sensitive
	// to file order, so reordering a tree reads as a change even when no
	// individual file did.
	SumFile struct {
		files []fileEntry

		// TotalHash is the h1-format hash over all file hashes, computed
		// lazily by WriteTo.
		TotalHash string
	}

	// fileEntry is a single file with its raw SHA256 hash.
	fileEntry struct {
		Name string
		Hash []byte
	}
)

// NewSumFile creates an empty SumFile ready to accept files.
//
// Example:
//
//	sum := repository.NewSumFile()
//	sum.AddFile("BASE_VIEWS/orders.vql", ordersCode)
//	sum.AddFile("VIEWS/order_totals.vql", totalsCode)
func NewSumFile() *SumFile {
	return &SumFile{files: make([]fileEntry, 0)}
}

// LoadSumFile reads a SumFile in the format produced by WriteTo:
//   - First line: total hash (h1:base64-encoded-hash)
//   - Following lines: <filename> <h1:base64-encoded-hash>
func LoadSumFile(r io.Reader) (*SumFile, error) {
	sum := NewSumFile()

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "failed to read total hash line")
		}
		// Empty file, empty SumFile.
		return sum, nil
	}

	totalLine := strings.TrimSpace(scanner.Text())
	if totalLine != "" && !strings.HasPrefix(totalLine, "h1:") {
		return nil, errors.Errorf("invalid total hash format: %s", totalLine)
	}
	sum.TotalHash = totalLine

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid file entry format: %s", line)
		}

		name, h1 := parts[0], parts[1]
		if !strings.HasPrefix(h1, "h1:") {
			return nil, errors.Errorf("invalid hash format for file %s: %s", name, h1)
		}

		hash, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(h1, "h1:"))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode hash for file %s", name)
		}

		sum.files = append(sum.files, fileEntry{Name: name, Hash: hash})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading sum file")
	}

	return sum, nil
}

// AddFile records a file and its content hash. Each entry hashes only its
// own content, so verification can attribute drift to specific files; the
// total hash computed by WriteTo ties the entries together in order.
func (s *SumFile) AddFile(name string, content []byte) {
	hash := sha256.Sum256(content)
	s.files = append(s.files, fileEntry{Name: name, Hash: hash[:]})
}

// Files returns the number of recorded entries.
func (s *SumFile) Files() int {
	return len(s.files)
}

// Entries returns a map from file name to its h1 hash string.
func (s *SumFile) Entries() map[string]string {
	out := make(map[string]string, len(s.files))
	for _, f := range s.files {
		out[f.Name] = "h1:" + base64.StdEncoding.EncodeToString(f.Hash)
	}
	return out
}

// Names returns the recorded file names in entry order.
func (s *SumFile) Names() []string {
	out := make([]string, 0, len(s.files))
	for _, f := range s.files {
		out = append(out, f.Name)
	}
	return out
}

// WriteTo writes the sum file, computing the total hash first. It
// implements io.WriterTo.
//
// Output format:
//
//	h1:dG90YWxoYXNoZXhhbXBsZQ==
//	BASE_VIEWS/orders.vql h1:dGVzdGRhdGE=
//	VIEWS/order_totals.vql h1:bW9yZXRlc3Q=
func (s *SumFile) WriteTo(w io.Writer) (int64, error) {
	var total int64

	s.computeTotalHash()

	n, err := fmt.Fprintf(w, "%s\n", s.TotalHash)
	if err != nil {
		return total, err
	}
	total += int64(n)

	for _, f := range s.files {
		n, err := fmt.Fprintf(w, "%s h1:%s\n", f.Name, base64.StdEncoding.EncodeToString(f.Hash))
		if err != nil {
			return total, err
		}
		total += int64(n)
	}

	return total, nil
}

// computeTotalHash hashes all entry hashes in order.
func (s *SumFile) computeTotalHash() {
	if len(s.files) == 0 {
		s.TotalHash = ""
		return
	}

	hasher := sha256.New()
	for _, f := range s.files {
		hasher.Write(f.Hash)
	}

	s.TotalHash = "h1:" + base64.StdEncoding.EncodeToString(hasher.Sum(nil))
}
