package document

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lawnchairsociety/questgen/internal/logger"
	"github.com/lawnchairsociety/questgen/internal/quest"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// ErrOutputWrite marks failures creating or writing output documents
var ErrOutputWrite = errors.New("failed to write output")

// Info describes a written document
type Info struct {
	Name    string
	Path    string
	Records int
	Digest  string // BLAKE2b-256 of the file contents, hex encoded
}

// Encode renders a collection as a YAML document.
// Quests are written in collection order with fields in plugin order.
func Encode(c *quest.Collection, seed int64) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s - generated quests\n", c.Category.Document)
	fmt.Fprintf(&buf, "# Generated with seed: %d\n", seed)
	fmt.Fprintf(&buf, "# Quest count: %d\n\n", c.Len())

	node, err := collectionNode(c)
	if err != nil {
		return nil, err
	}

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(node); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", c.Category.Document, err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", c.Category.Document, err)
	}

	return buf.Bytes(), nil
}

// collectionNode builds an ordered mapping node; encoding a Go map would
// reorder the identifiers
func collectionNode(c *quest.Collection) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, q := range c.Quests() {
		value := &yaml.Node{}
		if err := value.Encode(FromQuest(q)); err != nil {
			return nil, fmt.Errorf("failed to encode quest %s: %w", q.ID, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: q.ID},
			value,
		)
	}

	return node, nil
}

// Digest returns the hex BLAKE2b-256 of data
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Writer writes quest documents into a directory
type Writer struct {
	Dir  string
	Seed int64
}

// NewWriter creates a writer for the output directory
func NewWriter(dir string, seed int64) *Writer {
	return &Writer{Dir: dir, Seed: seed}
}

// Write encodes a collection and overwrites its document file
func (w *Writer) Write(c *quest.Collection) (Info, error) {
	path := filepath.Join(w.Dir, c.Category.Document)

	data, err := Encode(c, w.Seed)
	if err != nil {
		return Info{}, err
	}

	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return Info{}, fmt.Errorf("%w: create directory %s: %v", ErrOutputWrite, w.Dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return Info{}, fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}

	info := Info{
		Name:    c.Category.Document,
		Path:    path,
		Records: c.Len(),
		Digest:  Digest(data),
	}
	logger.Debug("Wrote quest document", "document", info.Name, "quests", info.Records, "digest", info.Digest)
	return info, nil
}

// WriteCatalog writes every category document and the aggregate.
// It stops at the first failure; documents already written stay on disk.
func (w *Writer) WriteCatalog(catalog *quest.Catalog) ([]Info, error) {
	docs := catalog.Documents()
	infos := make([]Info, 0, len(docs))

	for _, c := range docs {
		info, err := w.Write(c)
		if err != nil {
			return infos, err
		}
		infos = append(infos, info)
	}

	return infos, nil
}
