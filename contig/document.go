package contig

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"strainstats/internal/yamlutil"
	"strainstats/pkg/schema"
)

// InvariantPolicy decides what decoding does with a matrix snapshot whose
// counts disagree with its shape. The recorded values are never rewritten.
type InvariantPolicy int

const (
	// InvariantWarn keeps the data and logs each inconsistency.
	InvariantWarn InvariantPolicy = iota
	// InvariantReject fails the decode on the first inconsistency.
	InvariantReject
	// InvariantIgnore keeps the data silently.
	InvariantIgnore
)

// DecodeOptions configures document decoding.
type DecodeOptions struct {
	// Invariants selects the arithmetic-invariant policy (default: warn).
	Invariants InvariantPolicy

	// Logger receives invariant warnings (default: slog.Default()).
	Logger *slog.Logger
}

func (o *DecodeOptions) defaults() {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Document is the persisted top-level unit: an ordered sequence of contig
// records.
type Document struct {
	contigs []*ProcessStats
}

// NewDocument builds a document holding contigs in the given order.
func NewDocument(contigs ...*ProcessStats) Document {
	return Document{contigs: append([]*ProcessStats(nil), contigs...)}
}

func (d *Document) Append(c *ProcessStats)    { d.contigs = append(d.contigs, c) }
func (d *Document) Extend(c ...*ProcessStats) { d.contigs = append(d.contigs, c...) }
func (d *Document) Len() int                  { return len(d.contigs) }
func (d *Document) At(i int) *ProcessStats    { return d.contigs[i] }

// Slice returns a copy of the contig records in document order.
func (d *Document) Slice() []*ProcessStats {
	return append([]*ProcessStats(nil), d.contigs...)
}

// ToV1 converts to the wire schema.
func (d *Document) ToV1() schema.DocumentV1 {
	out := make(schema.DocumentV1, 0, len(d.contigs))
	for _, c := range d.contigs {
		out = append(out, c.ToV1())
	}
	return out
}

// Encode writes the whole document to w as one yaml document.
func (d *Document) Encode(w io.Writer) error {
	data, err := yaml.Marshal(d.ToV1())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Save serializes the whole tree and writes it to path in one operation.
// The write is not atomic against concurrent readers; callers that need that
// should write to a temporary path and rename.
func (d *Document) Save(path string) error {
	data, err := yaml.Marshal(d.ToV1())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write stats document %s: %w", path, err)
	}
	return nil
}

// FromNode decodes a full document node, eagerly and top-down. The first
// structurally invalid element aborts the decode with no partial document.
func FromNode(n *yaml.Node) (Document, error) {
	items, err := yamlutil.Sequence(n)
	if err != nil {
		return Document{}, err
	}
	var d Document
	for _, item := range items {
		c, err := ProcessStatsFromNode(item)
		if err != nil {
			return Document{}, err
		}
		d.contigs = append(d.contigs, c)
	}
	return d, nil
}

// Decode reads one document from r. An empty input decodes to an empty
// document.
func Decode(r io.Reader, opts DecodeOptions) (Document, error) {
	opts.defaults()
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read stats document: %w", err)
	}
	return decode(data, opts)
}

// Load reads the document at path with default options.
func Load(path string) (Document, error) {
	return LoadWith(path, DecodeOptions{})
}

// LoadWith reads the document at path.
func LoadWith(path string, opts DecodeOptions) (Document, error) {
	opts.defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read stats document %s: %w", path, err)
	}
	return decode(data, opts)
}

func decode(data []byte, opts DecodeOptions) (Document, error) {
	root, err := yamlutil.Root(data)
	if err != nil {
		return Document{}, err
	}
	if root == nil {
		return Document{}, nil
	}
	d, err := FromNode(root)
	if err != nil {
		return Document{}, err
	}
	if err := d.applyInvariantPolicy(opts); err != nil {
		return Document{}, err
	}
	return d, nil
}

func (d *Document) applyInvariantPolicy(opts DecodeOptions) error {
	if opts.Invariants == InvariantIgnore {
		return nil
	}
	errs := d.checkInvariants()
	if len(errs) == 0 {
		return nil
	}
	if opts.Invariants == InvariantReject {
		return errs[0]
	}
	for _, e := range errs {
		opts.Logger.Warn("matrix counts inconsistent",
			"record", e.Path,
			"rows", e.Rows,
			"columns", e.Columns,
			"ones", e.Ones,
			"zeros", e.Zeros,
		)
	}
	return nil
}
