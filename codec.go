package scramble

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"
)

// Format is an encoding for puzzle files.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, Error.New("unknown format %q", name)
	}
}

// fields is a record whose values have not been interpreted yet.
type fields interface {
	// str returns the string stored at key and whether it was present.
	str(key string) (string, bool, error)
}

type jsonFields map[string]json.RawMessage

func (f jsonFields) str(key string) (string, bool, error) {
	raw, ok := f[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", true, errs.New("field %q: not a string", key)
	}
	return s, true, nil
}

type yamlFields map[string]yaml.Node

func (f yamlFields) str(key string) (string, bool, error) {
	n, ok := f[key]
	if !ok || n.ShortTag() == "!!null" {
		return "", false, nil
	}
	// unquoted dates resolve as timestamps but are kept as written
	if n.Kind != yaml.ScalarNode || (n.ShortTag() != "!!str" && n.ShortTag() != "!!timestamp") {
		return "", true, errs.New("field %q: not a string", key)
	}
	return n.Value, true, nil
}

// required returns the string at key, failing if it is absent.
func required(f fields, key string) (string, error) {
	s, ok, err := f.str(key)
	if err != nil {
		return "", err
	} else if !ok {
		return "", errs.New("missing field %q", key)
	}
	return s, nil
}

// decodePuzzle classifies the record by the fields it has.
func decodePuzzle(index int, f fields) (p Puzzle, err error) {
	if p.Date, err = required(f, "date"); err != nil {
		return p, errs.New("puzzle %d: %v", index, err)
	}
	if p.Author, err = required(f, "author"); err != nil {
		return p, errs.New("puzzle %d: %v", index, err)
	}
	if comment, ok, err := f.str("comment"); err != nil {
		return p, errs.New("puzzle %d: %v", index, err)
	} else if ok {
		p.Comment = &comment
	}

	solution, plainErr := required(f, "solution")
	if plainErr == nil {
		p.Kind, p.Solution = Plain, solution
		return p, nil
	}

	text, textErr := required(f, "text")
	hash, hashErr := required(f, "hash")
	if scrambledErr := errs.Combine(textErr, hashErr); scrambledErr != nil {
		return p, &ShapeError{
			Index:     index,
			Plain:     plainErr,
			Scrambled: scrambledErr,
		}
	}

	p.Kind, p.Text, p.Hash = Scrambled, text, hash
	return p, nil
}

// gunzip returns a reader that transparently decompresses r if it starts with
// the gzip magic bytes.
func gunzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, errs.Wrap(err)
	}
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, errs.Wrap(err)
		}
		return zr, nil
	}
	return br, nil
}

// Decode reads a puzzle file in the given format. Gzip compressed input is
// accepted for either format.
func Decode(r io.Reader, format Format) (_ *File, err error) {
	defer Error.WrapP(&err)

	r, err = gunzip(r)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	var records []fields
	switch format {
	case JSON:
		var doc struct {
			Puzzles *[]jsonFields `json:"puzzles"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errs.Wrap(err)
		} else if doc.Puzzles == nil {
			return nil, errs.New("missing field %q", "puzzles")
		}
		for _, rec := range *doc.Puzzles {
			records = append(records, rec)
		}

	case YAML:
		var doc struct {
			Puzzles *[]yamlFields `yaml:"puzzles"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errs.Wrap(err)
		} else if doc.Puzzles == nil {
			return nil, errs.New("missing field %q", "puzzles")
		}
		for _, rec := range *doc.Puzzles {
			records = append(records, rec)
		}

	default:
		return nil, errs.New("unknown format %d", int(format))
	}

	f := &File{Puzzles: make([]Puzzle, 0, len(records))}
	for i, rec := range records {
		p, err := decodePuzzle(i, rec)
		if err != nil {
			return nil, err
		}
		f.Puzzles = append(f.Puzzles, p)
	}
	return f, nil
}

// record is the encoded form of a Puzzle. Fields are in sorted order.
type record struct {
	Author   string  `json:"author" yaml:"author"`
	Comment  *string `json:"comment,omitempty" yaml:"comment,omitempty"`
	Date     string  `json:"date" yaml:"date"`
	Hash     *string `json:"hash,omitempty" yaml:"hash,omitempty"`
	Solution *string `json:"solution,omitempty" yaml:"solution,omitempty"`
	Text     *string `json:"text,omitempty" yaml:"text,omitempty"`
}

func toRecord(p Puzzle) record {
	rec := record{Author: p.Author, Comment: p.Comment, Date: p.Date}
	if p.Kind == Scrambled {
		rec.Hash, rec.Text = &p.Hash, &p.Text
	} else {
		rec.Solution = &p.Solution
	}
	return rec
}

// Encode writes the puzzle file in the given format.
func Encode(w io.Writer, f *File, format Format) (err error) {
	defer Error.WrapP(&err)

	var doc struct {
		Puzzles []record `json:"puzzles" yaml:"puzzles"`
	}
	doc.Puzzles = make([]record, 0, len(f.Puzzles))
	for _, p := range f.Puzzles {
		doc.Puzzles = append(doc.Puzzles, toRecord(p))
	}

	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return errs.Wrap(enc.Encode(doc))

	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errs.Wrap(err)
		}
		return errs.Wrap(enc.Close())

	default:
		return errs.New("unknown format %d", int(format))
	}
}
