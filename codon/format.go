package codon

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Usage table files look like this:
//
//	{
//	  "A": {"A": {"GCT": 0.26, "GCC": 0.40, "GCA": 0.23, "GCG": 0.11}},
//	  "W": {"W": {"TGG": 1}}
//	}
//
// Every amino acid object holds exactly one key, the amino acid
// itself.
type document map[string]map[string]map[string]*float64

// decode parses and checks a usage table. Amino acids are visited in
// sorted order so the same input always reports the same error.
func decode(data []byte) (map[byte]map[string]float64, map[string]byte, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, &FormatError{Err: err}
	}
	if doc == nil {
		return nil, nil, &FormatError{Err: errors.New("top level value is not an object")}
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	usage := make(map[byte]map[string]float64, len(doc))
	translations := make(map[string]byte)
	for _, key := range keys {
		if len(key) != 1 {
			return nil, nil, &FormatError{AminoAcid: key, Err: errors.New("amino acid must be a single character")}
		}
		aa := key[0]
		nested := doc[key]
		codons, ok := nested[key]
		switch {
		case !ok:
			return nil, nil, &FormatError{AminoAcid: key, Err: errors.New("missing nested amino acid key")}
		case len(nested) != 1:
			return nil, nil, &FormatError{AminoAcid: key, Err: errors.New("unexpected nested key")}
		case codons == nil:
			return nil, nil, &FormatError{AminoAcid: key, Err: errors.New("codons are not an object")}
		}

		usage[aa] = make(map[string]float64, len(codons))
		for codon, f := range codons {
			if f == nil {
				return nil, nil, &FormatError{AminoAcid: key, Err: fmt.Errorf("codon %s has no frequency", codon)}
			}
			if prev, ok := translations[codon]; ok {
				return nil, nil, &FormatError{AminoAcid: key, Err: fmt.Errorf("codon %s is already listed under %c", codon, prev)}
			}
			usage[aa][codon] = *f
			translations[codon] = aa
		}
	}
	return usage, translations, nil
}

// MarshalJSON encodes the table in the usage table file format.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.document())
}

// Write writes the table in the usage table file format.
func (t *Table) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t.document())
}

func (t *Table) document() document {
	doc := make(document, len(t.usage))
	for aa, codons := range t.usage {
		key := string([]byte{aa})
		inner := make(map[string]*float64, len(codons))
		for codon, f := range codons {
			f := f
			inner[codon] = &f
		}
		doc[key] = map[string]map[string]*float64{key: inner}
	}
	return doc
}
