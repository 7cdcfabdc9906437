// Package codon implements per-species codon usage tables: amino acid
// to codon to usage frequency, with the reverse codon to amino acid
// translation derived from the same data.
package codon

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/codonusage/bio"
)

// log is the global logging variable.
var log = logging.MustGetLogger("codon")

var (
	// ErrFormat is matched by every error caused by the content of a
	// usage table file.
	ErrFormat = errors.New("malformed codon usage table")
	// ErrLoaded is returned when loading into a table which already
	// holds data.
	ErrLoaded = errors.New("codon usage table is already loaded")
)

// FormatError describes what is wrong with a usage table. AminoAcid
// is empty if the problem is not specific to an amino acid.
type FormatError struct {
	AminoAcid string
	Err       error
}

func (e *FormatError) Error() string {
	if e.AminoAcid == "" {
		return fmt.Sprintf("%v: %v", ErrFormat, e.Err)
	}
	return fmt.Sprintf("%v: amino acid %q: %v", ErrFormat, e.AminoAcid, e.Err)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports ErrFormat as a match.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// Table stores the codon usage of a species.
type Table struct {
	// Species is the organism the table was made for.
	Species string
	// usage maps amino acid to codon to frequency.
	usage map[byte]map[string]float64
	// translations maps codon to amino acid.
	translations map[string]byte
}

// NewTable creates an empty table for a species.
func NewTable(species string) *Table {
	return &Table{
		Species:      species,
		usage:        make(map[byte]map[string]float64),
		translations: make(map[string]byte),
	}
}

// Load creates a table for a species and loads it from a file.
func Load(species, path string) (*Table, error) {
	t := NewTable(species)
	if err := t.Load(path); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads a usage table file into t. A missing file results in an
// error matching fs.ErrNotExist, bad content in an error matching
// ErrFormat. Loading into a table with data fails with ErrLoaded; on
// any error t is left unchanged.
func (t *Table) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open codon usage table: %w", err)
	}
	defer f.Close()
	if err := t.Read(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Read reads a usage table in JSON format from a reader.
func (t *Table) Read(rd io.Reader) error {
	if len(t.usage) > 0 || len(t.translations) > 0 {
		return ErrLoaded
	}
	data, err := io.ReadAll(rd)
	if err != nil {
		return fmt.Errorf("read codon usage table: %w", err)
	}
	usage, translations, err := decode(data)
	if err != nil {
		return err
	}
	t.usage = usage
	t.translations = translations
	log.Debugf("Loaded %d amino acids, %d codons for %q", len(usage), len(translations), t.Species)
	return nil
}

// Translation returns the amino acid encoded by the codon. ok is
// false if the codon is not in the table.
func (t *Table) Translation(codon string) (aa byte, ok bool) {
	aa, ok = t.translations[codon]
	return
}

// Synonyms returns all the codons coding for the same amino acid as
// codon, codon itself included, in sorted order. Nil is returned for
// a codon which is not in the table.
func (t *Table) Synonyms(codon string) []string {
	aa, ok := t.Translation(codon)
	if !ok {
		return nil
	}
	return t.Codons(aa)
}

// Frequency returns the usage frequency of a codon.
func (t *Table) Frequency(codon string) (f float64, ok bool) {
	aa, ok := t.Translation(codon)
	if !ok {
		return 0, false
	}
	return t.usage[aa][codon], true
}

// Codons returns the sorted codons of an amino acid.
func (t *Table) Codons(aa byte) []string {
	codons := t.usage[aa]
	if len(codons) == 0 {
		return nil
	}
	return sortedCodons(codons)
}

// AminoAcids returns the sorted amino acids present in the table.
func (t *Table) AminoAcids() []byte {
	aas := make([]byte, 0, len(t.usage))
	for aa := range t.usage {
		aas = append(aas, aa)
	}
	sort.Slice(aas, func(i, j int) bool { return aas[i] < aas[j] })
	return aas
}

// Len returns the number of codons in the table.
func (t *Table) Len() int {
	return len(t.translations)
}

// TranslateSequence translates nucleotide sequence string into the
// protein string using the table. Letters are converted to uppercase
// and U to T. Error is returned if sequence contains non-ASCII
// characters, is not divisible by three or a codon is not in the
// table; in the last case the protein translated so far is returned
// with it.
func (t *Table) TranslateSequence(nseq string) (string, error) {
	var buffer bytes.Buffer

	nseq = bio.Normalize(nseq)

	for i := 0; i < len(nseq); i++ {
		if nseq[i] >= utf8.RuneSelf {
			return "", fmt.Errorf("non-ASCII character at position %d", i)
		}
	}
	if len(nseq)%3 != 0 {
		return "", errors.New("sequence length doesn't divide by 3")
	}

	for i := 0; i < len(nseq); i += 3 {
		aa, ok := t.translations[nseq[i:i+3]]
		if !ok {
			return buffer.String(), fmt.Errorf("unknown codon %s at position %d", nseq[i:i+3], i)
		}
		buffer.WriteByte(aa)
	}
	return buffer.String(), nil
}

func sortedCodons(codons map[string]float64) []string {
	res := make([]string, 0, len(codons))
	for codon := range codons {
		res = append(res, codon)
	}
	sort.Strings(res)
	return res
}
