package codon

import (
	"github.com/gonum/floats"

	"bitbucket.org/Davydov/codonusage/bio"
)

// Uniform returns a table made from the standard genetic code where
// synonymous codons are used equally. Stop codons are stored under
// bio.Stop.
func Uniform(species string) *Table {
	t := NewTable(species)
	for aa, codons := range bio.RGeneticCode {
		t.usage[aa] = make(map[string]float64, len(codons))
		for _, codon := range codons {
			t.usage[aa][codon] = 1 / float64(len(codons))
			t.translations[codon] = aa
		}
	}
	return t
}

// RelativeAdaptiveness returns for every codon its frequency divided
// by the highest frequency among its synonyms. Codons of an amino acid
// with zero highest frequency get zero.
func (t *Table) RelativeAdaptiveness() map[string]float64 {
	w := make(map[string]float64, len(t.translations))
	for _, codons := range t.usage {
		if len(codons) == 0 {
			continue
		}
		names, freq := vector(codons)
		max := floats.Max(freq)
		for i, codon := range names {
			if max == 0 {
				w[codon] = 0
				continue
			}
			w[codon] = freq[i] / max
		}
	}
	return w
}

// Fractions returns for every codon its frequency divided by the sum
// of frequencies of its synonyms.
func (t *Table) Fractions() map[string]float64 {
	fr := make(map[string]float64, len(t.translations))
	for _, codons := range t.usage {
		names, freq := vector(codons)
		sum := floats.Sum(freq)
		for i, codon := range names {
			if sum == 0 {
				fr[codon] = 0
				continue
			}
			fr[codon] = freq[i] / sum
		}
	}
	return fr
}

// vector returns sorted codons with their frequencies.
func vector(codons map[string]float64) ([]string, []float64) {
	names := sortedCodons(codons)
	freq := make([]float64, len(names))
	for i, codon := range names {
		freq[i] = codons[codon]
	}
	return names, freq
}
