// Package bio provides functions related to the genetic code.
package bio

import (
	"strings"
)

// Stop is the amino acid symbol used for stop codons.
const Stop = '*'

var (
	// Alphabet is the nucleotide alphabet in the order codons are
	// enumerated.
	Alphabet = [...]byte{'T', 'C', 'A', 'G'}

	// GeneticCode is the standard genetic code. Codon string (capital
	// letters) is the key, amino acids (capital letter) are values.
	GeneticCode = map[string]byte{
		"ATA": 'I', "ATC": 'I', "ATT": 'I', "ATG": 'M',
		"ACA": 'T', "ACC": 'T', "ACG": 'T', "ACT": 'T',
		"AAC": 'N', "AAT": 'N', "AAA": 'K', "AAG": 'K',
		"AGC": 'S', "AGT": 'S', "AGA": 'R', "AGG": 'R',
		"CTA": 'L', "CTC": 'L', "CTG": 'L', "CTT": 'L',
		"CCA": 'P', "CCC": 'P', "CCG": 'P', "CCT": 'P',
		"CAC": 'H', "CAT": 'H', "CAA": 'Q', "CAG": 'Q',
		"CGA": 'R', "CGC": 'R', "CGG": 'R', "CGT": 'R',
		"GTA": 'V', "GTC": 'V', "GTG": 'V', "GTT": 'V',
		"GCA": 'A', "GCC": 'A', "GCG": 'A', "GCT": 'A',
		"GAC": 'D', "GAT": 'D', "GAA": 'E', "GAG": 'E',
		"GGA": 'G', "GGC": 'G', "GGG": 'G', "GGT": 'G',
		"TCA": 'S', "TCC": 'S', "TCG": 'S', "TCT": 'S',
		"TTC": 'F', "TTT": 'F', "TTA": 'L', "TTG": 'L',
		"TAC": 'Y', "TAT": 'Y', "TAA": Stop, "TAG": Stop,
		"TGC": 'C', "TGT": 'C', "TGA": Stop, "TGG": 'W'}
	// RGeneticCode is mapping amino acids to their codons.
	RGeneticCode map[byte][]string
)

func init() {
	// initialize RGeneticCode in the enumeration order
	RGeneticCode = make(map[byte][]string, 21)
	for codon := range GetCodons() {
		aa := GeneticCode[codon]
		RGeneticCode[aa] = append(RGeneticCode[aa], codon)
	}
}

// GetCodons returns a channel with every codon (64).
func GetCodons() <-chan string {
	ch := make(chan string)
	var cn func(string)
	cn = func(prefix string) {
		if len(prefix) == 3 {
			ch <- prefix
		} else {
			for _, l := range Alphabet {
				cn(prefix + string(l))
			}
			if len(prefix) == 0 {
				close(ch)
			}
		}
	}
	go cn("")
	return ch
}

// Normalize converts all the letters to uppercase and U->T.
func Normalize(nseq string) string {
	return strings.Replace(strings.ToUpper(nseq), "U", "T", -1)
}
