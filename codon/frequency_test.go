package codon

import (
	"math"
	"path/filepath"
	"testing"

	"bitbucket.org/Davydov/codonusage/bio"
)

const smallDiff = 1e-6

/*** Tests if a and b are approximately equal ***/
func appreq(a, b float64) bool {
	return math.Abs(a-b) <= smallDiff
}

func TestUniform(tst *testing.T) {
	t := Uniform("any")
	if t.Len() != 64 {
		tst.Errorf("expected 64 codons, got %d", t.Len())
	}
	for codon, aa := range bio.GeneticCode {
		got, ok := t.Translation(codon)
		if !ok || got != aa {
			tst.Errorf("%s: expected %c, got %q", codon, aa, got)
		}
	}
	if f, _ := t.Frequency("GCT"); !appreq(f, 0.25) {
		tst.Error("wrong GCT frequency:", f)
	}
	if f, _ := t.Frequency("ATG"); !appreq(f, 1) {
		tst.Error("wrong ATG frequency:", f)
	}
	if syn := t.Synonyms("TAA"); len(syn) != 3 {
		tst.Error("wrong stop codons:", syn)
	}
}

func TestRelativeAdaptiveness(tst *testing.T) {
	t, err := Load("Escherichia coli", filepath.Join("testdata", "ecoli.json"))
	if err != nil {
		tst.Fatal("Error loading table:", err)
	}
	w := t.RelativeAdaptiveness()
	if len(w) != t.Len() {
		tst.Errorf("expected %d values, got %d", t.Len(), len(w))
	}
	if !appreq(w["GCG"], 1) || !appreq(w["GCT"], 0.16/0.36) {
		tst.Error("wrong alanine values:", w["GCG"], w["GCT"])
	}
	if !appreq(w["TGG"], 1) {
		tst.Error("single codon should have value 1:", w["TGG"])
	}

	z := readString(tst, `{"A": {"A": {"GCT": 0, "GCC": 0}}, "K": {"K": {}}}`)
	w = z.RelativeAdaptiveness()
	if w["GCT"] != 0 || w["GCC"] != 0 {
		tst.Error("zero frequencies should give zero:", w)
	}
}

func TestFractions(tst *testing.T) {
	t := readString(tst, `{"A": {"A": {"GCT": 1, "GCC": 3}}, "M": {"M": {"ATG": 0}}}`)
	fr := t.Fractions()
	if !appreq(fr["GCT"], 0.25) || !appreq(fr["GCC"], 0.75) {
		tst.Error("wrong fractions:", fr)
	}
	if fr["ATG"] != 0 {
		tst.Error("zero sum should give zero:", fr["ATG"])
	}

	sums := map[byte]float64{}
	u := Uniform("any")
	for codon, f := range u.Fractions() {
		aa, _ := u.Translation(codon)
		sums[aa] += f
	}
	for aa, s := range sums {
		if !appreq(s, 1) {
			tst.Errorf("%c fractions sum to %v", aa, s)
		}
	}
}
