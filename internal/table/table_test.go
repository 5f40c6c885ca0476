// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestAddDeduplicates(t *testing.T) {
	tbl := New()
	tbl.Add("P1", "Homo sapiens")
	tbl.Add("P1", "Homo sapiens")
	tbl.Add("P1", "Homo sapiens")

	if got := tbl.TaxaFor("P1"); len(got) != 1 {
		t.Errorf("TaxaFor(P1) = %v, want one entry", got)
	}
	if tbl.Pairs() != 1 {
		t.Errorf("Pairs() = %d, want 1", tbl.Pairs())
	}
}

func TestProteinsSorted(t *testing.T) {
	tbl := New()
	tbl.Add("Q9NQ94", "Homo sapiens")
	tbl.Add("A0A024R161", "Homo sapiens")
	tbl.Add("P69905", "Homo sapiens")

	want := []string{"A0A024R161", "P69905", "Q9NQ94"}
	if got := tbl.Proteins(); !reflect.DeepEqual(got, want) {
		t.Errorf("Proteins() = %v, want %v", got, want)
	}
}

func TestTaxaForSorted(t *testing.T) {
	tbl := New()
	tbl.Add("P1", "Mus musculus")
	tbl.Add("P1", "Escherichia coli")
	tbl.Add("P1", "Homo sapiens")

	want := []string{"Escherichia coli", "Homo sapiens", "Mus musculus"}
	if got := tbl.TaxaFor("P1"); !reflect.DeepEqual(got, want) {
		t.Errorf("TaxaFor(P1) = %v, want %v", got, want)
	}
}

func TestTaxaForUnknownProtein(t *testing.T) {
	tbl := New()
	if got := tbl.TaxaFor("P1"); got != nil {
		t.Errorf("TaxaFor on empty table = %v, want nil", got)
	}
}

func TestWriteTSVEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := New().WriteTSV(&buf); err != nil {
		t.Fatalf("WriteTSV: %v", err)
	}
	if got := buf.String(); got != "protein\ttaxa\n" {
		t.Errorf("empty table = %q, want header row only", got)
	}
}

func TestWriteTSV(t *testing.T) {
	tbl := New()
	tbl.Add("P2", "Escherichia coli")
	tbl.Add("P1", "Mus musculus")
	tbl.Add("P1", "Homo sapiens")
	tbl.Add("P1", "Mus musculus")

	var buf bytes.Buffer
	if err := tbl.WriteTSV(&buf); err != nil {
		t.Fatalf("WriteTSV: %v", err)
	}

	want := "protein\ttaxa\n" +
		"P1\tHomo sapiens, Mus musculus\n" +
		"P2\tEscherichia coli\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteTSV =\n%q\nwant\n%q", got, want)
	}
}

// Two tables with the same contents added in different orders must
// serialize identically.
func TestWriteTSVDeterministic(t *testing.T) {
	a := New()
	a.Add("P1", "Homo sapiens")
	a.Add("P1", "Mus musculus")
	a.Add("P2", "Escherichia coli")

	b := New()
	b.Add("P2", "Escherichia coli")
	b.Add("P1", "Mus musculus")
	b.Add("P1", "Homo sapiens")

	var bufA, bufB bytes.Buffer
	if err := a.WriteTSV(&bufA); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteTSV(&bufB); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(bufA.Bytes(), bufB.Bytes()) {
		t.Errorf("serializations differ:\n%q\n%q", bufA.String(), bufB.String())
	}
}

func TestWriteFileReplacesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protein_taxa.tsv")

	first := New()
	first.Add("P1", "Homo sapiens")
	first.Add("P2", "Mus musculus")
	if err := first.WriteFile(path); err != nil {
		t.Fatalf("WriteFile (first): %v", err)
	}

	second := New()
	second.Add("P3", "Escherichia coli")
	if err := second.WriteFile(path); err != nil {
		t.Fatalf("WriteFile (second): %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "protein\ttaxa\nP3\tEscherichia coli\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", string(data), want)
	}
}

func TestWriteFileBadPath(t *testing.T) {
	err := New().WriteFile(filepath.Join(t.TempDir(), "missing", "out.tsv"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
