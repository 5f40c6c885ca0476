// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package header

import "testing"

func TestIsHeader(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"uniprot header", ">sp|P69905|HBA_HUMAN Hemoglobin subunit alpha OS=Homo sapiens", true},
		{"bare marker", ">", true},
		{"sequence line", "MVLSPADKTNVKAAWGKVGAHAGEYGAEALERMFLSFPTTK", false},
		{"empty line", "", false},
		{"marker mid-line", "AB>CD", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHeader(tt.line); got != tt.want {
				t.Errorf("IsHeader(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseOrganism(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOK bool
	}{
		// Positive: every terminator key.
		{"terminated by OX", ">sp|P69905|HBA_HUMAN Hemoglobin subunit alpha OS=Homo sapiens OX=9606 GN=HBA1 PE=1 SV=2", "Homo sapiens", true},
		{"terminated by GN", ">sp|P01942|HBA_MOUSE Hemoglobin subunit alpha OS=Mus musculus GN=Hba PE=1 SV=2", "Mus musculus", true},
		{"terminated by PE", ">tr|A0A024R161|A0A024R161_HUMAN Protein OS=Homo sapiens PE=4 SV=1", "Homo sapiens", true},
		{"terminated by SV", ">sp|P0DTC2|SPIKE_SARS2 Spike OS=Severe acute respiratory syndrome coronavirus 2 SV=1", "Severe acute respiratory syndrome coronavirus 2", true},
		{"terminated by end of line", ">sp|P01942|HBA_MOUSE Hemoglobin subunit alpha OS=Mus musculus", "Mus musculus", true},
		{"trailing spaces before end of line", ">x protein OS=Mus musculus   ", "Mus musculus", true},

		// Organism names with punctuation survive intact.
		{"strain annotation", ">sp|P00330|ADH1_YEAST Alcohol dehydrogenase 1 OS=Saccharomyces cerevisiae (strain ATCC 204508 / S288c) OX=559292 GN=ADH1 PE=1 SV=5", "Saccharomyces cerevisiae (strain ATCC 204508 / S288c)", true},
		{"single word organism", ">x OS=synthetic OX=32630", "synthetic", true},

		// First terminator wins when several follow.
		{"OX before GN", ">x OS=Escherichia coli OX=562 GN=lacZ", "Escherichia coli", true},

		// A second OS= field: the match restarts past the first marker.
		{"repeated OS field", ">x OS=Homo sapiens OS=Mus musculus OX=10090", "Mus musculus", true},

		// Negative: missing, unanchored, or malformed fields.
		{"no OS field", ">sp|P69905|HBA_HUMAN Hemoglobin subunit alpha", "", false},
		{"sequence line", "MVLSPADKTNVKAAW", "", false},
		{"empty line", "", "", false},
		{"OS at line start without whitespace", ">OS=Homo sapiens OX=9606", "", false},
		{"OS inside another token", ">x BIOS=5 OX=2", "", false},
		{"lowercase key", ">x os=Homo sapiens OX=9606", "", false},
		{"equals inside name", ">x OS=Homo=sapiens OX=9606", "", false},
		{"empty value before terminator", ">x OS= OX=9606", "", false},
		{"terminator glued to name", ">x OS=Homo sapiensOX=9606", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseOrganism(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseOrganism(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseOrganism(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"clean ascii", ">sp|P69905 OS=Homo sapiens", ">sp|P69905 OS=Homo sapiens"},
		{"invalid byte dropped", ">x OS=Homo sap\xffiens OX=9606", ">x OS=Homo sapiens OX=9606"},
		{"invalid sequence dropped", "\xc3\x28abc", "(abc"},
		{"valid multibyte preserved", ">x OS=Naegleria gruberi µ-type OX=5762", ">x OS=Naegleria gruberi µ-type OX=5762"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.line); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

// Sanitized damage inside the OS= field still yields a usable name when
// the remaining bytes form one.
func TestSanitizeThenParse(t *testing.T) {
	line := Sanitize(">x OS=Mus mus\xffculus OX=10090")
	got, ok := ParseOrganism(line)
	if !ok {
		t.Fatal("expected organism after sanitizing")
	}
	if got != "Mus musculus" {
		t.Errorf("organism = %q, want %q", got, "Mus musculus")
	}
}
