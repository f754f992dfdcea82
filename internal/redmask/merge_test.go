package redmask

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func Test_sortNatural(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			"numbers compared by value",
			[]string{"contig1.msk", "contig10.msk", "contig2.msk"},
			[]string{"contig1.msk", "contig2.msk", "contig10.msk"},
		},
		{
			"prefixes before numbers",
			[]string{"scaffold_12", "chr2", "scaffold_3", "chr11", "chrM"},
			[]string{"chr2", "chr11", "chrM", "scaffold_3", "scaffold_12"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := append([]string(nil), tt.names...)
			sortNatural(got)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sortNatural() = %v, want %v", got, tt.want)
			}
		})
	}
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestMaskFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"contig10.msk": "",
		"contig1.msk":  "",
		"contig2.msk":  "",
		"contig2.scr":  "",
		"notes.txt":    "",
	})
	if err := os.Mkdir(filepath.Join(dir, "sub.msk"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := MaskFiles(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(dir, "contig1.msk"),
		filepath.Join(dir, "contig2.msk"),
		filepath.Join(dir, "contig10.msk"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MaskFiles() = %v, want %v", got, want)
	}
}

func TestMerge(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"contig10.msk": ">contig10\nACGTacgt\n",
		"contig1.msk":  ">contig1\nAAAA\naaaa\n",
		"contig2.msk":  ">contig2\r\nggGG", // no trailing newline, kept as is
		"contig2.scr":  "0 0 1 1\n",
	})
	dst := filepath.Join(t.TempDir(), "genome.softmasked.fa")

	n, err := Merge(dir, dst)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Merge() merged %d files, want 3", n)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	want := ">contig1\nAAAA\naaaa\n>contig2\r\nggGG>contig10\nACGTacgt\n"
	if string(got) != want {
		t.Errorf("Merge() wrote %q, want %q", got, want)
	}

	// same files, same bytes
	again := filepath.Join(t.TempDir(), "again.fa")
	if _, err := Merge(dir, again); err != nil {
		t.Fatal(err)
	}
	gotAgain, err := os.ReadFile(again)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, gotAgain) {
		t.Errorf("second Merge() differs: %q vs %q", got, gotAgain)
	}
}

func TestMerge_noMaskFiles(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "empty.fa")

	n, err := Merge(t.TempDir(), dst)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Merge() = %d, want 0", n)
	}
	if info, err := os.Stat(dst); err != nil || info.Size() != 0 {
		t.Errorf("expected an empty %s: %v", dst, err)
	}
}
