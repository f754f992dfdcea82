package redmask

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// maskExt is the extension of Red's softmasked output files
const maskExt = ".msk"

// naturalLess orders strings with embedded numbers by value ("contig2"
// before "contig10"). Strings natural sort can't tell apart fall back to
// byte order so the result is total.
func naturalLess(a, b string) bool {
	if natural.Less(a, b) {
		return true
	}
	if natural.Less(b, a) {
		return false
	}
	return a < b
}

// sortNatural sorts the strings in place by naturalLess.
func sortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
}

// MaskFiles returns the paths of Red's .msk files in dir, in natural order
// of their file names.
func MaskFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list Red output: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), maskExt) {
			names = append(names, e.Name())
		}
	}
	sortNatural(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// Merge concatenates, byte for byte, the .msk files of dir into dst and
// returns the number of files merged.
func Merge(dir, dst string) (n int, err error) {
	files, err := MaskFiles(dir)
	if err != nil {
		return 0, err
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", dst, cerr)
		}
	}()

	for _, file := range files {
		if err := appendFile(out, file); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}

// appendFile copies the contents of path to w.
func appendFile(w io.Writer, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", path, err)
	}
	return nil
}
