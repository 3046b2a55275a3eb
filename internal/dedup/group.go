package dedup

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Entry is one grouped file.
type Entry struct {
	Path string // Full path as built from the visited directory.
	Ext  string // Extension without the dot, as found on disk.
}

// FileGroup holds the entries of one directory that share a stem.
type FileGroup struct {
	Stem    string
	Entries []Entry // Directory-listing order.
}

// SplitName splits a file name into stem and extension at the final dot.
// ok is false when the name has no usable extension: no dot at all, a
// leading dot as the only dot (".bashrc"), or a trailing dot ("notes.").
//
//	"photo.jpg"      -> "photo", "jpg"
//	"archive.tar.gz" -> "archive.tar", "gz"
//	".hidden.png"    -> ".hidden", "png"
func SplitName(name string) (stem, ext string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}

// Scan lists dir once and groups its files by stem. When recursive is set,
// the names of subdirectories are returned in listing order for separate
// visits; otherwise directories are skipped. Groups are sorted by stem.
func Scan(fs afero.Fs, dir string, recursive bool) ([]FileGroup, []string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	byStem := make(map[string]*FileGroup)
	var subdirs []string
	for _, fi := range infos {
		name := fi.Name()
		if fi.IsDir() {
			if recursive {
				subdirs = append(subdirs, name)
			}
			continue
		}
		stem, ext, ok := SplitName(name)
		if !ok {
			continue
		}
		g, exists := byStem[stem]
		if !exists {
			g = &FileGroup{Stem: stem}
			byStem[stem] = g
		}
		g.Entries = append(g.Entries, Entry{Path: filepath.Join(dir, name), Ext: ext})
	}

	groups := make([]FileGroup, 0, len(byStem))
	for _, g := range byStem {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Stem < groups[j].Stem })
	return groups, subdirs, nil
}
