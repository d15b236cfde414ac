package bundle

import (
	"io/fs"
	"path"
	"strings"

	"github.com/liamg/memoryfs"
)

const (
	dirMode  fs.FileMode = 0o755
	fileMode fs.FileMode = 0o644
)

// fileTable is the in-memory file system the bundle is built from. Keys are
// virtual paths: either sentinel names such as "@main" or absolute paths
// rooted at "/".
type fileTable struct {
	fs *memoryfs.FS
}

func newFileTable(modules []Module) (*fileTable, error) {
	table := &fileTable{fs: memoryfs.New()}

	if err := table.append(Entry, ""); err != nil {
		return nil, err
	}

	for _, module := range modules {
		if err := table.append(VirtualPath(module.Filename), module.Code); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// VirtualPath maps a fence filename to its key in the file table. Names that
// start with the sentinel are kept verbatim, anything else is rooted at "/".
// An empty name is the entry module.
func VirtualPath(filename string) string {
	switch {
	case filename == "":
		return Entry
	case strings.HasPrefix(filename, Sentinel):
		return filename
	default:
		return path.Join("/", filename)
	}
}

func fsPath(virtual string) string {
	return strings.TrimPrefix(path.Clean(virtual), "/")
}

// append adds code to the module at virtual, creating it when needed.
func (t *fileTable) append(virtual, code string) error {
	name := fsPath(virtual)

	if dir := path.Dir(name); dir != "." {
		if err := t.fs.MkdirAll(dir, dirMode); err != nil {
			return err
		}
	}

	existing, err := fs.ReadFile(t.fs, name)
	if err != nil {
		existing = nil
	}

	return t.fs.WriteFile(name, append(existing, code...), fileMode)
}

func (t *fileTable) has(virtual string) bool {
	info, err := fs.Stat(t.fs, fsPath(virtual))

	return err == nil && !info.IsDir()
}

func (t *fileTable) read(virtual string) (string, error) {
	data, err := fs.ReadFile(t.fs, fsPath(virtual))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// lookup returns the first existing candidate for p, trying the usual module
// file extensions after the exact name.
func (t *fileTable) lookup(p string) (string, bool) {
	for _, candidate := range []string{p, p + ".js", p + ".mjs", p + ".ts", p + "/index.js"} {
		if t.has(candidate) {
			return candidate, true
		}
	}

	return "", false
}
