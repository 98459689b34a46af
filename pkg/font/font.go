package font

import (
	"path"
)

// Font describes a font file shipped inside a remote ZIP archive.
type Font struct {
	Name string

	URL  string
	File string
}

const Dir = "fonts"

// Key is the storage key of the extracted font file.
func (f Font) Key() string {
	return path.Join(Dir, f.File)
}

// ArchiveKey is the storage key the downloaded archive is kept under.
func (f Font) ArchiveKey() string {
	return path.Join(Dir, f.Name+".zip")
}
