package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// filenamePattern matches <id>_<digits>_f<page>_<title>.tif[f].
// The title is non-greedy so it never swallows the extension, and the
// pattern is anchored at the end so the extension is the final one.
var filenamePattern = regexp.MustCompile(`(?i)^(\d+)_\d+_(f\d+)_(.+?)\.tiff?$`)

// SourceFile is a candidate input file discovered in the source directory.
type SourceFile struct {
	// Path is the full filesystem path
	Path string

	// Name is the raw filename (last path element)
	Name string
}

// FileIdentity is the metadata encoded in a conforming filename.
type FileIdentity struct {
	// DocumentID is the leading digit run. It is kept as a string so
	// leading zeros survive into the output name.
	DocumentID string

	// Page is the zero-based page index following the "f" marker
	Page int

	// Title is everything between the page marker and the extension,
	// taken verbatim.
	Title string
}

// IsTIFF reports whether name carries a .tif or .tiff suffix (any case).
func IsTIFF(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".tif") || strings.HasSuffix(lower, ".tiff")
}

// ParseFilename extracts the FileIdentity from a filename.
// ok is false when the name does not follow the naming scheme; callers
// skip such files rather than treating them as errors.
func ParseFilename(name string) (id FileIdentity, ok bool) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return FileIdentity{}, false
	}
	page, err := strconv.Atoi(m[2][1:])
	if err != nil {
		return FileIdentity{}, false
	}
	return FileIdentity{DocumentID: m[1], Page: page, Title: m[3]}, true
}

// Classification is the outcome of classifying one SourceFile.
// Identity is nil for unrecognized files.
type Classification struct {
	File     SourceFile
	Identity *FileIdentity
}

// Recognized reports whether the file followed the naming scheme.
func (c Classification) Recognized() bool {
	return c.Identity != nil
}

// Classify parses the filename of f.
func Classify(f SourceFile) Classification {
	id, ok := ParseFilename(f.Name)
	if !ok {
		return Classification{File: f}
	}
	return Classification{File: f, Identity: &id}
}
