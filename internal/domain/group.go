package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// maxReportedGaps bounds the slice returned by Gaps so a single stray page
// number like f99999 cannot produce a huge report.
const maxReportedGaps = 32

// PageEntry is one recognized file inside a DocumentGroup.
type PageEntry struct {
	Page  int
	Title string
	File  SourceFile
}

// DocumentGroup collects all recognized files that share a document
// identifier. Entries are kept in discovery order until Sort is called.
type DocumentGroup struct {
	DocumentID string
	Entries    []PageEntry
}

// Add appends a file to the group. The identity must carry the group's
// DocumentID.
func (g *DocumentGroup) Add(id FileIdentity, f SourceFile) {
	g.Entries = append(g.Entries, PageEntry{Page: id.Page, Title: id.Title, File: f})
}

// Sort orders entries ascending by page index. Equal page indices are
// ordered by filename so the result does not depend on discovery order.
func (g *DocumentGroup) Sort() {
	sort.SliceStable(g.Entries, func(i, j int) bool {
		a, b := g.Entries[i], g.Entries[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		return a.File.Name < b.File.Name
	})
}

// Title returns the title of the first entry. Call Sort first.
func (g *DocumentGroup) Title() string {
	if len(g.Entries) == 0 {
		return ""
	}
	return g.Entries[0].Title
}

// Titles returns the distinct titles in the group in entry order.
func (g *DocumentGroup) Titles() []string {
	var titles []string
	seen := make(map[string]bool)
	for _, e := range g.Entries {
		if seen[e.Title] {
			continue
		}
		seen[e.Title] = true
		titles = append(titles, e.Title)
	}
	return titles
}

// Duplicates returns page indices claimed by more than one entry, ascending.
// Call Sort first.
func (g *DocumentGroup) Duplicates() []int {
	var dups []int
	for i := 1; i < len(g.Entries); i++ {
		p := g.Entries[i].Page
		if p != g.Entries[i-1].Page {
			continue
		}
		if len(dups) == 0 || dups[len(dups)-1] != p {
			dups = append(dups, p)
		}
	}
	return dups
}

// Gaps returns page indices between 0 and the highest page that no entry
// claims, ascending. At most maxReportedGaps values are returned.
// Call Sort first.
func (g *DocumentGroup) Gaps() []int {
	var gaps []int
	next := 0
	for _, e := range g.Entries {
		for ; next < e.Page; next++ {
			if len(gaps) == maxReportedGaps {
				return gaps
			}
			gaps = append(gaps, next)
		}
		if e.Page >= next {
			next = e.Page + 1
		}
	}
	return gaps
}

// OutputName returns "<id>_<title>_output.pdf". The title is used verbatim;
// a name that would not stay inside the output directory is rejected.
func (g *DocumentGroup) OutputName() (string, error) {
	name := fmt.Sprintf("%s_%s_output.pdf", g.DocumentID, g.Title())
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrUnsafeOutputName, name)
	}
	return name, nil
}

// GroupFiles classifies files and groups the recognized ones by document
// identifier. Groups are returned in order of first appearance with their
// entries in discovery order; unrecognized files are returned separately.
func GroupFiles(files []SourceFile) (groups []*DocumentGroup, unrecognized []SourceFile) {
	byID := make(map[string]*DocumentGroup)
	for _, f := range files {
		c := Classify(f)
		if !c.Recognized() {
			unrecognized = append(unrecognized, f)
			continue
		}
		g, ok := byID[c.Identity.DocumentID]
		if !ok {
			g = &DocumentGroup{DocumentID: c.Identity.DocumentID}
			byID[g.DocumentID] = g
			groups = append(groups, g)
		}
		g.Add(*c.Identity, f)
	}
	return groups, unrecognized
}
