// Package report builds annotated import reports and renders them.
package report

import (
	"sort"
	"strings"

	"github.com/ZacharyZcR/PEImport/internal/catalog"
	"github.com/ZacharyZcR/PEImport/internal/pe"
)

// Options controls report building.
type Options struct {
	// MarkDangerous annotates dangerous functions and adds the summary section.
	MarkDangerous bool
	// MinFunctions pads each DLL's function list with placeholders. 0 disables
	// padding. Padding never exceeds MaxPerDLL and never applies to a DLL whose
	// list was cut by it.
	MinFunctions int
	// MaxPerDLL caps the functions listed per DLL. 0 means unlimited.
	MaxPerDLL int
	// KnownOnly skips DLLs that have no catalog entry.
	KnownOnly bool
}

// Source describes the analysed binary.
type Source struct {
	Path         string `json:"path,omitempty"`
	Architecture string `json:"architecture,omitempty"`
	Subsystem    string `json:"subsystem,omitempty"`
}

// Function is one annotated function line.
type Function struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Known       bool   `json:"known"`
	Dangerous   bool   `json:"dangerous,omitzero"`
	Placeholder bool   `json:"placeholder,omitzero"`
}

// DLL is one annotated DLL section.
type DLL struct {
	Name      string     `json:"name"`
	Summary   string     `json:"summary"`
	Known     bool       `json:"known"`
	System    bool       `json:"system"`
	Functions []Function `json:"functions"`
	// Omitted counts functions dropped by Options.MaxPerDLL.
	Omitted int `json:"omitted,omitzero"`
}

// Report is the read-only view rendered by every format.
type Report struct {
	Source        Source     `json:"source"`
	DLLs          []DLL      `json:"dlls"`
	MarkDangerous bool       `json:"markDangerous"`
	Dangerous     []Function `json:"dangerous,omitempty"`
}

// Build groups imports by DLL and annotates them from cat.
// DLLs and functions are ordered case-insensitively; a function imported twice
// from the same DLL is listed once.
func Build(imports []pe.ImportEntry, cat *catalog.Catalog, opts Options) *Report {
	if cat == nil {
		cat = catalog.Default()
	}

	rep := &Report{MarkDangerous: opts.MarkDangerous}
	dangerousSeen := make(map[string]bool)

	for _, group := range groupSorted(imports) {
		_, known := cat.Lookup(group.DLL)
		if opts.KnownOnly && !known {
			continue
		}

		dll := DLL{
			Name:    group.DLL,
			Summary: cat.Summary(group.DLL),
			Known:   known,
			System:  catalog.IsSystemDLL(group.DLL),
		}

		for _, name := range group.Functions {
			fn := Function{Name: name, Description: catalog.DefaultDescription}
			if desc, ok := cat.Describe(group.DLL, name); ok {
				fn.Description = desc
				fn.Known = true
			}
			if opts.MarkDangerous && catalog.IsDangerous(name) {
				fn.Dangerous = true
				if !dangerousSeen[name] {
					dangerousSeen[name] = true
					rep.Dangerous = append(rep.Dangerous, dangerousEntry(cat, name))
				}
			}
			dll.Functions = append(dll.Functions, fn)
		}

		if opts.MaxPerDLL > 0 && len(dll.Functions) > opts.MaxPerDLL {
			dll.Omitted = len(dll.Functions) - opts.MaxPerDLL
			dll.Functions = dll.Functions[:opts.MaxPerDLL]
		}
		if dll.Omitted == 0 {
			dll.Functions = padFunctions(dll.Functions, padTarget(opts))
		}

		rep.DLLs = append(rep.DLLs, dll)
	}

	sort.SliceStable(rep.Dangerous, func(i, j int) bool {
		return lessFold(rep.Dangerous[i].Name, rep.Dangerous[j].Name)
	})

	return rep
}

// WithSource returns a copy of r carrying src.
func (r *Report) WithSource(src Source) *Report {
	cp := *r
	cp.Source = src
	return &cp
}

// FunctionCount returns the number of listed, non-placeholder functions.
func (r *Report) FunctionCount() int {
	n := 0
	for _, dll := range r.DLLs {
		for _, fn := range dll.Functions {
			if !fn.Placeholder {
				n++
			}
		}
	}
	return n
}

// dangerousEntry describes name from whichever DLL documents it.
func dangerousEntry(cat *catalog.Catalog, name string) Function {
	fn := Function{Name: name, Description: catalog.DefaultDescription, Dangerous: true}
	if desc, ok := cat.Search(name); ok {
		fn.Description = desc
		fn.Known = true
	}
	return fn
}

func padTarget(opts Options) int {
	if opts.MaxPerDLL > 0 && opts.MinFunctions > opts.MaxPerDLL {
		return opts.MaxPerDLL
	}
	return opts.MinFunctions
}

func padFunctions(fns []Function, target int) []Function {
	for i := len(fns) + 1; i <= target; i++ {
		p := catalog.Placeholder(i)
		fns = append(fns, Function{
			Name:        p.Name,
			Description: p.Description,
			Placeholder: true,
		})
	}
	return fns
}

// groupSorted groups imports by DLL, sorts DLLs and functions
// case-insensitively and drops duplicate functions.
func groupSorted(imports []pe.ImportEntry) []pe.ImportInfo {
	groups := pe.GroupImports(imports)
	for i := range groups {
		seen := make(map[string]bool, len(groups[i].Functions))
		fns := groups[i].Functions[:0:0]
		for _, fn := range groups[i].Functions {
			if seen[fn] {
				continue
			}
			seen[fn] = true
			fns = append(fns, fn)
		}
		sort.SliceStable(fns, func(a, b int) bool { return lessFold(fns[a], fns[b]) })
		groups[i].Functions = fns
	}
	sort.SliceStable(groups, func(a, b int) bool { return lessFold(groups[a].DLL, groups[b].DLL) })
	return groups
}

// lessFold orders case-insensitively, falling back to byte order so that
// names differing only in case still sort deterministically.
func lessFold(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
