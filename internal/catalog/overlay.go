package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// overlayFile is the on-disk format of a user-supplied description file.
//
//	dlls:
//	  mylib.dll:
//	    summary: "..."
//	    functions:
//	      - name: DoThing
//	        description: "..."
type overlayFile struct {
	DLLs map[string]overlayDLL `yaml:"dlls"`
}

type overlayDLL struct {
	Summary   string            `yaml:"summary"`
	Functions []overlayFunction `yaml:"functions"`
}

type overlayFunction struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// LoadOverlay reads a YAML description file into a catalog that can be merged
// over Default().
func LoadOverlay(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
	if err != nil {
		return nil, fmt.Errorf("读取描述文件失败: %w", err)
	}
	return ParseOverlay(data)
}

// ParseOverlay decodes YAML description data. DLLs are added in name order so
// the resulting catalog is independent of map iteration order.
func ParseOverlay(data []byte) (*Catalog, error) {
	var of overlayFile
	if err := yaml.Unmarshal(data, &of); err != nil {
		return nil, fmt.Errorf("解析描述文件失败: %w", err)
	}

	names := make([]string, 0, len(of.DLLs))
	for name := range of.DLLs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return NormalizeDLL(names[i]) < NormalizeDLL(names[j])
	})

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		dll := of.DLLs[name]
		if NormalizeDLL(name) == "" {
			return nil, fmt.Errorf("描述文件包含空的DLL名称")
		}
		entry := Entry{Name: name, Summary: dll.Summary}
		for _, fn := range dll.Functions {
			if fn.Name == "" {
				return nil, fmt.Errorf("DLL %s 包含空的函数名称", name)
			}
			entry.Functions = append(entry.Functions, Function{Name: fn.Name, Description: fn.Description})
		}
		entries = append(entries, entry)
	}
	return New(entries), nil
}
