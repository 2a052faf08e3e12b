package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZacharyZcR/PEImport/internal/catalog"
	"github.com/ZacharyZcR/PEImport/internal/pe"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"TXT", FormatText, false},
		{"html", FormatHTML, false},
		{".htm", FormatHTML, false},
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"json", FormatJSON, false},
		{" pdf ", FormatPDF, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatExt(t *testing.T) {
	want := map[Format]string{
		FormatText:     ".txt",
		FormatHTML:     ".html",
		FormatMarkdown: ".md",
		FormatJSON:     ".json",
		FormatPDF:      ".pdf",
	}
	for _, f := range Formats() {
		assert.Equal(t, want[f], f.Ext(), f)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, &Report{}, Format("xml"))
	assert.Error(t, err)
}

func TestRenderTextLayout(t *testing.T) {
	rep := Build(sampleImports(), nil, Options{})
	out, err := RenderBytes(rep, FormatText)
	require.NoError(t, err)

	want := strings.Join([]string{
		"PE Import Analysis",
		"==================",
		"",
		"kernel32.dll:",
		"    DLL Explanation: " + catalog.Default().Summary("kernel32.dll"),
		"    CreateFile : " + createFileDesc,
		"    Xyz123 : no description available",
		"",
	}, "\n")
	assert.Equal(t, want, string(out))
	assert.NotContains(t, string(out), DangerMarker)
}

func TestRenderTextSourceAndDangerous(t *testing.T) {
	imports := []pe.ImportEntry{
		{DLL: "kernel32.dll", Function: "VirtualAlloc"},
		{DLL: "user32.dll", Function: "MessageBoxW"},
	}
	rep := Build(imports, nil, Options{MarkDangerous: true}).WithSource(Source{
		Path:         `C:\tmp\a.exe`,
		Architecture: "x86 (32-bit)",
	})

	out, err := RenderBytes(rep, FormatText)
	require.NoError(t, err)
	text := string(out)

	assert.True(t, strings.HasPrefix(text, "PE Import Analysis\n==================\nFile: C:\\tmp\\a.exe\nArchitecture: x86 (32-bit)\n\n"))
	assert.NotContains(t, text, "Subsystem:")
	assert.Contains(t, text, "    VirtualAlloc : Reserves or commits a region of pages in the virtual address space. [DANGEROUS]\n")
	assert.Equal(t, 1, strings.Count(text, DangerMarker))
	assert.True(t, strings.HasSuffix(text, "\nMost Dangerous/Suspicious Functions:\n    VirtualAlloc : Reserves or commits a region of pages in the virtual address space.\n"))
}

func TestRenderTextNoDangerousImported(t *testing.T) {
	rep := Build(sampleImports(), nil, Options{MarkDangerous: true})
	out, err := RenderBytes(rep, FormatText)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(out), "Most Dangerous/Suspicious Functions:\n    (none imported)\n"))
}

func TestRenderTextOmitted(t *testing.T) {
	imports := []pe.ImportEntry{
		{DLL: "kernel32.dll", Function: "ReadFile"},
		{DLL: "kernel32.dll", Function: "CreateFile"},
		{DLL: "kernel32.dll", Function: "WriteFile"},
		{DLL: "kernel32.dll", Function: "CloseHandle"},
	}
	rep := Build(imports, nil, Options{MaxPerDLL: 2})
	out, err := RenderBytes(rep, FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(out), "    ... (2 more functions)\n")
}

func TestRenderHTML(t *testing.T) {
	imports := append(sampleImports(), pe.ImportEntry{DLL: "kernel32.dll", Function: "VirtualAlloc"})

	t.Run("plain", func(t *testing.T) {
		out, err := RenderBytes(Build(imports, nil, Options{}), FormatHTML)
		require.NoError(t, err)
		html := string(out)
		assert.Contains(t, html, "<h2>kernel32.dll</h2>")
		assert.Contains(t, html, "<td>CreateFile</td><td>"+createFileDesc+"</td>")
		assert.NotContains(t, html, DangerMarker)
		assert.NotContains(t, html, "Most Dangerous")
	})

	t.Run("dangerous", func(t *testing.T) {
		out, err := RenderBytes(Build(imports, nil, Options{MarkDangerous: true}), FormatHTML)
		require.NoError(t, err)
		html := string(out)
		assert.Contains(t, html, `<tr class="dangerous"><td>VirtualAlloc <span class="marker">[DANGEROUS]</span></td>`)
		assert.Contains(t, html, "<h2>Most Dangerous/Suspicious Functions</h2>")
	})

	t.Run("escapes", func(t *testing.T) {
		rep := Build([]pe.ImportEntry{{DLL: "<x>.dll", Function: "a&b"}}, nil, Options{})
		out, err := RenderBytes(rep, FormatHTML)
		require.NoError(t, err)
		assert.Contains(t, string(out), "&lt;x&gt;.dll")
		assert.Contains(t, string(out), "a&amp;b")
	})

	t.Run("placeholders", func(t *testing.T) {
		out, err := RenderBytes(Build(sampleImports(), nil, Options{MinFunctions: 3}), FormatHTML)
		require.NoError(t, err)
		assert.Contains(t, string(out), `<tr class="placeholder"><td>placeholder_3</td>`)
	})
}

func TestRenderMarkdown(t *testing.T) {
	imports := append(sampleImports(), pe.ImportEntry{DLL: "kernel32.dll", Function: "VirtualAlloc"})
	rep := Build(imports, nil, Options{MarkDangerous: true}).WithSource(Source{Path: "a.exe"})

	out, err := RenderBytes(rep, FormatMarkdown)
	require.NoError(t, err)
	md := string(out)
	assert.Contains(t, md, "# PE Import Analysis")
	assert.Contains(t, md, "## kernel32.dll")
	assert.Contains(t, md, "**DLL Explanation:**")
	assert.Contains(t, md, "`CreateFile`")
	assert.Contains(t, md, "`VirtualAlloc` "+DangerMarker)
	assert.Contains(t, md, "## Most Dangerous/Suspicious Functions")
	assert.Contains(t, md, "a.exe")
}

func TestRenderJSON(t *testing.T) {
	rep := Build(sampleImports(), nil, Options{MarkDangerous: true}).WithSource(Source{Path: "a.exe"})

	out, err := RenderBytes(rep, FormatJSON)
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(out, []byte("\n")))

	var got Report
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "a.exe", got.Source.Path)
	require.Len(t, got.DLLs, 1)
	assert.Equal(t, rep.DLLs[0].Functions, got.DLLs[0].Functions)
	assert.True(t, got.MarkDangerous)
	assert.NotContains(t, string(out), `"placeholder"`)
}

func TestRenderPDF(t *testing.T) {
	rep := Build(sampleImports(), nil, Options{MarkDangerous: true, MinFunctions: 4})
	out, err := RenderBytes(rep, FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderIdempotent(t *testing.T) {
	imports := append(sampleImports(),
		pe.ImportEntry{DLL: "ws2_32.dll", Function: "connect"},
		pe.ImportEntry{DLL: "kernel32.dll", Function: "GetProcAddress"},
	)
	rep := Build(imports, nil, Options{MarkDangerous: true, MinFunctions: 3}).WithSource(Source{Path: "a.exe"})

	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			first, err := RenderBytes(rep, f)
			require.NoError(t, err)
			second, err := RenderBytes(rep, f)
			require.NoError(t, err)
			assert.Equal(t, first, second)
			assert.NotEmpty(t, first)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
