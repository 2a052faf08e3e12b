package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 20, c.Len())
	assert.Same(t, c, Default())

	entry, ok := c.Lookup("KERNEL32.DLL")
	require.True(t, ok)
	assert.Equal(t, "kernel32.dll", entry.Name)
	assert.Contains(t, entry.Summary, "memory management")
	assert.Equal(t, "createfile", entry.Functions[0].Name)
}

func TestSummaryFallback(t *testing.T) {
	c := Default()
	assert.Equal(t, DefaultSummary, c.Summary("nosuch.dll"))
	assert.Equal(t, DefaultSummary, c.Summary(""))
	assert.NotEqual(t, DefaultSummary, c.Summary("user32.dll"))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		dll    string
		fn     string
		want   string
		wantOK bool
	}{
		{
			name:   "exact lowercase",
			dll:    "kernel32.dll",
			fn:     "createfile",
			want:   "Creates or opens a file, device, or I/O resource and returns a handle.",
			wantOK: true,
		},
		{
			name:   "mixed case",
			dll:    "Kernel32.dll",
			fn:     "CreateFile",
			want:   "Creates or opens a file, device, or I/O resource and returns a handle.",
			wantOK: true,
		},
		{
			name:   "unicode suffix stripped",
			dll:    "kernel32.dll",
			fn:     "CreateFileW",
			want:   "Creates or opens a file, device, or I/O resource and returns a handle.",
			wantOK: true,
		},
		{
			name:   "exact match wins over suffix",
			dll:    "kernel32.dll",
			fn:     "Sleep",
			want:   "Suspends the execution of the current thread for a specified time interval.",
			wantOK: true,
		},
		{
			name:   "unknown function",
			dll:    "kernel32.dll",
			fn:     "Xyz123",
			wantOK: false,
		},
		{
			name:   "unknown dll",
			dll:    "nosuch.dll",
			fn:     "CreateFile",
			wantOK: false,
		},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Describe(tt.dll, tt.fn)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearch(t *testing.T) {
	c := Default()

	desc, ok := c.Search("HttpSendRequestA")
	require.True(t, ok)
	assert.NotEmpty(t, desc)

	_, ok = c.Search("definitelyNotAnApi")
	assert.False(t, ok)
}

func TestLookupReturnsCopy(t *testing.T) {
	c := Default()
	entry, ok := c.Lookup("kernel32.dll")
	require.True(t, ok)

	entry.Functions[0].Description = "changed"
	entry.Summary = "changed"

	again, _ := c.Lookup("kernel32.dll")
	assert.NotEqual(t, "changed", again.Functions[0].Description)
	assert.NotEqual(t, "changed", again.Summary)
}

func TestNewMergesDuplicates(t *testing.T) {
	c := New([]Entry{
		{Name: "a.dll", Summary: "first", Functions: []Function{{"One", "1"}, {"Two", "2"}}},
		{Name: "A.DLL", Functions: []Function{{"two", "two again"}, {"Three", "3"}}},
	})

	require.Equal(t, 1, c.Len())
	entry, _ := c.Lookup("a.dll")
	assert.Equal(t, "first", entry.Summary)
	assert.Equal(t, []Function{{"One", "1"}, {"Two", "two again"}, {"Three", "3"}}, entry.Functions)
}

func TestMergeLeavesInputsUntouched(t *testing.T) {
	base := New([]Entry{{Name: "a.dll", Summary: "base", Functions: []Function{{"f", "base f"}}}})
	overlay := New([]Entry{
		{Name: "a.dll", Summary: "over", Functions: []Function{{"g", "over g"}}},
		{Name: "b.dll", Summary: "new"},
	})

	merged := base.Merge(overlay)

	assert.Equal(t, 2, merged.Len())
	assert.Equal(t, "over", merged.Summary("a.dll"))
	desc, ok := merged.Describe("a.dll", "f")
	assert.True(t, ok)
	assert.Equal(t, "base f", desc)
	desc, ok = merged.Describe("a.dll", "g")
	assert.True(t, ok)
	assert.Equal(t, "over g", desc)

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, "base", base.Summary("a.dll"))
	_, ok = base.Describe("a.dll", "g")
	assert.False(t, ok)

	assert.Equal(t, 1, base.Merge(nil).Len())
}

func TestIsSystemDLL(t *testing.T) {
	tests := []struct {
		name string
		dll  string
		want bool
	}{
		{name: "kernel32", dll: "KERNEL32.dll", want: true},
		{name: "api set", dll: "api-ms-win-crt-runtime-l1-1-0.dll", want: true},
		{name: "ext api set", dll: "ext-ms-win-ntuser-window-l1-1-0.dll", want: true},
		{name: "third party", dll: "libcurl.dll", want: false},
		{name: "empty", dll: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSystemDLL(tt.dll))
		})
	}
}
