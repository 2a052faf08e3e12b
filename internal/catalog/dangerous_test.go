package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDangerous(t *testing.T) {
	tests := []struct {
		fn   string
		want bool
	}{
		{fn: "CreateRemoteThread", want: true},
		{fn: "WriteProcessMemory", want: true},
		{fn: "virtualalloc", want: true},
		{fn: "LoadLibraryA", want: true},
		{fn: "LoadLibraryW", want: true},
		{fn: "RegCreateKeyExW", want: true},
		{fn: "GetProcAddress", want: true},
		{fn: "RegSetValueExA", want: true},
		{fn: "RegSetValueExW", want: true},
		{fn: "InternetConnectW", want: true},
		{fn: "HttpSendRequestW", want: true},
		{fn: "CryptEncrypt", want: true},
		{fn: "RegSetValue", want: false},
		{fn: "CreateFile", want: false},
		{fn: "VirtualFree", want: false},
		{fn: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDangerous(tt.fn))
		})
	}
}

func TestDangerousFunctions(t *testing.T) {
	names := DangerousFunctions()
	assert.Len(t, names, 14)
	assert.True(t, sort.StringsAreSorted(names))

	names[0] = "mutated"
	assert.NotEqual(t, "mutated", DangerousFunctions()[0])
}
