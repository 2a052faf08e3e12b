package catalog

import "strings"

// systemDLLs is the set of well-known Windows system libraries.
var systemDLLs = map[string]bool{
	"kernel32.dll":   true,
	"kernelbase.dll": true,
	"ntdll.dll":      true,
	"user32.dll":     true,
	"gdi32.dll":      true,
	"advapi32.dll":   true,
	"ws2_32.dll":     true,
	"msvcrt.dll":     true,
	"shell32.dll":    true,
	"ole32.dll":      true,
	"comctl32.dll":   true,
	"comdlg32.dll":   true,
	"oleaut32.dll":   true,
	"shlwapi.dll":    true,
	"wininet.dll":    true,
	"rpcrt4.dll":     true,
	"crypt32.dll":    true,
	"version.dll":    true,
	"winspool.drv":   true,
	"secur32.dll":    true,
	"netapi32.dll":   true,
	"userenv.dll":    true,
	"psapi.dll":      true,
	"iphlpapi.dll":   true,
	"bcrypt.dll":     true,
	"setupapi.dll":   true,
	"cfgmgr32.dll":   true,
	"wintrust.dll":   true,
	"imagehlp.dll":   true,
	"dbghelp.dll":    true,
	"imm32.dll":      true,
	"msimg32.dll":    true,
	"powrprof.dll":   true,
	"uxtheme.dll":    true,
	"dwmapi.dll":     true,
}

// IsSystemDLL reports whether dll is a well-known Windows system DLL or an
// API set contract (api-ms-win-*, ext-ms-*).
func IsSystemDLL(dll string) bool {
	name := NormalizeDLL(dll)
	if systemDLLs[name] {
		return true
	}
	return strings.HasPrefix(name, "api-ms-win-") || strings.HasPrefix(name, "ext-ms-")
}
