package catalog

import "sort"

// dangerous lists API names commonly abused for process injection, persistence,
// dynamic loading, network beaconing and payload encryption.
var dangerous = map[string]bool{
	"createremotethread":          true,
	"writeprocessmemory":          true,
	"virtualalloc":                true,
	"setunhandledexceptionfilter": true,
	"regcreatekeyexa":             true,
	"regcreatekeyexw":             true,
	"regsetvalueexa":              true,
	"getprocaddress":              true,
	"loadlibrary":                 true,
	"internetconnecta":            true,
	"httpsendrequesta":            true,
	"httpendrequesta":             true,
	"cryptencrypt":                true,
	"cryptdecrypt":                true,
}

// dangerousBase holds the dangerous names with their A/W suffix removed, so
// that RegSetValueExA and RegSetValueExW match alike.
var dangerousBase = func() map[string]bool {
	m := make(map[string]bool, len(dangerous))
	for name := range dangerous {
		keys := lookupKeys(name)
		m[keys[len(keys)-1]] = true
	}
	return m
}()

// IsDangerous reports whether fn is in the dangerous set. Matching is
// case-insensitive and treats the A and W forms of a name as one function.
func IsDangerous(fn string) bool {
	for _, key := range lookupKeys(fn) {
		if dangerous[key] || dangerousBase[key] {
			return true
		}
	}
	return false
}

// DangerousFunctions returns the dangerous set, sorted.
func DangerousFunctions() []string {
	names := make([]string, 0, len(dangerous))
	for name := range dangerous {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
