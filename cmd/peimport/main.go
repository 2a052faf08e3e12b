// Package main provides the PEImport CLI tool.
//
// PEImport lists the DLLs and functions a Windows executable imports and
// annotates each with a short description.
//
// Usage:
//
//	peimport <path_to_pe_file> [--html] [--dangerous]
//	peimport catalog [dll]
//
// See --help for all available options.
package main

func main() {
	Execute()
}
