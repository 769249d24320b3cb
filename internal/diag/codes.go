package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Keyword table construction
	CfgInfo           Code = 1000
	CfgDuplicateAlias Code = 1001

	// Vocabulary validation (pre-rewrite)
	VocInfo             Code = 2000
	VocCanonicalKeyword Code = 2001
	VocUnknownKeyword   Code = 2002

	// Translated toolchain diagnostics
	TscInfo    Code = 3000
	TscSyntax  Code = 3001
	TscType    Code = 3002
	TscGeneric Code = 3003

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:         "Unknown error",
	CfgInfo:             "Keyword table information",
	CfgDuplicateAlias:   "Duplicate alias across categories",
	VocInfo:             "Vocabulary information",
	VocCanonicalKeyword: "Canonical keyword used instead of its alias",
	VocUnknownKeyword:   "Unknown keyword",
	TscInfo:             "Toolchain information",
	TscSyntax:           "Toolchain syntax error",
	TscType:             "Toolchain type error",
	TscGeneric:          "Toolchain error",
	IOLoadFileError:     "I/O load file error",
	IOWriteFileError:    "I/O write file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("VOC%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TSC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
