package keywords

// ForbiddenForm describes how a canonical keyword has to appear on a line
// before the validator treats it as a vocabulary violation. The forms keep
// the scan conservative: a bare substring match would reject identifiers
// that merely contain a keyword.
type ForbiddenForm uint8

const (
	// FormBare matches the keyword as a standalone token anywhere on the line.
	FormBare ForbiddenForm = iota
	// FormIdent matches the keyword followed by an identifier (declarations).
	FormIdent
	// FormParen matches the keyword followed by an opening parenthesis.
	FormParen
	// FormBrace matches the keyword followed by an opening brace.
	FormBrace
	// FormSpace matches the keyword followed by at least one more token.
	FormSpace
)

// ForbiddenUse is a canonical keyword the user must not write directly,
// paired with the alias they should have used.
type ForbiddenUse struct {
	Keyword string
	Alias   string
	Form    ForbiddenForm
}

// ForbiddenUses lists canonical spellings the validator rejects before
// rewriting. Ordered roughly by how often users slip into them.
func ForbiddenUses() []ForbiddenUse {
	return []ForbiddenUse{
		{"function", "feels", FormIdent},
		{"const", "definitely", FormIdent},
		{"let", "maybe", FormIdent},
		{"var", "mayhap", FormIdent},
		{"if", "checkthis", FormParen},
		{"else", "orelse", FormSpace},
		{"return", "pls", FormSpace},
		{"true", "fr", FormBare},
		{"false", "cap", FormBare},
		{"null", "nocap", FormBare},
		{"undefined", "ghost", FormBare},
		{"interface", "vibes", FormIdent},
		{"type", "vibe", FormIdent},
		{"class", "bigbrain", FormIdent},
		{"try", "oops", FormBrace},
		{"catch", "mybad", FormParen},
		{"finally", "anyway", FormBrace},
		{"throw", "trigger", FormSpace},
		{"delete", "remove", FormSpace},
		{"await", "hold", FormSpace},
	}
}

// ConnectorWords are pass-through words allowed at the start of a statement
// without being aliases. Bare "export"/"import" are tolerated even though
// the share/use aliases exist; the vocabulary only polices the keywords in
// ForbiddenUses.
func ConnectorWords() []string {
	return []string{"export", "import", "from", "as"}
}
