package keywords

// Aliases the rewrite engine treats structurally rather than as plain
// substitutions.
const (
	// FuncAlias declares a synchronous function.
	FuncAlias = "feels"
	// AsyncFuncAlias declares an asynchronous function.
	AsyncFuncAlias = "bigfeels"
	// DeleteAlias is the deletion operator; it carries an operand.
	DeleteAlias = "remove"
)

// Machine names for the builtin categories.
const (
	categoryDeclarations  = "declarations"
	categoryFunctions     = "functions"
	categoryControlFlow   = "control-flow"
	categoryErrorHandling = "error-handling"
	categoryValues        = "values"
	categoryOperators     = "operators"
	categoryObjectContext = "object-context"
	categoryMultiWord     = "multi-word"
)

// builtinCategories returns the NullScript vocabulary. Alias spellings must
// stay disjoint from every canonical spelling: rewriting already-canonical
// text has to be a no-op.
func builtinCategories() []Category {
	return []Category{
		{
			Name:  categoryDeclarations,
			Title: "Declarations",
			Entries: []Entry{
				{"definitely", "const"},
				{"maybe", "let"},
				{"mayhap", "var"},
				{"bigbrain", "class"},
				{"vibes", "interface"},
				{"vibe", "type"},
				{"share", "export"},
				{"use", "import"},
				{"inherits", "extends"},
				{"__init__", "constructor"},
				{"forever", "static"},
				{"getter", "get"},
				{"setter", "set"},
			},
		},
		{
			Name:  categoryFunctions,
			Title: "Function Declarations",
			Entries: []Entry{
				{"feels", "function"},
				{"bigfeels", "async function"},
			},
		},
		{
			Name:  categoryControlFlow,
			Title: "Control Flow",
			Entries: []Entry{
				{"checkthis", "if"},
				{"orelse", "else"},
				{"since", "for"},
				{"when", "while"},
				{"switchup", "switch"},
				{"whatabout", "case"},
				{"basically", "default"},
				{"stop", "break"},
				{"keepgoing", "continue"},
				{"pls", "return"},
			},
		},
		{
			Name:  categoryErrorHandling,
			Title: "Error Handling",
			Entries: []Entry{
				{"oops", "try"},
				{"oop", "try"},
				{"mybad", "catch"},
				{"anyway", "finally"},
				{"trigger", "throw"},
			},
		},
		{
			Name:  categoryValues,
			Title: "Values",
			Entries: []Entry{
				{"fr", "true"},
				{"cap", "false"},
				{"nocap", "null"},
				{"ghost", "undefined"},
			},
		},
		{
			Name:  categoryOperators,
			Title: "Operators",
			Entries: []Entry{
				{"is", "==="},
				{"isnt", "!=="},
				{"more", ">"},
				{"less", "<"},
				{"moreeq", ">="},
				{"lesseq", "<="},
				{"and", "&&"},
				{"or", "||"},
				{"not", "!"},
				{"remove", "delete"},
				{"what", "typeof"},
				{"kind", "instanceof"},
				{"inside", "in"},
				{"part", "of"},
				{"later", "async"},
				{"hold", "await"},
			},
		},
		{
			Name:  categoryObjectContext,
			Title: "Objects & Context",
			Entries: []Entry{
				{"self", "this"},
				{"parent", "super"},
				{"fresh", "new"},
				{"speak", "console"},
				{"say", "log"},
				{"yell", "warn"},
				{"whisper", "info"},
				{"scream", "error"},
			},
		},
		{
			Name:  categoryMultiWord,
			Title: "Multi-word Phrases",
			Entries: []Entry{
				{"orsomething", "else if"},
			},
		},
	}
}
