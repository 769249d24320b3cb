package tsdiag

// mapping pairs a substring of a TypeScript compiler message with the
// NullScript-vocabulary explanation shown instead. Matching walks the slice
// in order and takes the first hit, so entries go from specific to generic.
type mapping struct {
	pattern string
	message string
	hint    string
}

func catalog() []mapping {
	return []mapping{
		{
			"Cannot find name 'feels'",
			"Invalid function declaration. Use 'feels' followed by a function name.",
			"Example: feels myFunction() { ... }",
		},
		{
			"Cannot find name 'definitely'",
			"Invalid variable declaration. Use 'definitely' for constants.",
			"Example: definitely myVar = 'value'",
		},
		{
			"Cannot find name 'maybe'",
			"Invalid variable declaration. Use 'maybe' for variables that can change.",
			"Example: maybe myVar = 'value'",
		},
		{
			"Cannot find name 'checkthis'",
			"Invalid conditional statement. Use 'checkthis' for if statements.",
			"Example: checkthis (condition) { ... }",
		},
		{
			"Cannot find name 'orelse'",
			"Invalid else statement. Use 'orelse' for else clauses.",
			"Example: checkthis (condition) { ... } orelse { ... }",
		},
		{
			"Cannot find name 'pls'",
			"Invalid return statement. Use 'pls' to return values.",
			"Example: pls myValue",
		},
		{
			"Cannot find name 'fr'",
			"Invalid boolean value. Use 'fr' for true.",
			"Example: definitely isValid = fr",
		},
		{
			"Cannot find name 'cap'",
			"Invalid boolean value. Use 'cap' for false.",
			"Example: definitely isValid = cap",
		},
		{
			"Cannot find name 'nocap'",
			"Invalid null value. Use 'nocap' for null.",
			"Example: definitely value = nocap",
		},
		{
			"Cannot find name 'ghost'",
			"Invalid undefined value. Use 'ghost' for undefined.",
			"Example: definitely value = ghost",
		},
		{
			"Cannot find name 'vibes'",
			"Invalid interface declaration. Use 'vibes' to define interfaces.",
			"Example: vibes MyInterface { ... }",
		},
		{
			"Cannot find name 'vibe'",
			"Invalid type alias. Use 'vibe' to define type aliases.",
			"Example: vibe MyType = string | number",
		},
		{
			"Cannot find name 'bigbrain'",
			"Invalid class declaration. Use 'bigbrain' to define classes.",
			"Example: bigbrain MyClass { ... }",
		},
		{
			"Unexpected token",
			"Syntax error in NullScript code. Check for missing keywords or incorrect syntax.",
			"Make sure you're using NullScript keywords correctly. Run 'nsc keywords' to see all available keywords.",
		},
		{
			"Declaration or statement expected",
			"Invalid statement. Check your NullScript syntax.",
			"Make sure you're using proper NullScript keywords and syntax.",
		},
		{
			"Function implementation is missing",
			"Function body is missing. Add implementation after your function declaration.",
			"Example: feels myFunction() { /* your code here */ }",
		},
		{
			"Unexpected keyword or identifier",
			"Invalid NullScript syntax. You're using an undefined keyword or incorrect syntax.",
			"Check that you're using valid NullScript keywords. Run 'nsc keywords' to see all available options.",
		},
	}
}
