package diag

// Severity ranks how strongly a diagnostic should interrupt the user.
// Vocabulary violations and toolchain failures report as SevError; the
// info and warning levels exist for advisory output (cache notes,
// deprecated alias spellings).
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	case SevInfo:
		return "info"
	}
	return "unknown"
}
