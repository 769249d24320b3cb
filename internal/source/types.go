package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a file entered the set.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 BOM was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF indicates CRLF line endings were normalized.
	FileNormalizedCRLF
)

// File captures metadata and content for a single NullScript source file.
// Content is normalized (no BOM, LF endings) so byte offsets are stable
// across platforms.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position, both components 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}
