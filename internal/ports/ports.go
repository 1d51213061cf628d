package ports

// TextSource produces the payload written into each churn file.
type TextSource interface {
	Text(n int) []byte
}

// Globber expands filesystem patterns into matching paths.
type Globber interface {
	Glob(pattern string) ([]string, error)
}
