package ports

// VersionFilePort reads and writes the single-line project version file.
type VersionFilePort interface {
	Read(path string) (string, error)
	Write(path string, version string) error
}
