package ports

import "context"

// VCSPort covers the version-control actions of a release: committing
// the version file, tagging, and pushing with tags.
type VCSPort interface {
	Commit(ctx context.Context, message string) error
	Tag(ctx context.Context, name string, message string) error
	Push(ctx context.Context) error
}
