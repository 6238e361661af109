package ports

import "context"

// DescriptionLoader retrieves the raw lines of a description by name.
// Implementations return an error matching domain.ErrFileOpen when the
// description cannot be read.
type DescriptionLoader interface {
	Load(ctx context.Context, name string) ([]string, error)
}

// DescriptionPublisher stores description lines under a name, replacing any previous content.
type DescriptionPublisher interface {
	Publish(ctx context.Context, name string, lines []string) error
}

// DescriptionLister is implemented by loaders that can enumerate their descriptions.
type DescriptionLister interface {
	List(ctx context.Context) ([]string, error)
}
