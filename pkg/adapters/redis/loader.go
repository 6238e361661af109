package redis

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/fasim/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces description keys.
const DefaultPrefix = "fasim:description:"

// Loader implements ports.DescriptionLoader and ports.DescriptionPublisher using Redis.
// Each description is a list holding one line per element; an index set records
// every published name so that empty descriptions can be told apart from missing ones.
type Loader struct {
	client *backend.Client
	prefix string
}

type Option func(*Loader)

// WithPrefix sets the key prefix for descriptions.
func WithPrefix(prefix string) Option {
	return func(l *Loader) {
		if prefix != "" {
			l.prefix = prefix
		}
	}
}

// New creates a new Redis loader with options.
func New(address, password string, db int, opts ...Option) *Loader {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis loader from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Loader {
	l := &Loader{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) key(name string) string {
	return l.prefix + name
}

func (l *Loader) indexKey() string {
	return l.prefix + "index"
}

// Load returns the lines of the named description.
func (l *Loader) Load(ctx context.Context, name string) ([]string, error) {
	pipe := l.client.Pipeline()
	linesCmd := pipe.LRange(ctx, l.key(name), 0, -1)
	knownCmd := pipe.SIsMember(ctx, l.indexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, &domain.SourceError{Source: name, Err: fmt.Errorf("failed to read from redis: %w", err)}
	}

	lines := linesCmd.Val()
	if len(lines) == 0 && !knownCmd.Val() {
		return nil, &domain.SourceError{Source: name, Err: domain.ErrDescriptionNotFound}
	}
	if lines == nil {
		lines = []string{}
	}
	return lines, nil
}

// Publish replaces the named description with lines.
func (l *Loader) Publish(ctx context.Context, name string, lines []string) error {
	_, err := l.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.Del(ctx, l.key(name))
		if len(lines) > 0 {
			values := make([]any, len(lines))
			for i, line := range lines {
				values[i] = line
			}
			pipe.RPush(ctx, l.key(name), values...)
		}
		pipe.SAdd(ctx, l.indexKey(), name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish to redis: %w", err)
	}
	return nil
}

// Delete removes the named description.
func (l *Loader) Delete(ctx context.Context, name string) error {
	pipe := l.client.Pipeline()
	pipe.Del(ctx, l.key(name))
	pipe.SRem(ctx, l.indexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns the published description names.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	names, err := l.client.SMembers(ctx, l.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list descriptions: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Close closes the redis client.
func (l *Loader) Close() error {
	return l.client.Close()
}
