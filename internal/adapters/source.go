package adapters

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/aretw0/fasim/internal/config"
	"github.com/aretw0/fasim/pkg/adapters/file"
	"github.com/aretw0/fasim/pkg/adapters/redis"
	"github.com/aretw0/fasim/pkg/ports"
)

// Loader is a description loader that may also publish.
type Loader interface {
	ports.DescriptionLoader
	ports.DescriptionPublisher
}

// Source is a resolved description location.
type Source struct {
	Loader Loader
	Name   string
	close  func() error
}

// Close releases any connection held by the loader.
func (s Source) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Resolve maps a source reference to a loader and the description name inside it.
//
// Accepted forms:
//   - a plain path or file://path reads a local file;
//   - redis://[:password@]host:port[/db]#name reads the Redis list for name;
//   - redis:name reads name from the Redis server in cfg.
func Resolve(ref string, cfg config.RedisConfig) (Source, error) {
	switch {
	case strings.HasPrefix(ref, "redis://"):
		return resolveRedisURL(ref, cfg)
	case strings.HasPrefix(ref, "redis:"):
		name := strings.TrimPrefix(ref, "redis:")
		if name == "" {
			return Source{}, fmt.Errorf("missing description name in %q", ref)
		}
		l := redis.New(cfg.Addr, cfg.Password, cfg.DB, redis.WithPrefix(cfg.Prefix))
		return Source{Loader: l, Name: name, close: l.Close}, nil
	case strings.HasPrefix(ref, "file://"):
		return Source{Loader: file.NewLoader(""), Name: strings.TrimPrefix(ref, "file://")}, nil
	default:
		return Source{Loader: file.NewLoader(""), Name: ref}, nil
	}
}

func resolveRedisURL(ref string, cfg config.RedisConfig) (Source, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return Source{}, fmt.Errorf("invalid redis source %q: %w", ref, err)
	}
	if u.Fragment == "" {
		return Source{}, fmt.Errorf("missing description name in %q (expected #name)", ref)
	}

	password := cfg.Password
	if u.User != nil {
		if p, ok := u.User.Password(); ok {
			password = p
		}
	}

	db := cfg.DB
	if path := strings.Trim(u.Path, "/"); path != "" {
		db, err = strconv.Atoi(path)
		if err != nil {
			return Source{}, fmt.Errorf("invalid redis database %q: %w", path, err)
		}
	}

	addr := u.Host
	if addr == "" {
		addr = cfg.Addr
	}

	l := redis.New(addr, password, db, redis.WithPrefix(cfg.Prefix))
	return Source{Loader: l, Name: u.Fragment, close: l.Close}, nil
}
