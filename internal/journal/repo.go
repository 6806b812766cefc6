package journal

import (
	"context"
	"errors"
	"time"
)

var ErrShardNotFound = errors.New("journal: shard not found")

// Repo owns the journal's persistent state.
type Repo interface {
	ListShards(ctx context.Context) ([]Shard, error)
	GetShard(ctx context.Context, id string) (Shard, bool, error)
	// MarkDiscovered stamps the shard if it has no timestamp yet and
	// reports whether this call was the first discovery.
	MarkDiscovered(ctx context.Context, id string, at time.Time) (Shard, bool, error)
	ListDistricts(ctx context.Context) ([]District, error)
	ListCharacters(ctx context.Context) ([]Character, error)
	Seed(ctx context.Context, districts []District, characters []Character, shards []Shard) error
}
