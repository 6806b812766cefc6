package journal

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// SearchResult pairs a discovered shard with its match score in (0,1].
type SearchResult struct {
	Shard Shard   `json:"shard"`
	Score float64 `json:"score"`
}

// Search matches a query against discovered shard titles and bodies.
// Exact substrings win; otherwise title words within a small edit
// distance still count, so "lantren" finds the Lantern shards.
func (s *Service) Search(ctx context.Context, query string) ([]SearchResult, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	shards, err := s.repo.ListShards(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SearchResult, 0)
	for _, sh := range shards {
		if !sh.Discovered() {
			continue
		}
		if score := matchScore(sh, query); score > 0 {
			out = append(out, SearchResult{Shard: sh, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

func matchScore(sh Shard, query string) float64 {
	title := strings.ToLower(sh.Title)
	if strings.Contains(title, query) {
		return 1.0
	}
	if strings.Contains(strings.ToLower(sh.Body), query) {
		return 0.8
	}

	best := 0.0
	for _, word := range strings.Fields(title) {
		dist := levenshtein.ComputeDistance(word, query)
		if dist > editLimit(len(word)) {
			continue
		}
		if score := 0.72 - 0.08*float64(dist); score > best {
			best = score
		}
	}
	return best
}

func editLimit(wordLen int) int {
	switch {
	case wordLen <= 4:
		return 1
	case wordLen <= 8:
		return 2
	default:
		return 3
	}
}
