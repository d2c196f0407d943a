package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/scoring"
	"github.com/okian/squadraft/pkg/metrics"
)

// snapshot is an immutable published view of the pool. Readers never lock.
type snapshot struct {
	players []model.Player
	summary Summary
	// ranked holds every player ordered by score desc, name asc.
	ranked []Entry
	// byPos holds the same rows split by position, ranks recomputed.
	byPos map[model.Position][]Entry
}

// PoolStore is an in-memory Store. Writers serialize on mu and publish a new
// snapshot; readers load the current one atomically.
type PoolStore struct {
	mu       sync.Mutex
	version  uint64
	scorer   scoring.Scorer
	now      func() time.Time
	snapshot atomic.Pointer[snapshot]
}

// NewPoolStore constructs an empty store.
func NewPoolStore(opts ...Option) *PoolStore {
	s := &PoolStore{
		scorer: scoring.NewValueScorer(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace implements Store.Replace.
func (s *PoolStore) Replace(ctx context.Context, players []model.Player, source string) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++
	snap := s.build(players, source)
	s.snapshot.Store(snap)

	for _, pos := range model.Positions() {
		metrics.UpdatePoolPlayers(pos.Short(), snap.summary.ByPosition[pos])
	}
	metrics.RecordPoolRefresh(source, metrics.ResultSuccess,
		float64(time.Since(start).Microseconds())/1000, snap.summary.LoadedAt.Unix())

	return copySummary(snap.summary), nil
}

func (s *PoolStore) build(players []model.Player, source string) *snapshot {
	owned := make([]model.Player, len(players))
	copy(owned, players)

	summary := Summary{
		Count:      len(owned),
		Source:     source,
		LoadedAt:   s.now(),
		Version:    s.version,
		ByPosition: make(map[model.Position]int, 4),
	}

	scores := scoring.ScoreAll(s.scorer, owned)
	ranked := make([]Entry, len(owned))
	for i, p := range owned {
		summary.ByPosition[p.Position]++
		ranked[i] = Entry{Player: p, Score: scores[i]}
	}
	sortEntries(ranked)

	byPos := make(map[model.Position][]Entry, 4)
	for _, e := range ranked {
		byPos[e.Player.Position] = append(byPos[e.Player.Position], e)
	}
	assignRanksWithTies(ranked)
	for _, rows := range byPos {
		assignRanksWithTies(rows)
	}

	return &snapshot{players: owned, summary: summary, ranked: ranked, byPos: byPos}
}

// Players implements Store.Players.
func (s *PoolStore) Players(ctx context.Context) ([]model.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := s.snapshot.Load()
	if snap == nil || len(snap.players) == 0 {
		return nil, ErrEmptyPool
	}
	out := make([]model.Player, len(snap.players))
	copy(out, snap.players)
	return out, nil
}

// Summary implements Store.Summary.
func (s *PoolStore) Summary(_ context.Context) Summary {
	snap := s.snapshot.Load()
	if snap == nil {
		return Summary{ByPosition: map[model.Position]int{}}
	}
	return copySummary(snap.summary)
}

// TopN implements Store.TopN.
func (s *PoolStore) TopN(_ context.Context, pos model.Position, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	snap := s.snapshot.Load()
	if snap == nil || len(snap.players) == 0 {
		return nil, ErrEmptyPool
	}
	rows := snap.ranked
	if pos != model.PositionUnknown {
		rows = snap.byPos[pos]
	}
	if n > len(rows) {
		n = len(rows)
	}
	out := make([]Entry, n)
	copy(out, rows[:n])
	return out, nil
}

// Count implements Store.Count.
func (s *PoolStore) Count(_ context.Context) int {
	snap := s.snapshot.Load()
	if snap == nil {
		return 0
	}
	return len(snap.players)
}

func copySummary(in Summary) Summary {
	out := in
	out.ByPosition = make(map[model.Position]int, len(in.ByPosition))
	for k, v := range in.ByPosition {
		out.ByPosition[k] = v
	}
	return out
}

// sortEntries orders by score desc, then name asc.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Player.Name < entries[j].Player.Name
	})
}

// assignRanksWithTies gives equal scores the same rank; the next distinct
// score gets the following rank (dense ranking).
func assignRanksWithTies(entries []Entry) {
	rank := 0
	for i := range entries {
		if i == 0 || entries[i].Score != entries[i-1].Score {
			rank++
		}
		entries[i].Rank = rank
	}
}
