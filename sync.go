package finch

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/finchdev/finch/period"
	"golang.org/x/sync/errgroup"
)

// Session is the immutable per-run context: the user identity and the global
// category set, both fetched once at startup and never mutated afterwards.
type Session struct {
	User       User
	Categories CategoryIndex
}

// Open establishes a session: it probes the service, fetches the user and
// the category set. Unlike a refresh, a failure here is fatal; there is
// nothing to display without a user and the reference data.
func Open(ctx context.Context, c *Client, userID string) (*Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("no user configured")
	}
	if err := c.Health(ctx); err != nil {
		return nil, err
	}
	user, err := c.User(ctx, userID)
	if err != nil {
		return nil, err
	}
	cats, err := c.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Categories: NewCategoryIndex(cats)}, nil
}

// Snapshot is one consistent view of a month: the four dependent resources,
// committed together. A nil Analysis means that read failed or never ran.
type Snapshot struct {
	Month           period.Month
	Seq             uint64
	Income          []IncomeEntry
	Expenses        []ExpenseEntry
	Analysis        *MonthlyAnalysis
	Recommendations []Recommendation
}

// Syncer produces consistent Snapshots for a month. It owns the ordering
// discipline: every refresh is tagged with an increasing sequence number so
// that the committer can discard snapshots of superseded refreshes
// (last-issued-wins, regardless of completion order).
type Syncer struct {
	client *Client
	userID string
	seq    atomic.Uint64
}

// NewSyncer returns a Syncer reading on behalf of the session's user.
func NewSyncer(c *Client, session *Session) *Syncer {
	s := &Syncer{client: c}
	if session != nil {
		s.userID = session.User.ID
	}
	return s
}

// Begin issues a new refresh and returns its sequence number. Issue order
// decides the winner: callers that fetch asynchronously must take their
// number before handing off to a goroutine, or a superseded refresh whose
// goroutine is scheduled late would number itself newest.
func (s *Syncer) Begin() uint64 { return s.seq.Add(1) }

// Refresh fetches the four month-scoped resources concurrently and returns
// them as one Snapshot, tagged with seq (from Begin), once all four have
// settled. A failed read defaults its resource (empty collection, nil
// analysis) and is logged; it never fails the aggregate, so the other three
// still display. With no user established, Refresh is a no-op and returns
// nil.
//
// Refresh never errors: per the error design, read failures degrade to
// partial data, they do not propagate.
func (s *Syncer) Refresh(ctx context.Context, m period.Month, seq uint64) *Snapshot {
	if s.userID == "" {
		return nil
	}
	snap := &Snapshot{Month: m, Seq: seq}

	// The four reads are independent; order does not matter, only that the
	// commit happens after all of them settle.
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		income, err := s.client.Income(ctx, s.userID, m)
		if err != nil {
			log.Printf("refresh %s: %v", m, err)
			return nil
		}
		snap.Income = income
		return nil
	})
	g.Go(func() error {
		expenses, err := s.client.Expenses(ctx, s.userID, m)
		if err != nil {
			log.Printf("refresh %s: %v", m, err)
			return nil
		}
		snap.Expenses = expenses
		return nil
	})
	g.Go(func() error {
		analysis, err := s.client.Analysis(ctx, s.userID, m)
		if err != nil {
			log.Printf("refresh %s: %v", m, err)
			return nil
		}
		snap.Analysis = analysis
		return nil
	})
	g.Go(func() error {
		recs, err := s.client.Recommendations(ctx, s.userID, m)
		if err != nil {
			log.Printf("refresh %s: %v", m, err)
			return nil
		}
		snap.Recommendations = recs
		return nil
	})
	// the goroutines above never return an error
	_ = g.Wait()

	return snap
}

// Latest reports whether seq belongs to the most recently begun refresh.
// Committers must drop snapshots for which Latest is false: they belong to
// a refresh that was superseded while in flight.
func (s *Syncer) Latest(seq uint64) bool { return s.seq.Load() == seq }
