package services

import (
	"sync"
	"time"

	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
)

const feedRetention = 10 * time.Minute

type feedEntry struct {
	issued    uint64
	committed uint64
	jobs      []models.Job
	inflight  int
	touched   time.Time
}

// JobFeed keeps, per owner, the most recent successfully fetched job list.
// Every fetch takes a ticket from Begin; when it completes, Commit either
// accepts its list or, if a later fetch already landed, hands back that newer
// list instead. Lists are replaced wholesale, never merged.
type JobFeed struct {
	mu      sync.Mutex
	entries map[string]*feedEntry
	now     func() time.Time
}

func NewJobFeed() *JobFeed {
	return &JobFeed{entries: make(map[string]*feedEntry), now: time.Now}
}

// Begin issues the next ticket for owner.
func (f *JobFeed) Begin(owner string) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.entries[owner]
	if !ok {
		e = &feedEntry{}
		f.entries[owner] = e
	}
	e.issued++
	e.inflight++
	e.touched = f.now()
	return e.issued
}

// Commit records the result of the fetch holding ticket. It returns the list
// the caller should derive views from.
func (f *JobFeed) Commit(owner string, ticket uint64, jobs []models.Job) []models.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.prune()

	e, ok := f.entries[owner]
	if !ok {
		return jobs
	}
	e.inflight--
	e.touched = f.now()

	if ticket < e.committed {
		return e.jobs
	}
	e.committed = ticket
	e.jobs = jobs
	return jobs
}

// Abandon releases a ticket whose fetch failed. Failed fetches never replace a list.
func (f *JobFeed) Abandon(owner string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if e, ok := f.entries[owner]; ok {
		e.inflight--
		e.touched = f.now()
	}
}

// prune drops idle owners. Callers hold f.mu.
func (f *JobFeed) prune() {
	cutoff := f.now().Add(-feedRetention)
	for owner, e := range f.entries {
		if e.inflight <= 0 && e.touched.Before(cutoff) {
			delete(f.entries, owner)
		}
	}
}
