package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinichub/clinic-registry/internal/core/domain"
	"github.com/clinichub/clinic-registry/internal/core/ports"
)

type stubAuditService struct {
	mu        sync.Mutex
	processed []ports.AuditEventInput
	done      chan struct{}
	expect    int
}

func newStubAuditService(expect int) *stubAuditService {
	return &stubAuditService{done: make(chan struct{}), expect: expect}
}

func (s *stubAuditService) Process(_ context.Context, event ports.AuditEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed = append(s.processed, event)
	if len(s.processed) == s.expect {
		close(s.done)
	}
	return nil
}

func (s *stubAuditService) ListRecent(_ context.Context, _ int) ([]*ports.AuditEntryView, error) {
	return nil, nil
}

func (s *stubAuditService) wait(t *testing.T) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events")
	}
}

func TestDispatcher_ProcessesAllEvents(t *testing.T) {
	svc := newStubAuditService(10)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := int64(1); i <= 10; i++ {
		d.Record(ports.AuditEventInput{
			RecordKind: domain.KindClinic,
			RecordID:   i,
			Action:     domain.AuditCreated,
		})
	}

	svc.wait(t)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	seen := make(map[int64]bool)
	for _, e := range svc.processed {
		seen[e.RecordID] = true
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 distinct records, got %d", len(seen))
	}
}

func TestDispatcher_PerRecordOrdering(t *testing.T) {
	svc := newStubAuditService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Same record: all three events hash to the same worker, so ordering holds.
	for _, action := range []string{domain.AuditCreated, domain.AuditUpdated, domain.AuditDeleted} {
		d.Record(ports.AuditEventInput{
			RecordKind: domain.KindUser,
			RecordID:   42,
			Action:     action,
		})
	}

	svc.wait(t)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	want := []string{domain.AuditCreated, domain.AuditUpdated, domain.AuditDeleted}
	for i, e := range svc.processed {
		if e.Action != want[i] {
			t.Fatalf("expected %s at position %d, got %s", want[i], i, e.Action)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newStubAuditService(1), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
