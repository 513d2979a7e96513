package inputs

import (
	"context"
	"testing"
)

func TestMemoryStoreCurrentBeforePut(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	_, ok, err := store.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if ok {
		t.Fatal("expected no stored inputs before first Put")
	}
}

func TestMemoryStorePutThenCurrent(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	want := Inputs{Principal: 50000, MonthlyContribution: 5000, AnnualRatePercent: 20, Years: 20}
	if err := store.Put(context.Background(), want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := store.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if !ok {
		t.Fatal("expected stored inputs after Put")
	}
	if got != want {
		t.Fatalf("Current = %+v, want %+v", got, want)
	}
}

func TestMemoryStoreSubscribe(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	var seen []Inputs
	unsubscribe, err := store.Subscribe(func(in Inputs) {
		seen = append(seen, in)
	})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	first := Inputs{Principal: 100}
	if err := store.Put(context.Background(), first); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if len(seen) != 1 || seen[0] != first {
		t.Fatalf("seen = %+v, want single notification %+v", seen, first)
	}

	unsubscribe()
	if err := store.Put(context.Background(), Inputs{Principal: 200}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("got %d notifications after unsubscribe, want 1", len(seen))
	}
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Put(ctx, Inputs{}); err == nil {
		t.Fatal("Put with cancelled context should fail")
	}
	if _, _, err := store.Current(ctx); err == nil {
		t.Fatal("Current with cancelled context should fail")
	}
}

func TestProjectionInputAnnualizesContribution(t *testing.T) {
	t.Parallel()

	in := Inputs{Principal: 1000, MonthlyContribution: 5000, AnnualRatePercent: 7, Years: 10}
	got := in.ProjectionInput()
	if got.AnnualContribution != 60000 {
		t.Fatalf("AnnualContribution = %v, want 60000", got.AnnualContribution)
	}
	if got.Principal != 1000 || got.AnnualRatePercent != 7 || got.Years != 10 {
		t.Fatalf("ProjectionInput = %+v, want pass-through of other fields", got)
	}
}
