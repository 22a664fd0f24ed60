package service

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// mockCounterRepo increments in memory under a mutex, standing in for the
// database's atomic upsert.
type mockCounterRepo struct {
	mu        sync.Mutex
	customers map[string]int
	orders    map[string]int
	calls     int
	err       error
}

func (m *mockCounterRepo) NextCustomerValue(prefix string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	if m.customers == nil {
		m.customers = map[string]int{}
	}
	m.customers[prefix]++
	return m.customers[prefix], nil
}

func (m *mockCounterRepo) NextOrderSequence(financialYear string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	if m.orders == nil {
		m.orders = map[string]int{}
	}
	m.orders[financialYear]++
	return m.orders[financialYear], nil
}

func fixedTime(value string) func() time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestFinancialYear(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2024-04-01", "2024-25"},
		{"2024-06-15", "2024-25"},
		{"2025-02-10", "2024-25"},
		{"2025-03-31", "2024-25"},
		{"2025-04-01", "2025-26"},
		{"2023-12-31", "2023-24"},
		{"1999-12-31", "1999-00"},
	}
	for _, c := range cases {
		d, err := time.Parse("2006-01-02", c.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := FinancialYear(d); got != c.want {
			t.Errorf("FinancialYear(%s) = %s, want %s", c.date, got, c.want)
		}
	}
}

func TestNextCustomerIDFormatting(t *testing.T) {
	repo := &mockCounterRepo{customers: map[string]int{"A": 6}}
	svc := NewSequenceService(repo)

	id, err := svc.NextCustomerID("Aarti Sharma")
	if err != nil {
		t.Fatal(err)
	}
	if id != "A007" {
		t.Errorf("expected A007, got %s", id)
	}

	// lowercase names share the uppercase prefix partition
	id, err = svc.NextCustomerID("anil")
	if err != nil {
		t.Fatal(err)
	}
	if id != "A008" {
		t.Errorf("expected A008, got %s", id)
	}

	// padding never truncates past three digits
	repo.customers["B"] = 999
	id, err = svc.NextCustomerID("Bhavna")
	if err != nil {
		t.Fatal(err)
	}
	if id != "B1000" {
		t.Errorf("expected B1000, got %s", id)
	}
}

func TestNextCustomerIDStartsAtOne(t *testing.T) {
	svc := NewSequenceService(&mockCounterRepo{})

	id, err := svc.NextCustomerID("Ravi")
	if err != nil {
		t.Fatal(err)
	}
	if id != "R001" {
		t.Errorf("expected R001, got %s", id)
	}
}

func TestNextCustomerIDEmptyName(t *testing.T) {
	repo := &mockCounterRepo{}
	svc := NewSequenceService(repo)

	for _, name := range []string{"", "   "} {
		if _, err := svc.NextCustomerID(name); err == nil {
			t.Errorf("expected error for name %q", name)
		}
	}
	if repo.calls != 0 {
		t.Errorf("counter must not be touched for invalid names, got %d calls", repo.calls)
	}
}

func TestNextCustomerIDAllocationFailure(t *testing.T) {
	svc := NewSequenceService(&mockCounterRepo{err: fmt.Errorf("db down")})

	if _, err := svc.NextCustomerID("Aarti"); err == nil {
		t.Fatal("expected allocation error")
	}
}

func TestNextCustomerIDConcurrent(t *testing.T) {
	const n = 50
	svc := NewSequenceService(&mockCounterRepo{})

	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := svc.NextCustomerID("Meena")
			if err != nil {
				t.Error(err)
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		if seen[id] {
			t.Errorf("duplicate customer id %s", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d distinct ids, got %d", n, len(seen))
	}
	// contiguous range starting at M001
	for i := 1; i <= n; i++ {
		want := fmt.Sprintf("M%03d", i)
		if !seen[want] {
			t.Errorf("missing id %s in allocated range", want)
		}
	}
}

func TestNextOrderIDPerFinancialYear(t *testing.T) {
	repo := &mockCounterRepo{}

	svc := &SequenceService{Counters: repo, now: fixedTime("2024-06-15")}
	for i, want := range []string{"1/2024-25", "2/2024-25"} {
		id, err := svc.NextOrderID()
		if err != nil {
			t.Fatal(err)
		}
		if id != want {
			t.Errorf("allocation %d: expected %s, got %s", i+1, want, id)
		}
	}

	// February still belongs to the same fiscal year
	svc.now = fixedTime("2025-02-10")
	id, err := svc.NextOrderID()
	if err != nil {
		t.Fatal(err)
	}
	if id != "3/2024-25" {
		t.Errorf("expected 3/2024-25, got %s", id)
	}

	// a new fiscal year starts its sequence back at 1
	svc.now = fixedTime("2025-04-01")
	id, err = svc.NextOrderID()
	if err != nil {
		t.Fatal(err)
	}
	if id != "1/2025-26" {
		t.Errorf("expected 1/2025-26, got %s", id)
	}
}
