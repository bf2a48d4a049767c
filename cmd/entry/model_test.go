package entry

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestEntry(t *testing.T) {
	now := time.Date(2021, time.September, 20, 2, 0, 30, 0, time.UTC)
	m := NewModel([]string{"Bangor", "Newlyn"}, now)
	if m.timeStr != "2021-09-20T02:00:00Z" {
		t.Errorf("default time = %q", m.timeStr)
	}
	m.stationStr = " Newlyn "
	m.heightStr = "1.465"

	got, err := m.Entry()
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	want := Entry{Time: time.Date(2021, time.September, 20, 2, 0, 0, 0, time.UTC), Station: "Newlyn", Height: 1.465}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("(-got,+want): %s", diff)
	}
}

func TestValidate(t *testing.T) {
	table := []struct {
		name  string
		fn    func(string) error
		input string
		ok    bool
	}{
		{"time ok", validateTime, "2021-09-20T02:00:00Z", true},
		{"time bad", validateTime, "20/09/2021", false},
		{"station ok", validateStation, "Newlyn", true},
		{"station blank", validateStation, "  ", false},
		{"height ok", validateHeight, "-2.231", true},
		{"height bad", validateHeight, "high", false},
	}
	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			if err := test.fn(test.input); (err == nil) != test.ok {
				t.Errorf("got %v, want ok=%v", err, test.ok)
			}
		})
	}
}
