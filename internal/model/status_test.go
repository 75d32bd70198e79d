package model

import "testing"

func TestComputeStatus(t *testing.T) {
	cases := []struct {
		hours float64
		want  Status
	}{
		{168, StatusCompleted},
		{40.5, StatusCompleted},
		{40, StatusCompleted},
		{39.999, StatusIncomplete},
		{8, StatusIncomplete},
		{0.25, StatusIncomplete},
		{0, StatusMissing},
		{-3, StatusMissing},
	}
	for _, c := range cases {
		if got := ComputeStatus(c.hours); got != c.want {
			t.Fatalf("ComputeStatus(%v) = %s, want %s", c.hours, got, c.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusIncomplete, StatusMissing} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if Status("DONE").Valid() {
		t.Fatalf("unknown status must not be valid")
	}
	if Status("").Valid() {
		t.Fatalf("empty status must not be valid")
	}
}
