package domain

import "testing"

func TestStatusNext(t *testing.T) {
	tests := []struct {
		from Status
		want Status
	}{
		{TODO, TEST},
		{TEST, DONE},
		{DONE, DONE}, // terminal for forward motion
	}

	for _, tt := range tests {
		if got := tt.from.Next(); got != tt.want {
			t.Errorf("Next(%s) = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestStatusPrev(t *testing.T) {
	tests := []struct {
		from Status
		want Status
	}{
		{DONE, TEST},
		{TEST, TODO},
		{TODO, TODO}, // no backward step from todo
	}

	for _, tt := range tests {
		if got := tt.from.Prev(); got != tt.want {
			t.Errorf("Prev(%s) = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestForwardThenBackwardRoundTrips(t *testing.T) {
	// Forward then backward restores the original status except on the
	// no-op ends.
	for _, status := range []Status{TODO, TEST} {
		if got := status.Next().Prev(); got != status {
			t.Errorf("Next then Prev from %s = %s, want %s", status, got, status)
		}
	}

	// done: forward is a no-op, so backward afterwards lands on test.
	if got := DONE.Next().Prev(); got != TEST {
		t.Errorf("Next then Prev from done = %s, want test", got)
	}
}

func TestThreeForwardsReachDone(t *testing.T) {
	status := TODO
	for i := 0; i < 3; i++ {
		status = status.Next()
	}
	if status != DONE {
		t.Fatalf("three forward moves from todo = %s, want done", status)
	}

	// A fourth move leaves the status at done.
	if status.Next() != DONE {
		t.Fatalf("forward move from done = %s, want done", status.Next())
	}
}

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"todo", TODO, false},
		{"test", TEST, false},
		{"done", DONE, false},
		{"", "", true},
		{"archived", "", true},
		{"TODO", "", true},
	}

	for _, tt := range tests {
		got, err := StatusFromString(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("StatusFromString(%q): expected error, got %s", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("StatusFromString(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("StatusFromString(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, status := range []Status{TODO, TEST, DONE} {
		if !status.Valid() {
			t.Errorf("%s should be valid", status)
		}
	}
	if Status("backlog").Valid() {
		t.Error("backlog should not be valid")
	}
}

func TestRoleFromString(t *testing.T) {
	if role, err := RoleFromString("admin"); err != nil || role != ADMIN {
		t.Errorf("RoleFromString(admin) = %v, %v", role, err)
	}
	if role, err := RoleFromString("intern"); err != nil || role != INTERN {
		t.Errorf("RoleFromString(intern) = %v, %v", role, err)
	}
	if _, err := RoleFromString("manager"); err == nil {
		t.Error("RoleFromString(manager): expected error")
	}
}
