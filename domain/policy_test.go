package domain

import "testing"

func TestAllowedAdmin(t *testing.T) {
	admin := Caller{Email: "boss@corp.com", Role: ADMIN}

	ops := []Operation{
		OpTaskRead, OpTaskMove, OpTaskWrite,
		OpProjectRead, OpProjectWrite,
		OpUserRead, OpUserWrite, OpUserList,
	}
	for _, op := range ops {
		if !Allowed(admin, op, "someone-else@corp.com") {
			t.Errorf("admin denied operation %v", op)
		}
	}
}

func TestAllowedIntern(t *testing.T) {
	intern := Caller{Email: "intern@corp.com", Role: INTERN}

	tests := []struct {
		name  string
		op    Operation
		owner string
		want  bool
	}{
		{"read own task", OpTaskRead, "intern@corp.com", true},
		{"read foreign task", OpTaskRead, "other@corp.com", false},
		{"move own task", OpTaskMove, "intern@corp.com", true},
		{"move foreign task", OpTaskMove, "other@corp.com", false},
		{"create task", OpTaskWrite, "", false},
		{"read projects", OpProjectRead, "", true},
		{"write projects", OpProjectWrite, "", false},
		{"read own profile", OpUserRead, "intern@corp.com", true},
		{"update own profile", OpUserWrite, "intern@corp.com", true},
		{"update foreign profile", OpUserWrite, "other@corp.com", false},
		{"list interns", OpUserList, "", false},
	}

	for _, tt := range tests {
		if got := Allowed(intern, tt.op, tt.owner); got != tt.want {
			t.Errorf("%s: Allowed = %v, want %v", tt.name, got, tt.want)
		}
	}
}
