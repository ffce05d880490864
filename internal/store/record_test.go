package store

import "testing"

func intp(n int) *int { return &n }

func TestFormatSalary(t *testing.T) {
	tests := []struct {
		name   string
		salary *Salary
		want   string
	}{
		{"both bounds", &Salary{From: intp(80000), To: intp(120000), Currency: "RUR"}, "80000 - 120000 RUR"},
		{"missing lower bound", &Salary{To: intp(150000), Currency: "RUR"}, "None - 150000 RUR"},
		{"missing upper bound", &Salary{From: intp(90000), Currency: "RUR"}, "90000 - None RUR"},
		{"no salary at all", nil, "Не указана"},
		{"no currency", &Salary{From: intp(100), To: intp(200)}, "100 - 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSalary(tt.salary); got != tt.want {
				t.Errorf("FormatSalary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSalary(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantNil  bool
		wantFrom *int
		wantTo   *int
		wantCur  string
	}{
		{"both bounds", "80000 - 120000 RUR", false, intp(80000), intp(120000), "RUR"},
		{"missing lower bound", "None - 150000 RUR", false, nil, intp(150000), "RUR"},
		{"missing upper bound", "70000 - None RUR", false, intp(70000), nil, "RUR"},
		{"not specified sentinel", "Не указана", true, nil, nil, ""},
		{"empty", "", true, nil, nil, ""},
		{"garbage", "договорная", true, nil, nil, ""},
		{"malformed bound", "abc - 100 RUR", true, nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSalary(tt.text)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParseSalary(%q) = %+v, want nil", tt.text, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseSalary(%q) = nil", tt.text)
			}
			if !boundEq(got.From, tt.wantFrom) || !boundEq(got.To, tt.wantTo) || got.Currency != tt.wantCur {
				t.Errorf("ParseSalary(%q) = %+v", tt.text, got)
			}
		})
	}
}

func boundEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func TestSalaryRoundTrip(t *testing.T) {
	for _, text := range []string{
		"80000 - 120000 RUR",
		"None - 150000 RUR",
		"70000 - None RUR",
		"Не указана",
	} {
		if got := FormatSalary(ParseSalary(text)); got != text {
			t.Errorf("round trip of %q produced %q", text, got)
		}
	}
}

func TestSalaryContributes(t *testing.T) {
	var missing *Salary
	if missing.Contributes() {
		t.Error("nil salary must not contribute")
	}
	if (&Salary{From: intp(1)}).Contributes() {
		t.Error("half-open salary must not contribute")
	}
	s := &Salary{From: intp(80000), To: intp(120000)}
	if !s.Contributes() {
		t.Error("full salary must contribute")
	}
	if got := s.Midpoint(); got != 100000 {
		t.Errorf("Midpoint() = %v, want 100000", got)
	}
}
