package version

import (
	"strings"
	"testing"
)

func TestBuildIDFor(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{
			name:     "epoch date",
			date:     "2026-10-01",
			expected: 0,
		},
		{
			name:     "next day after epoch",
			date:     "2026-10-02",
			expected: 1,
		},
		{
			name:     "one year later",
			date:     "2027-10-01",
			expected: 365,
		},
		{
			name:     "across a leap day",
			date:     "2028-10-01",
			expected: 731,
		},
		{
			name:      "invalid format",
			date:      "invalid",
			wantError: true,
		},
		{
			name:      "empty date",
			date:      "",
			wantError: true,
		},
		{
			name:      "before epoch",
			date:      "2026-09-30",
			wantError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := BuildIDFor(tt.date)

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("BuildIDFor(%q) = %d, want %d", tt.date, got, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()

	BuildDate = ""
	info := Info()
	if info.Calculated || info.Error == "" || info.Product != Product {
		t.Errorf("Info() without date = %+v", info)
	}

	BuildDate = "2026-10-19"
	info = Info()
	if !info.Calculated || info.BuildID != 18 {
		t.Errorf("Info() = %+v", info)
	}
	if s := String(); !strings.Contains(s, "build 18") || !strings.Contains(s, "ci[local]") {
		t.Errorf("String() = %q", s)
	}
}
