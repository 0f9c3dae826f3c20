package cxtype

import "testing"

// These exercise compareLossiness directly against the documented case
// table, including transitions no currently registered engine pair
// produces through a real round trip (every engine in this module
// carries a native 64-bit integer type, so BigInt never actually
// narrows to Int today).
func TestCompareLossiness_CaseTable(t *testing.T) {
	cases := []struct {
		name       string
		before     CanonicalType
		after      CanonicalType
		wantKind   string
		wantLossy  bool
		wantNilVal bool
	}{
		{
			name:     "decimal to float is lossy",
			before:   NewDecimal(10, 2),
			after:    Simple(Float),
			wantKind: "decimal-to-float",
			wantLossy: true,
		},
		{
			name:      "decimal precision narrowed is lossy",
			before:    NewDecimal(18, 4),
			after:     NewDecimal(10, 2),
			wantKind:  "precision-narrowed",
			wantLossy: true,
		},
		{
			name:      "bigint narrowed to int is lossy",
			before:    Simple(BigInt),
			after:     Simple(Int),
			wantKind:  "bigint-narrowed",
			wantLossy: true,
		},
		{
			name:      "timestamp collapsed to text is lossy",
			before:    Simple(Timestamp),
			after:     Simple(Text),
			wantKind:  "datetime-to-text",
			wantLossy: true,
		},
		{
			name:      "date collapsed to varchar is lossy",
			before:    Simple(Date),
			after:     NewVarchar(32),
			wantKind:  "datetime-to-text",
			wantLossy: true,
		},
		{
			name:      "unicode text downgraded is lossy",
			before:    NewNVarchar(50),
			after:     NewVarchar(50),
			wantKind:  "unicode-downgraded",
			wantLossy: true,
		},
		{
			name:      "uuid rendered as text is a non-lossy advisory",
			before:    Simple(Uuid),
			after:     NewVarchar(36),
			wantKind:  "rendered-as-text",
			wantLossy: false,
		},
		{
			name:      "json rendered as text is a non-lossy advisory",
			before:    Simple(Json),
			after:     Simple(Text),
			wantKind:  "rendered-as-text",
			wantLossy: false,
		},
		{
			name:       "identical types produce no warning",
			before:     Simple(Int),
			after:      Simple(Int),
			wantNilVal: true,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := compareLossiness(tt.before, tt.after)
			if tt.wantNilVal {
				if got != nil {
					t.Fatalf("expected nil warning, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected a warning, got nil")
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if got.IsLossy != tt.wantLossy {
				t.Errorf("IsLossy = %v, want %v", got.IsLossy, tt.wantLossy)
			}
		})
	}
}
