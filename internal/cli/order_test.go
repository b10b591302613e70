package cli

import (
	"reflect"
	"testing"

	"github.com/diskmap/diskmap/pkg/errors"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []int64
		ok   bool
	}{
		{"empty means default", "", nil, true},
		{"single", "0", []int64{0}, true},
		{"list", "2,0,1", []int64{2, 0, 1}, true},
		{"spaced list", "2, 0, 1", []int64{2, 0, 1}, true},
		{"letters", "a,b", nil, false},
		{"trailing comma", "0,1,", nil, false},
		{"negative", "-1", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOrder(tt.spec)
			if tt.ok {
				if err != nil {
					t.Fatalf("parseOrder(%q) error: %v", tt.spec, err)
				}
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("parseOrder(%q) = %v, want %v", tt.spec, got, tt.want)
				}
				return
			}
			if err == nil {
				t.Fatalf("parseOrder(%q) expected error", tt.spec)
			}
			if errors.GetCode(err) != errors.ErrCodeInvalidOrder {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidOrder)
			}
		})
	}
}

func TestParseBlockSpec(t *testing.T) {
	i, j, err := parseBlockSpec("2,3")
	if err != nil {
		t.Fatalf("parseBlockSpec error: %v", err)
	}
	if i != 2 || j != 3 {
		t.Errorf("parseBlockSpec = (%d,%d), want (2,3)", i, j)
	}

	if _, _, err := parseBlockSpec("2, 3"); err != nil {
		t.Errorf("spaced spec should parse: %v", err)
	}

	for _, bad := range []string{"", "2", "2,3,4", "a,b"} {
		if _, _, err := parseBlockSpec(bad); err == nil {
			t.Errorf("parseBlockSpec(%q) expected error", bad)
		}
	}
}
