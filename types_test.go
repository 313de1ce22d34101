package finch

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTimestampUnmarshal(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{
			name: "rfc3339",
			in:   `"2024-03-15T10:30:00Z"`,
			want: time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "naive with microseconds",
			in:   `"2024-03-15T10:30:00.123456"`,
			want: time.Date(2024, time.March, 15, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name: "naive without fraction",
			in:   `"2024-03-15T10:30:00"`,
			want: time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "bare date",
			in:   `"2024-03-15"`,
			want: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			in:      `"yesterday"`,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tc.in), &ts)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) expected an error, got %v", tc.in, ts)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", tc.in, err)
			}
			if !ts.Equal(tc.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tc.in, ts.Time, tc.want)
			}
		})
	}
}

func TestTimestampMarshal(t *testing.T) {
	ts := Timestamp{time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)}
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-03-15T10:30:00Z"` {
		t.Errorf("Marshal = %s, want %q", b, `"2024-03-15T10:30:00Z"`)
	}
}

// TestAmountsAsNumbers checks that amounts travel as bare JSON numbers, the
// way the service expects them.
func TestAmountsAsNumbers(t *testing.T) {
	in := NewIncome{
		UserID: "u1",
		Amount: decimal.NewFromFloat(45.5),
		Source: "Salary",
		Date:   Timestamp{time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)},
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"user_id":"u1","amount":45.5,"source":"Salary","date":"2024-03-15T10:30:00Z"}`
	if string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}
}
