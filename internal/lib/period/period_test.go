package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnd(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "три месяца с середины месяца",
			start:  time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "переход через конец года",
			start:  time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
			months: 6,
			want:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "один месяц с 31 числа",
			start:  time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, End(tt.start, tt.months))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 300.0, TotalPrice(100.0, 3))
	assert.Equal(t, 129.0, TotalPrice(129.0, 1))
	assert.Equal(t, 534.0, TotalPrice(89.0, 6))
}
