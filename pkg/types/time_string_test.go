package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid", input: "09:30", want: "09:30"},
		{name: "trimmed", input: " 17:00 ", want: "17:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "no leading zero", input: "9:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	ts := TimeString("17:30")

	assert.Equal(t, 1050, ts.Minutes())
	assert.Equal(t, 30, ts.Minute())

	end, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), end)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.True(t, TimeString("12:30").IsAfter("12:00"))
	assert.False(t, TimeString("12:30").IsAfter("12:30"))
	assert.Equal(t, -1, TimeString("bad").Minutes())
}

func TestFromMinutesAndNewTimeString(t *testing.T) {
	assert.Equal(t, TimeString("09:00"), FromMinutes(540))
	assert.Equal(t, TimeString("12:30"), FromMinutes(750))
	assert.Equal(t, TimeString("00:00"), FromMinutes(-5))

	moment := time.Date(2025, 3, 10, 8, 5, 0, 0, time.UTC)
	assert.Equal(t, TimeString("08:05"), NewTimeString(moment))
}
