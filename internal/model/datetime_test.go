package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", `"2024-03-20T09:30:00Z"`, time.Date(2024, 3, 20, 9, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", `"2024-03-20T11:30:00+02:00"`, time.Date(2024, 3, 20, 9, 30, 0, 0, time.UTC)},
		{"fractional seconds", `"2024-03-20T09:30:00.250Z"`, time.Date(2024, 3, 20, 9, 30, 0, 250_000_000, time.UTC)},
		{"offset without colon", `"2024-03-20T09:30:00.000+0000"`, time.Date(2024, 3, 20, 9, 30, 0, 0, time.UTC)},
		{"no zone", `"2024-11-27T20:09:34"`, time.Date(2024, 11, 27, 20, 9, 34, 0, time.UTC)},
		{"date only", `"2024-03-20"`, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
		{"epoch millis", `1710892800000`, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DateTime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.True(t, tt.want.Equal(d.Time), "got %s", d.Time)
		})
	}
}

func TestDateTimeUnmarshalNull(t *testing.T) {
	d := DateTime{Time: time.Now()}

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))

	assert.True(t, d.IsZero())
}

func TestDateTimeUnmarshalInvalid(t *testing.T) {
	for _, input := range []string{`"20/03/2024"`, `"tomorrow"`, `true`, `"2024-13-01"`} {
		var d DateTime
		assert.Error(t, json.Unmarshal([]byte(input), &d), input)
	}
}

func TestDateTimeMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		Date  DateTime `json:"date"`
		Empty DateTime `json:"empty"`
	}{Date: DateTime{Time: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)}})

	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-03-20T00:00:00Z","empty":null}`, string(out))
}

func TestSessionDTOAcceptsDateOnly(t *testing.T) {
	var dto SessionDTO
	require.NoError(t, json.Unmarshal([]byte(`{"name":"New Session","date":"2024-03-20","teacher_id":1,"description":"Test Description"}`), &dto))

	assert.NoError(t, dto.Validate())
	assert.True(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC).Equal(dto.Date.Time))
}
