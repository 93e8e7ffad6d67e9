package dbutil

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParamSummary(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil value", nil, "url=null"},
		{"empty string", "", "url=empty"},
		{"uri is redacted to length", "postgres://user:hunter2@db:5432/tags", "url=len=36"},
		{"bool", true, "url=true"},
		{"int", 42, "url=42"},
		{"int64", int64(-7), "url=-7"},
		{"duration", 5 * time.Second, "url=5s"},
		{"zero time", time.Time{}, "url=zero-time"},
		{"non-zero time", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "url=non-zero-time"},
		{"unknown type falls back to %T", 3.14, "url=float64"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParamSummary("url", tc.in))
		})
	}
}

func TestErrWrap(t *testing.T) {
	assert.Nil(t, ErrWrap("schema.ensure", nil))

	base := errors.New("connection refused")
	err := ErrWrap("schema.ensure", base)
	assert.EqualError(t, err, "schema.ensure: connection refused")
	assert.ErrorIs(t, err, base)

	err = ErrWrap("schema.ensure", base, ParamSummary("url", "postgres://x"), ParamSummary("timeout", 5*time.Second))
	assert.EqualError(t, err, "schema.ensure: connection refused; url=len=12,timeout=5s")
	assert.ErrorIs(t, err, base)
}
