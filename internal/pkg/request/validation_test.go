package request

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type window struct {
	Start *DateTime `binding:"required,futureorpresent"`
	End   *DateTime `binding:"required,future,after_field=Start"`
}

func ptr(t time.Time) *DateTime {
	d := NewDateTime(t)
	return &d
}

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())
	require.NoError(t, RegisterValidators())

	now := time.Now()
	tests := []struct {
		name  string
		value window
		ok    bool
	}{
		{"valid", window{ptr(now.Add(time.Hour)), ptr(now.Add(2 * time.Hour))}, true},
		{"start now", window{ptr(now), ptr(now.Add(time.Hour))}, true},
		{"start in past", window{ptr(now.Add(-time.Hour)), ptr(now.Add(time.Hour))}, false},
		{"end in past", window{ptr(now.Add(-2 * time.Hour)), ptr(now.Add(-time.Hour))}, false},
		{"end before start", window{ptr(now.Add(2 * time.Hour)), ptr(now.Add(time.Hour))}, false},
		{"end equals start", window{ptr(now.Add(time.Hour)), ptr(now.Add(time.Hour))}, false},
		{"missing start", window{nil, ptr(now.Add(time.Hour))}, false},
		{"missing end", window{ptr(now.Add(time.Hour)), nil}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPageParams(t *testing.T) {
	require.NoError(t, RegisterValidators())

	assert.Equal(t, Page{Offset: 4, Limit: 2}, PageParams{From: 4, Size: 2}.Page())
	assert.NoError(t, binding.Validator.ValidateStruct(&PageParams{From: 0, Size: 1}))
	assert.Error(t, binding.Validator.ValidateStruct(&PageParams{From: -1, Size: 1}))
	assert.Error(t, binding.Validator.ValidateStruct(&PageParams{From: 0, Size: 0}))
}

func TestNotBlank(t *testing.T) {
	require.NoError(t, RegisterValidators())

	type named struct {
		Name string `binding:"required,notblank"`
	}
	assert.NoError(t, binding.Validator.ValidateStruct(&named{Name: "Drill"}))
	assert.Error(t, binding.Validator.ValidateStruct(&named{Name: "  \t"}))
	assert.Error(t, binding.Validator.ValidateStruct(&named{}))
}
