package request

import (
	"errors"
	"reflect"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the custom binding tags on gin's validator:
//
//	future          the time is after now
//	futureorpresent the time is not before now
//	after_field=F   the time is strictly after sibling field F
//	notblank        the string is not only whitespace
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = errors.Join(
			v.RegisterValidation("future", validateFuture),
			v.RegisterValidation("futureorpresent", validateFutureOrPresent),
			v.RegisterValidation("after_field", validateAfterField),
			v.RegisterValidation("notblank", validators.NotBlank),
		)
	})
	return registerErr
}

func validateFuture(fl validator.FieldLevel) bool {
	t, ok := timeOf(fl.Field())
	if !ok {
		return true
	}
	return t.After(time.Now())
}

func validateFutureOrPresent(fl validator.FieldLevel) bool {
	t, ok := timeOf(fl.Field())
	if !ok {
		return true
	}
	// one second of slack for clients sending "now"
	return !t.Before(time.Now().Add(-time.Second))
}

func validateAfterField(fl validator.FieldLevel) bool {
	end, ok := timeOf(fl.Field())
	if !ok {
		return true
	}
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return false
	}
	start, ok := timeOf(parent.FieldByName(fl.Param()))
	if !ok {
		return true
	}
	return end.After(start)
}

// timeOf extracts a time from DateTime, time.Time or pointers to them.
// Absent values report false so that "required" decides about them.
func timeOf(v reflect.Value) (time.Time, bool) {
	if !v.IsValid() {
		return time.Time{}, false
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return time.Time{}, false
		}
		v = v.Elem()
	}
	if !v.CanInterface() {
		return time.Time{}, false
	}
	switch t := v.Interface().(type) {
	case DateTime:
		return t.Time(), !t.Time().IsZero()
	case time.Time:
		return t, !t.IsZero()
	}
	return time.Time{}, false
}
