package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestMustRegister_PanicsOnBadTag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("mustRegister with an empty tag should panic")
		}
	}()
	mustRegister(validator.New(), "", func(validator.FieldLevel) bool { return true })
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "invalid"},
		{Field: "type", Message: "required"},
	}
	got := errs.Error()
	want := "start_date: invalid; type: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{}.Add("start_date", "invalid").Add("type", "required")
	got := errs.ToMap()
	want := map[string]string{"start_date": "invalid", "type": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestValidationErrors_OrNil(t *testing.T) {
	var errs ValidationErrors
	if errs.OrNil() != nil {
		t.Errorf("empty ValidationErrors.OrNil() should be nil")
	}
	errs = errs.Add("x", "bad")
	if errs.OrNil() == nil {
		t.Errorf("non-empty ValidationErrors.OrNil() should not be nil")
	}
}

type sampleRequest struct {
	Date   string  `json:"date" validate:"required,date"`
	Time   string  `json:"time" validate:"required,clock"`
	Action string  `json:"action" validate:"required,oneof=check_in check_out"`
	Day    string  `json:"day" validate:"omitempty,weekday"`
	Hours  float64 `json:"hours" validate:"gt=0,lte=24"`
}

func TestStruct(t *testing.T) {
	ok := sampleRequest{Date: "2024-05-01", Time: "08:30", Action: "check_in", Day: "mon", Hours: 2}
	if errs := Struct(ok); errs != nil {
		t.Fatalf("Struct(valid) = %v, want nil", errs)
	}

	bad := sampleRequest{Date: "2024-5-1", Time: "8h", Action: "leave", Day: "monday", Hours: 30}
	errs := Struct(bad)
	got := errs.ToMap()
	wantFields := map[string]string{
		"date":   "must be a date in YYYY-MM-DD format",
		"time":   "must be a time in HH:mm format",
		"action": "must be one of: check_in, check_out",
		"day":    "must be one of mon, tue, wed, thu, fri, sat, sun",
		"hours":  "must be at most 24",
	}
	for field, msg := range wantFields {
		if got[field] != msg {
			t.Errorf("Struct(bad)[%q] = %q, want %q", field, got[field], msg)
		}
	}

	missing := Struct(sampleRequest{Hours: 1})
	if missing.ToMap()["date"] != "is required" {
		t.Errorf("Struct(missing)[date] = %q, want %q", missing.ToMap()["date"], "is required")
	}
}
