package domain_test

import (
	"errors"
	"testing"

	"waterlog/internal/domain"
)

func TestValidateSubjectID(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"004821", true},
		{"123456", true},
		{"000000", true},
		{"4821", false},
		{"48217a", false},
		{"1234567", false},
		{"", false},
		{" 12345", false},
		{"12 456", false},
		{"-12345", false},
		{"١٢٣٤٥٦", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			id, err := domain.ValidateSubjectID(tc.in)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if id.String() != tc.in {
					t.Fatalf("id = %q; want %q", id, tc.in)
				}
				return
			}
			if !errors.Is(err, domain.ErrInvalidSubjectID) {
				t.Fatalf("expected ErrInvalidSubjectID, got %v", err)
			}
			if domain.FailedField(err) != domain.FieldSubjectID {
				t.Fatalf("field = %q", domain.FailedField(err))
			}
		})
	}
}

func TestValidateWeight(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"15", 15, true},
		{"15.0", 15, true},
		{"40", 40, true},
		{"22.35", 22.35, true},
		{" 30 ", 30, true},
		{"14.999", 0, false},
		{"40.001", 0, false},
		{"0", 0, false},
		{"-20", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"0x1Ep0", 0, false},
		{"0X1Ep0", 0, false},
		{"2_0", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ValidateWeight(tc.in)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.want {
					t.Fatalf("got %v; want %v", got, tc.want)
				}
				return
			}
			if !errors.Is(err, domain.ErrInvalidWeight) {
				t.Fatalf("expected ErrInvalidWeight, got %v", err)
			}
		})
	}
}

func TestValidateWeight_BoundsSweep(t *testing.T) {
	for w := 10.0; w <= 45.0; w += 0.25 {
		_, err := domain.ValidateWeight(formatFloat(w))
		inRange := w >= domain.MinWeightG && w <= domain.MaxWeightG
		if inRange != (err == nil) {
			t.Fatalf("weight %v: inRange=%v err=%v", w, inRange, err)
		}
	}
}

func TestValidateWater(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"0", true},
		{"0.0", true},
		{"1.25", true},
		{"-0.1", false},
		{"lots", false},
		{"", false},
		{"+Inf", false},
		{"0x1p-1", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			_, err := domain.ValidateWater(tc.in)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, domain.ErrInvalidWater) {
				t.Fatalf("expected ErrInvalidWater, got %v", err)
			}
		})
	}
}

func TestValidateDay(t *testing.T) {
	if _, err := domain.ValidateDay("2024-02-29"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, in := range []string{"2023-02-29", "02-28-2024", "2024/01/01", ""} {
		if _, err := domain.ValidateDay(in); !errors.Is(err, domain.ErrInvalidDate) {
			t.Errorf("ValidateDay(%q) = %v; want ErrInvalidDate", in, err)
		}
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name                                   string
		day, subject, condition, weight, water string
		wantField                              string
	}{
		{"all present", "2024-01-01", "000001", "After session", "20", "1", ""},
		{"water optional off-session", "2024-01-01", "000001", "Rest day", "20", "", ""},
		{"missing day", "", "000001", "Rest day", "20", "", domain.FieldDay},
		{"missing subject", "2024-01-01", " ", "Rest day", "20", "", domain.FieldSubjectID},
		{"missing condition", "2024-01-01", "000001", "", "20", "", domain.FieldCondition},
		{"missing weight", "2024-01-01", "000001", "Rest day", "", "", domain.FieldWeight},
		{"missing water after session", "2024-01-01", "000001", "AfterSession", "20", "", domain.FieldWater},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.ValidateRequiredFields(tc.day, tc.subject, tc.condition, tc.weight, tc.water)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, domain.ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
			if got := domain.FailedField(err); got != tc.wantField {
				t.Fatalf("field = %q; want %q", got, tc.wantField)
			}
		})
	}
}

func TestParseCondition(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Condition
	}{
		{"After session", domain.ConditionAfterSession},
		{"aftersession", domain.ConditionAfterSession},
		{"BeforeSession", domain.ConditionBeforeSession},
		{" rest day ", domain.ConditionRestDay},
		{"Baseline weight", domain.ConditionBaselineWeight},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseCondition(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q; want %q", got, tc.want)
			}
		})
	}
	if _, err := domain.ParseCondition("Session"); !errors.Is(err, domain.ErrInvalidCondition) {
		t.Fatalf("expected ErrInvalidCondition, got %v", err)
	}
}

func TestValidateRecord(t *testing.T) {
	valid := domain.Record{Day: "2024-01-02", SubjectID: "004821", Condition: domain.ConditionAfterSession,
		WeightG: 18, WaterCollectedML: domain.Float(0), SuggestedWaterML: domain.Float(0.8)}
	tests := []struct {
		name   string
		mutate func(r *domain.Record)
		want   error
	}{
		{"valid after session", func(*domain.Record) {}, nil},
		{"after session without water", func(r *domain.Record) { r.WaterCollectedML, r.SuggestedWaterML = nil, nil }, nil},
		{"rest day without water", func(r *domain.Record) {
			r.Condition = domain.ConditionRestDay
			r.WaterCollectedML, r.SuggestedWaterML = nil, nil
		}, nil},
		{"rest day with zero water", func(r *domain.Record) {
			r.Condition = domain.ConditionRestDay
			r.SuggestedWaterML = nil
		}, domain.ErrInvalidWater},
		{"baseline with suggestion", func(r *domain.Record) {
			r.Condition = domain.ConditionBaselineWeight
			r.WaterCollectedML = nil
		}, domain.ErrInvalidWater},
		{"negative water", func(r *domain.Record) { r.WaterCollectedML = domain.Float(-1) }, domain.ErrInvalidWater},
		{"weight above range", func(r *domain.Record) { r.WeightG = 99 }, domain.ErrInvalidWeight},
		{"weight below range", func(r *domain.Record) { r.WeightG = 14.9 }, domain.ErrInvalidWeight},
		{"short subject", func(r *domain.Record) { r.SubjectID = "4821" }, domain.ErrInvalidSubjectID},
		{"bad day", func(r *domain.Record) { r.Day = "2024-13-01" }, domain.ErrInvalidDate},
		{"unknown condition", func(r *domain.Record) { r.Condition = "Nap" }, domain.ErrInvalidCondition},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			err := domain.ValidateRecord(r)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
