package models

import (
	"errors"
	"testing"
)

func TestValidateCamperAge(t *testing.T) {
	for _, age := range []int{8, 12, 18} {
		if err := ValidateCamperAge(age); err != nil {
			t.Errorf("age %d should be valid, got %v", age, err)
		}
	}
	for _, age := range []int{7, 19, -1, 25, 0} {
		err := ValidateCamperAge(age)
		if err == nil {
			t.Errorf("age %d should be rejected", age)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("age %d: expected ValidationError, got %T", age, err)
		}
	}
}

func TestValidateCamperName(t *testing.T) {
	if err := ValidateCamperName("Alex"); err != nil {
		t.Errorf("expected valid name, got %v", err)
	}
	if err := ValidateCamperName(""); err == nil {
		t.Error("empty name should be rejected")
	}
}

func TestValidateSignupTime(t *testing.T) {
	for _, tm := range []int{0, 12, 23} {
		if err := ValidateSignupTime(tm); err != nil {
			t.Errorf("time %d should be valid, got %v", tm, err)
		}
	}
	for _, tm := range []int{-1, 24, 100} {
		if err := ValidateSignupTime(tm); err == nil {
			t.Errorf("time %d should be rejected", tm)
		}
	}
}

func TestCamperApplyPatch(t *testing.T) {
	camper := Camper{Name: "Sam", Age: 10}

	if err := camper.ApplyPatch(map[string]any{"name": "Alex", "age": float64(12)}); err != nil {
		t.Fatalf("patch returned error: %v", err)
	}
	if camper.Name != "Alex" || camper.Age != 12 {
		t.Errorf("patch not applied, got %+v", camper)
	}

	// Out-of-range age must not land
	if err := camper.ApplyPatch(map[string]any{"age": float64(25)}); err == nil {
		t.Fatal("expected validation error for age 25")
	}
	if camper.Age != 12 {
		t.Errorf("failed patch mutated age to %d", camper.Age)
	}

	// Unknown keys are rejected, not silently dropped
	if err := camper.ApplyPatch(map[string]any{"cabin": "B"}); err == nil {
		t.Fatal("expected validation error for unknown field")
	}

	// Fractional ages are not integers
	if err := camper.ApplyPatch(map[string]any{"age": 12.5}); err == nil {
		t.Fatal("expected validation error for fractional age")
	}
}

func TestActivityApplyPatch(t *testing.T) {
	activity := Activity{Name: "Archery", Difficulty: 2}

	// Difficulty is deliberately unbounded
	if err := activity.ApplyPatch(map[string]any{"difficulty": float64(9999)}); err != nil {
		t.Fatalf("patch returned error: %v", err)
	}
	if activity.Difficulty != 9999 {
		t.Errorf("expected difficulty 9999, got %d", activity.Difficulty)
	}

	if err := activity.ApplyPatch(map[string]any{"camper_id": float64(1)}); err == nil {
		t.Fatal("expected validation error for unknown field")
	}
}
