// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type testRecord struct {
	Name       *string `json:"name" validate:"required"`
	Date       *string `json:"date" validate:"omitempty,isodate"`
	TotalSeats int     `json:"totalSeats" validate:"gte=0"`
	UsedSeats  int     `json:"usedSeats" validate:"gte=0,ltefield=TotalSeats"`
	Status     string  `json:"status" validate:"omitempty,oneof=Active Maintenance"`
}

func strPtr(s string) *string { return &s }

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     testRecord
		wantField string
		wantMsg   string
	}{
		{
			name:  "valid",
			input: testRecord{Name: strPtr("Laptop"), Date: strPtr("2025-01-31"), TotalSeats: 5, UsedSeats: 5, Status: "Active"},
		},
		{
			name:      "missing required uses json name",
			input:     testRecord{},
			wantField: "name",
			wantMsg:   "name is required",
		},
		{
			name:      "bad date",
			input:     testRecord{Name: strPtr("x"), Date: strPtr("31/01/2025")},
			wantField: "date",
			wantMsg:   "date must be a date in YYYY-MM-DD format",
		},
		{
			name:      "seats exceeded",
			input:     testRecord{Name: strPtr("x"), TotalSeats: 5, UsedSeats: 6},
			wantField: "usedSeats",
			wantMsg:   "usedSeats must be less than or equal to totalSeats",
		},
		{
			name:      "negative seats",
			input:     testRecord{Name: strPtr("x"), TotalSeats: -1, UsedSeats: -2},
			wantField: "totalSeats",
			wantMsg:   "totalSeats must be greater than or equal to 0",
		},
		{
			name:      "status not in set",
			input:     testRecord{Name: strPtr("x"), Status: "Broken"},
			wantField: "status",
			wantMsg:   "status must be one of: Active Maintenance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() expected error")
			}
			msgs := err.FieldMessages()
			if got := msgs[tt.wantField]; got != tt.wantMsg {
				t.Errorf("message for %s = %q, want %q (all: %v)", tt.wantField, got, tt.wantMsg, msgs)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q should contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	var ve RequestValidationError
	if ve.Error() != "validation failed" {
		t.Errorf("empty Error() = %q", ve.Error())
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	err := ValidateStruct("not a struct")
	if err == nil {
		t.Fatal("expected error for non-struct input")
	}
	if got := err.Errors()[0].Field(); got != "unknown" {
		t.Errorf("field = %q, want unknown", got)
	}
}
