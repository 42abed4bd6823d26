// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package validation

import (
	"strings"
	"testing"
)

type testRecommendRequest struct {
	Need     string `validate:"required,oneof=gaming design dev student office"`
	Priority string `validate:"omitempty,oneof=performance budget balanced"`
	Budget   int64  `validate:"omitempty,gt=0"`
}

func TestValidateStruct_Valid(t *testing.T) {
	req := testRecommendRequest{Need: "gaming", Priority: "balanced", Budget: 20_000_000}
	if verr := ValidateStruct(&req); verr != nil {
		t.Errorf("ValidateStruct = %v, want nil", verr)
	}
}

func TestValidateStruct_OptionalFieldsOmitted(t *testing.T) {
	req := testRecommendRequest{Need: "office"}
	if verr := ValidateStruct(&req); verr != nil {
		t.Errorf("ValidateStruct = %v, want nil", verr)
	}
}

func TestValidateStruct_MissingRequired(t *testing.T) {
	req := testRecommendRequest{}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("ValidateStruct = nil, want error")
	}
	if len(verr.Errors()) != 1 {
		t.Fatalf("Errors() = %d, want 1", len(verr.Errors()))
	}
	if verr.Errors()[0].Field() != "Need" {
		t.Errorf("Field = %q, want Need", verr.Errors()[0].Field())
	}
	if verr.Errors()[0].Tag() != "required" {
		t.Errorf("Tag = %q, want required", verr.Errors()[0].Tag())
	}
}

func TestValidateStruct_BadEnum(t *testing.T) {
	req := testRecommendRequest{Need: "ultrabook"}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("ValidateStruct = nil, want error")
	}
	if !strings.Contains(verr.Error(), "must be one of") {
		t.Errorf("Error() = %q, want oneof message", verr.Error())
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	req := testRecommendRequest{Need: "bogus", Priority: "fastest"}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("ValidateStruct = nil, want error")
	}
	if len(verr.Errors()) != 2 {
		t.Errorf("Errors() = %d, want 2", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("multi-error APIError missing fields detail")
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	req := testRecommendRequest{Need: ""}
	apiErr := ValidateStruct(&req).ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "Need" {
		t.Errorf("Details[field] = %v, want Need", apiErr.Details["field"])
	}
}
