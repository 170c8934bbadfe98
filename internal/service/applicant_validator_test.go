package service

import (
	"strings"
	"testing"

	"github.com/volunhub/internal/constants"
)

func validApplicantInput() ApplicantInput {
	return ApplicantInput{
		FullName:     "张三",
		Email:        "zhangsan@example.com",
		Phone:        "+86 138 0000 0000",
		Interests:    []string{constants.InterestEducation},
		Availability: constants.AvailabilityWeekends,
		Bio:          "周末有空。",
	}
}

func fieldMessages(verr *ValidationError, field string) []string {
	var messages []string
	for _, fe := range verr.Fields {
		if fe.Field == field {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

func TestValidateApplicantInputOK(t *testing.T) {
	input := validApplicantInput()
	input.Email = "  ZhangSan@Example.COM "
	input.FullName = "  张三  "

	normalized, verr := validateApplicantInput(input)
	if verr != nil {
		t.Fatalf("valid input rejected: %v", verr)
	}
	if normalized.Email != "zhangsan@example.com" {
		t.Fatalf("email should be normalized, got %s", normalized.Email)
	}
	if normalized.FullName != "张三" {
		t.Fatalf("full name should be trimmed, got %q", normalized.FullName)
	}
}

func TestValidateApplicantInputCollectsAllErrors(t *testing.T) {
	input := ApplicantInput{
		FullName:     "",
		Email:        "bad-email",
		Phone:        strings.Repeat("1", 21),
		Interests:    nil,
		Availability: "Sometimes",
		Bio:          strings.Repeat("长", 301),
	}

	_, verr := validateApplicantInput(input)
	if verr == nil {
		t.Fatalf("invalid input should be rejected")
	}
	for _, field := range []string{"full_name", "email", "phone", "interests", "availability", "bio"} {
		if len(fieldMessages(verr, field)) == 0 {
			t.Fatalf("expected error for field %s, got %+v", field, verr.Fields)
		}
	}
}

func TestValidateApplicantInputInvalidInterest(t *testing.T) {
	input := validApplicantInput()
	input.Interests = []string{constants.InterestTech, "Cooking"}

	_, verr := validateApplicantInput(input)
	if verr == nil {
		t.Fatalf("invalid interest should be rejected")
	}
	messages := fieldMessages(verr, "interests")
	if len(messages) != 1 || !strings.Contains(messages[0], "Cooking") {
		t.Fatalf("interest error should name the invalid value, got %+v", messages)
	}
}

func TestValidateApplicantInputDedupesInterests(t *testing.T) {
	input := validApplicantInput()
	input.Interests = []string{constants.InterestTech, " Tech ", constants.InterestEducation, ""}

	normalized, verr := validateApplicantInput(input)
	if verr != nil {
		t.Fatalf("input rejected: %v", verr)
	}
	if len(normalized.Interests) != 2 {
		t.Fatalf("interests should be deduped, got %+v", normalized.Interests)
	}
	if normalized.Interests[0] != constants.InterestTech || normalized.Interests[1] != constants.InterestEducation {
		t.Fatalf("interests should keep order, got %+v", normalized.Interests)
	}
}

func TestValidateApplicantInputLengthBoundaries(t *testing.T) {
	input := validApplicantInput()
	input.FullName = strings.Repeat("名", 100)
	input.Bio = strings.Repeat("b", 300)
	input.Phone = strings.Repeat("1", 20)

	if _, verr := validateApplicantInput(input); verr != nil {
		t.Fatalf("boundary lengths should pass: %v", verr)
	}

	input.FullName = strings.Repeat("名", 101)
	_, verr := validateApplicantInput(input)
	if verr == nil || len(fieldMessages(verr, "full_name")) == 0 {
		t.Fatalf("over-length name should fail")
	}
}
