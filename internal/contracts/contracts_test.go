package contracts

import (
	"strings"
	"testing"
)

func TestDecodeFavoriteToggleValid(t *testing.T) {
	body := strings.NewReader(`{"constellationId": "aries", "action": "add"}`)

	req, fieldErrs := DecodeFavoriteToggle(body)
	if fieldErrs != nil {
		t.Fatalf("expected valid body, got errors: %v", fieldErrs)
	}
	if req.ConstellationID != "aries" || req.Action != ActionAdd {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestDecodeFavoriteToggleRejectsBadAction(t *testing.T) {
	body := strings.NewReader(`{"constellationId": "aries", "action": "toggle"}`)

	req, fieldErrs := DecodeFavoriteToggle(body)
	if req != nil {
		t.Fatalf("expected nil request, got %+v", req)
	}
	if len(fieldErrs) == 0 {
		t.Fatalf("expected field errors for bad action")
	}
	found := false
	for _, fe := range fieldErrs {
		if fe.Field == "action" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error naming the action field, got %v", fieldErrs)
	}
}

func TestDecodeFavoriteToggleRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing action", `{"constellationId": "aries"}`},
		{"missing constellationId", `{"action": "add"}`},
		{"empty object", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, fieldErrs := DecodeFavoriteToggle(strings.NewReader(tc.body))
			if req != nil || len(fieldErrs) == 0 {
				t.Fatalf("expected rejection, got req=%+v errs=%v", req, fieldErrs)
			}
		})
	}
}

func TestDecodeFavoriteToggleRejectsWrongTypes(t *testing.T) {
	body := strings.NewReader(`{"constellationId": 42, "action": "add"}`)

	req, fieldErrs := DecodeFavoriteToggle(body)
	if req != nil || len(fieldErrs) == 0 {
		t.Fatalf("expected type rejection, got req=%+v errs=%v", req, fieldErrs)
	}
}

func TestDecodeFavoriteToggleRejectsMalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"constellationId": "aries",`)

	req, fieldErrs := DecodeFavoriteToggle(body)
	if req != nil {
		t.Fatalf("expected nil request, got %+v", req)
	}
	if len(fieldErrs) != 1 || fieldErrs[0].Field != "body" {
		t.Fatalf("expected a single body-level error, got %v", fieldErrs)
	}
}

// Unknown fields pass through; the schema constrains only the fields it
// names, matching the reference validation.
func TestDecodeFavoriteToggleAllowsUnknownFields(t *testing.T) {
	body := strings.NewReader(`{"constellationId": "aries", "action": "remove", "extra": true}`)

	req, fieldErrs := DecodeFavoriteToggle(body)
	if fieldErrs != nil {
		t.Fatalf("expected unknown fields to be allowed, got %v", fieldErrs)
	}
	if req.Action != ActionRemove {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestDecodeShareValid(t *testing.T) {
	body := strings.NewReader(`{"constellationId": "pisces"}`)

	req, fieldErrs := DecodeShare(body)
	if fieldErrs != nil {
		t.Fatalf("expected valid body, got errors: %v", fieldErrs)
	}
	if req.ConstellationID != "pisces" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestDecodeShareRejectsMissingID(t *testing.T) {
	req, fieldErrs := DecodeShare(strings.NewReader(`{}`))
	if req != nil || len(fieldErrs) == 0 {
		t.Fatalf("expected rejection, got req=%+v errs=%v", req, fieldErrs)
	}
}

func TestDecodeShareRejectsEmptyID(t *testing.T) {
	req, fieldErrs := DecodeShare(strings.NewReader(`{"constellationId": ""}`))
	if req != nil || len(fieldErrs) == 0 {
		t.Fatalf("expected rejection of empty id, got req=%+v errs=%v", req, fieldErrs)
	}
}
