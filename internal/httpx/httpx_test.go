package httpx

import (
	"net/url"
	"strings"
	"testing"
)

func TestParseLimitOffset(t *testing.T) {
	limit, offset, err := ParseLimitOffset(url.Values{}, 50, 200)
	if err != nil || limit != 50 || offset != 0 {
		t.Fatalf("defaults: limit=%d offset=%d err=%v", limit, offset, err)
	}

	limit, offset, err = ParseLimitOffset(url.Values{"limit": {"500"}, "offset": {"20"}}, 50, 200)
	if err != nil || limit != 200 || offset != 20 {
		t.Fatalf("capped: limit=%d offset=%d err=%v, want limit capped to 200", limit, offset, err)
	}

	if _, _, err := ParseLimitOffset(url.Values{"limit": {"0"}}, 50, 200); err == nil {
		t.Fatal("limit 0 must be rejected")
	}
	if _, _, err := ParseLimitOffset(url.Values{"offset": {"-1"}}, 50, 200); err == nil {
		t.Fatal("negative offset must be rejected")
	}
	if _, _, err := ParseLimitOffset(url.Values{"limit": {"abc"}}, 50, 200); err == nil {
		t.Fatal("non-numeric limit must be rejected")
	}
}

func TestDecodeJSONStrictness(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	if err := DecodeJSON(strings.NewReader(`{"name":"a","extra":true}`), &dst); err == nil {
		t.Fatal("unknown field must be rejected")
	}
	if err := DecodeJSON(strings.NewReader(`{"name":"a"}{"name":"b"}`), &dst); err == nil {
		t.Fatal("trailing content must be rejected")
	}
	if err := DecodeJSON(strings.NewReader(`{"name":"a"}`), &dst); err != nil || dst.Name != "a" {
		t.Fatalf("valid body: err=%v name=%q", err, dst.Name)
	}
}
