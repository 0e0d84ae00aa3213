package payments

import (
	"encoding/json"
	"testing"
)

func decodeDoc(t *testing.T, raw string) map[string]any {
	t.Helper()
	doc := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return doc
}

func TestFirstString(t *testing.T) {
	doc := decodeDoc(t, `{
		"pix": {"qrcode": "from-qrcode", "payload": "from-payload"},
		"qrcodeText": "top-level"
	}`)

	// Priority order wins, not document order.
	if got := firstString(doc, "pix.qrcodeText", "pix.qrCodeText", "pix.qrcode", "pix.payload"); got != "from-qrcode" {
		t.Fatalf("expected pix.qrcode alias, got %q", got)
	}
	if got := firstString(doc, "pix.emv", "qrcodeText"); got != "top-level" {
		t.Fatalf("expected top-level fallback, got %q", got)
	}
	if got := firstString(doc, "missing", "also.missing"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestStringAt(t *testing.T) {
	doc := decodeDoc(t, `{"a": {"b": "  padded  "}, "n": 5, "deep": {"x": {"y": "z"}}}`)
	if got := stringAt(doc, "a.b"); got != "padded" {
		t.Fatalf("expected trimmed string, got %q", got)
	}
	if got := stringAt(doc, "deep.x.y"); got != "z" {
		t.Fatalf("expected nested string, got %q", got)
	}
	if got := stringAt(doc, "n"); got != "" {
		t.Fatalf("non-string must yield empty, got %q", got)
	}
	if got := stringAt(doc, "a.b.c"); got != "" {
		t.Fatalf("walking through a leaf must yield empty, got %q", got)
	}
}

func TestIDAt(t *testing.T) {
	doc := decodeDoc(t, `{"id": 12345, "data": {"id": "abc-1"}}`)
	if got := idAt(doc, "id"); got != "12345" {
		t.Fatalf("numeric id not stringified, got %q", got)
	}
	if got := idAt(doc, "data.id"); got != "abc-1" {
		t.Fatalf("string id not returned, got %q", got)
	}
	if got := idAt(doc, "missing", "data.id"); got != "abc-1" {
		t.Fatalf("cascade fallback failed, got %q", got)
	}
}

func TestInt64At(t *testing.T) {
	doc := decodeDoc(t, `{"amount": 1990, "data": {"amount": 500}}`)
	if got := int64At(doc, "amount"); got != 1990 {
		t.Fatalf("expected 1990, got %d", got)
	}
	if got := int64At(doc, "data.amount"); got != 500 {
		t.Fatalf("expected 500, got %d", got)
	}
	if got := int64At(doc, "missing"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
