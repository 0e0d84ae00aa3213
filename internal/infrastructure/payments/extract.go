package payments

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Providers disagree on where the PIX payload lives in their responses
// (pix.qrcodeText vs pix.qrCode vs a top-level qrcode, and so on). The
// helpers here walk dotted paths over the decoded JSON so each adapter can
// declare its alias cascade in priority order; the first populated alias wins.

// firstString returns the first non-empty string found at the given paths.
func firstString(doc map[string]any, paths ...string) string {
	for _, path := range paths {
		if s := stringAt(doc, path); s != "" {
			return s
		}
	}
	return ""
}

// stringAt returns the string value at a dotted path, or "" when the path is
// missing or not a string.
func stringAt(doc map[string]any, path string) string {
	v := lookupPath(doc, path)
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// idAt stringifies an identifier that may arrive as a string or a number.
func idAt(doc map[string]any, paths ...string) string {
	for _, path := range paths {
		switch v := lookupPath(doc, path).(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		case json.Number:
			return v.String()
		}
	}
	return ""
}

// int64At reads a numeric value at a dotted path, zero when absent.
func int64At(doc map[string]any, path string) int64 {
	switch v := lookupPath(doc, path).(type) {
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	}
	return 0
}

func lookupPath(doc map[string]any, path string) any {
	var current any = doc
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[part]
		if !ok {
			return nil
		}
	}
	return current
}
