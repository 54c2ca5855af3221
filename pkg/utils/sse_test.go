package utils

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendSSEChunkFormat(t *testing.T) {
	resp := httptest.NewRecorder()

	SendSSEChunk(resp, resp, map[string]string{"event": "start", "token": "abc"})

	body := resp.Body.String()
	if !strings.HasPrefix(body, "data: ") {
		t.Fatalf("chunk missing data prefix: %q", body)
	}
	if !strings.HasSuffix(body, "\n\n") {
		t.Fatalf("chunk missing terminator: %q", body)
	}
	if !resp.Flushed {
		t.Fatal("chunk was not flushed")
	}

	var payload map[string]string
	raw := strings.TrimSuffix(strings.TrimPrefix(body, "data: "), "\n\n")
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("chunk payload is not JSON: %v", err)
	}
	if payload["token"] != "abc" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestSetupSSEHeaders(t *testing.T) {
	resp := httptest.NewRecorder()

	SetupSSEHeaders(resp)

	if got := resp.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := resp.Header().Get("Cache-Control"); got != "no-cache" {
		t.Fatalf("unexpected cache control %q", got)
	}
}
