package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// 错误类别，响应体中机器可读的 kind 字段。
const (
	KindSessionNotFound  = "session_not_found"
	KindInvalidInput     = "invalid_input"
	KindModelUnavailable = "model_unavailable"
	KindInternal         = "internal_error"
)

// RespondJSON 发送JSON响应
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondError 发送错误响应，kind 供客户端程序判别，message 供用户阅读。
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	RespondJSON(w, status, map[string]string{"error": message, "kind": kind})
}
