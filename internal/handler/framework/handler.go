package framework

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mwhitfield/udl-assistant/internal/model/udl"
	"github.com/mwhitfield/udl-assistant/pkg/utils"
)

// Handler UDL框架知识的HTTP处理器
type Handler struct {
	framework udl.Framework
}

// New 创建framework处理器
func New(framework udl.Framework) *Handler {
	return &Handler{
		framework: framework,
	}
}

// RegisterRoutes 注册framework相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/framework", h.handleGetFramework)
}

// handleGetFramework 返回静态的UDL框架内容
func (h *Handler) handleGetFramework(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.framework)
}
