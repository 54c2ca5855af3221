package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/mwhitfield/udl-assistant/internal/handler/chat"
	frameworkHandler "github.com/mwhitfield/udl-assistant/internal/handler/framework"
	"github.com/mwhitfield/udl-assistant/internal/handler/stream"
	middlewarePkg "github.com/mwhitfield/udl-assistant/internal/middleware"
	"github.com/mwhitfield/udl-assistant/internal/model/udl"
	aiService "github.com/mwhitfield/udl-assistant/internal/service/ai"
	chatService "github.com/mwhitfield/udl-assistant/internal/service/chat"
	"github.com/mwhitfield/udl-assistant/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(framework udl.Framework, chatSvc *chatService.Service, aiSvc *aiService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatH := chatHandler.New(chatSvc, aiSvc)
	frameworkH := frameworkHandler.New(framework)

	var streamH *stream.Handler
	if aiSvc != nil && aiSvc.StreamingEnabled() {
		streamH = stream.New(aiSvc, chatSvc)
	}

	r.Route("/api", func(api chi.Router) {
		chatH.RegisterRoutes(api)
		frameworkH.RegisterRoutes(api)

		api.Get("/stream/{token}", func(w http.ResponseWriter, r *http.Request) {
			token := chi.URLParam(r, "token")
			userMessage := r.URL.Query().Get("message")

			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, utils.KindInvalidInput, "message query parameter is required")
				return
			}
			if streamH == nil {
				utils.RespondError(w, http.StatusServiceUnavailable, utils.KindModelUnavailable, "streaming unavailable")
				return
			}

			if err := streamH.HandleStreamRequest(r.Context(), w, token, userMessage); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})
	})

	return r
}
