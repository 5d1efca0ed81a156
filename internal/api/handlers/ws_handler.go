package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/lovecontract/internal/api/middleware"
	"github.com/linskybing/lovecontract/internal/application"
	"github.com/linskybing/lovecontract/internal/realtime"
	"github.com/linskybing/lovecontract/pkg/response"
	"github.com/linskybing/lovecontract/pkg/utils"
	"github.com/rs/zerolog"
)

type WatchHandler struct {
	svc      *application.ContractService
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

func NewWatchHandler(svc *application.ContractService, hub *realtime.Hub, allowedOrigins []string) *WatchHandler {
	return &WatchHandler{
		svc: svc,
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || middleware.OriginAllowed(allowedOrigins, origin)
			},
		},
	}
}

// WatchContract godoc
// @Summary Stream signature events of a contract
// @Description Upgrades to a websocket that receives signed and completed events
// @Tags contracts
// @Param id path string true "Contract ID"
// @Success 101
// @Failure 400 {object} response.ErrorResponse "Invalid contract id"
// @Failure 404 {object} response.ErrorResponse "Contract not found"
// @Router /ws/contracts/{id} [get]
func (h *WatchHandler) WatchContract(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msgInvalidContractID})
		return
	}

	if _, err := h.svc.LoadContractView(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrContractNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: msgContractNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: msgLoadFailed})
		return
	}

	sub := h.hub.Subscribe(id)
	if sub == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "server is shutting down"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.Unsubscribe(sub)
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.hub.Serve(c.Request.Context(), conn, sub)
}
