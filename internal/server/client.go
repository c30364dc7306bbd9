package server

import (
	"net/http"
	"time"

	"nightshift-server/internal/engine"
	"nightshift-server/pkg/api"
	"nightshift-server/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	Game      *engine.GameService
	Conn      *websocket.Conn
	Send      chan api.ServerResponse
	SessionID string

	done chan struct{} // Закрывается, когда writePump вышел
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game: game,
		Conn: conn,
		Send: make(chan api.ServerResponse, 256),
		done: make(chan struct{}),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	var updates chan api.ServerResponse

	defer func() {
		if updates != nil {
			// Повторный вход мог уже заменить наш канал
			c.Game.Hub.UnregisterChan(c.SessionID, updates)
			c.Game.Release(c.SessionID)
		} else {
			close(c.Send)
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		if c.SessionID != "" {
			logger.Log.WithField("session", c.SessionID).Info("Client disconnected")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE (LOGIN)
	var loginCmd api.ClientCommand
	if err := c.Conn.ReadJSON(&loginCmd); err != nil {
		logger.Log.WithError(err).Warn("Handshake failed")
		return
	}

	// 2. ПОИСК ИЛИ СОЗДАНИЕ СЕССИИ
	// Сессия переживает обрыв связи: переподключение с тем же токеном продолжает ночь.
	inst := c.Game.Join(loginCmd.Token)
	c.SessionID = inst.ID

	logger.Log.WithFields(logrus.Fields{
		"session": c.SessionID,
		"seed":    inst.Seed,
	}).Info("Client logged in")

	// 3. ПОДПИСКА НА ОБНОВЛЕНИЯ
	updates = c.Game.Hub.Register(c.SessionID)

	// Запускаем пересылку обновлений из Hub в writePump
	go c.forward(updates)

	// Отправляем INIT (триггер первой отрисовки)
	if err := c.Game.ProcessCommand(api.ClientCommand{Action: "INIT", Token: c.SessionID}); err != nil {
		logger.Log.WithError(err).WithField("session", c.SessionID).Warn("INIT rejected")
	}

	// 4. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Error("WS Error")
			}
			break
		}
		cmd.Token = c.SessionID
		if err := c.Game.ProcessCommand(cmd); err != nil {
			logger.Log.WithError(err).WithField("session", c.SessionID).Warn("Command rejected")
			c.sendError(err)
		}
	}
}

// forward пересылает снимки из Hub в writePump.
// Если writePump уже умер, пересылка прекращается, а не висит на полном Send.
func (c *Client) forward(ch chan api.ServerResponse) {
	for msg := range ch {
		select {
		case c.Send <- msg:
		case <-c.done:
			return
		}
	}
	close(c.Send)
}

// sendError отвечает клиенту, не дожидаясь цикла сессии
func (c *Client) sendError(err error) {
	c.Game.Hub.SendTo(c.SessionID, api.ServerResponse{
		Type:      "ERROR",
		SessionID: c.SessionID,
		Logs: []api.LogEntry{{
			Text:      err.Error(),
			Type:      "ERROR",
			Timestamp: time.Now().UnixMilli(),
		}},
	})
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
