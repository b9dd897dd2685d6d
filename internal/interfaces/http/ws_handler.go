package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/orders-pro/pkg/logger"
)

// WSUpgrade deja pasar solo peticiones de upgrade websocket; el resto recibe 426.
func WSUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// WSHandler canal de conexiones en vivo: solo registra conexión y desconexión
// de clientes. No participa en la lógica de órdenes.
func WSHandler(log *logger.Logger) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		remote := conn.RemoteAddr().String()
		log.Info().Str("remote", remote).Msg("cliente conectado")
		defer log.Info().Str("remote", remote).Msg("cliente desconectado")
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
