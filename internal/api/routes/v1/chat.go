package v1

import (
	"github.com/gofiber/fiber/v2"
)

// registerChat wires the chat session routes. One POST to
// /chat/sessions/:sessionId/messages runs a full turn: append the user
// message, retrieve context, generate and persist the reply.
func registerChat(r fiber.Router, deps Deps) {
	r.Post("/chat/sessions", deps.Chat.CreateSession)
	r.Get("/chat/sessions", deps.Chat.ListSessions)
	r.Get("/chat/sessions/search", deps.Chat.SearchSessions)
	r.Delete("/chat/sessions/empty", deps.Chat.DeleteEmptySessions)
	r.Get("/chat/sessions/:sessionId", deps.Chat.GetSession)
	r.Post("/chat/sessions/:sessionId/messages", deps.Chat.SubmitTurn)
}
