package console

import (
	"context"

	"go.uber.org/zap"

	"console-playground/internal/service"
)

const (
	ChatBanner = "Chatbot: Hello! Say 'hello', 'how are you', 'bye', or 'quit' to exit."
	ChatPrompt = "You: "
)

// RunChat runs the chatbot until the quit sentinel is printed. It returns
// nil after the sentinel, otherwise the error that ended the session.
func RunChat(ctx context.Context, c *Console, chat service.ChatService, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	c.Println(ChatBanner)

	for {
		input, err := c.ReadLine(ctx, ChatPrompt)
		if err != nil {
			logger.Debug("Chat session ended", zap.Error(err))
			return err
		}

		reply := chat.Respond(input)
		c.Println("Chatbot: " + reply.Text)

		if reply.Quit() {
			logger.Debug("Chat session quit")
			return c.Err()
		}
	}
}
