// Package notificationimpl holds the delivery backends for outbound mail.
package notificationimpl

import (
	"context"

	"github.com/canterahq/cantera/internal/domain/notification"
	"github.com/canterahq/cantera/internal/platform/logging"
)

// ConsoleService logs messages instead of delivering them. Used in local
// development and as the fallback when no SendGrid key is configured.
type ConsoleService struct {
	logger *logging.Logger
}

func NewConsoleService(logger *logging.Logger) *ConsoleService {
	return &ConsoleService{logger: logger}
}

func (s *ConsoleService) Send(ctx context.Context, msg notification.Message) error {
	s.logger.InfoContext(ctx, "email (console)",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}

var _ notification.Service = (*ConsoleService)(nil)
