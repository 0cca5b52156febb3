package notificationimpl

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/canterahq/cantera/internal/domain/notification"
	"github.com/canterahq/cantera/internal/platform/logging"
	"github.com/canterahq/cantera/internal/platform/resilience"
)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// errTransient marks SendGrid failures worth counting against the breaker.
var errTransient = errors.New("transient email delivery failure")

const defaultMailWorkers = 8

// SendGridService delivers mail through SendGrid. Sends are dispatched on
// a bounded worker pool and guarded by a circuit breaker so a SendGrid
// outage never stalls request handlers.
type SendGridService struct {
	key      string
	from     *sgmail.Email
	breaker  *resilience.Breaker
	pool     *ants.Pool
	logger   *logging.Logger
	sendSync bool
}

type SendGridConfig struct {
	APIKey    string
	FromName  string
	FromEmail string
	Workers   int
}

func NewSendGridService(cfg SendGridConfig, breaker *resilience.Breaker, logger *logging.Logger) (*SendGridService, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultMailWorkers
	}
	pool, err := ants.NewPool(workers, ants.WithNonblocking(false))
	if err != nil {
		return nil, fmt.Errorf("create mail worker pool: %w", err)
	}

	return &SendGridService{
		key:     cfg.APIKey,
		from:    sgmail.NewEmail(cfg.FromName, cfg.FromEmail),
		breaker: breaker,
		pool:    pool,
		logger:  logger,
	}, nil
}

// Send enqueues the message; delivery happens on the pool. The breaker is
// consulted up front so callers fail fast while SendGrid is down.
func (s *SendGridService) Send(ctx context.Context, msg notification.Message) error {
	if err := s.breaker.Allow(); err != nil {
		return fmt.Errorf("email delivery unavailable: %w", err)
	}

	if s.sendSync {
		return s.deliver(ctx, msg)
	}

	if err := s.pool.Submit(func() {
		if err := s.deliver(context.Background(), msg); err != nil {
			s.logger.Error("deliver email", "to", msg.To, "error", err)
		}
	}); err != nil {
		return fmt.Errorf("enqueue email: %w", err)
	}

	return nil
}

func (s *SendGridService) Close() {
	s.pool.Release()
}

func (s *SendGridService) deliver(_ context.Context, msg notification.Message) error {
	req := sendgrid.GetRequest(s.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.build(msg))

	res, err := sendgrid.API(req)
	if err != nil {
		s.breaker.RecordFailure()
		return errors.Wrap(errTransient, err.Error())
	}
	if res.StatusCode >= http.StatusInternalServerError {
		s.breaker.RecordFailure()
		return errors.Wrapf(errTransient, "sendgrid status %d", res.StatusCode)
	}
	if res.StatusCode >= http.StatusBadRequest {
		// 4xx is a permanent rejection, not a SendGrid outage.
		s.breaker.RecordSuccess()
		return errors.Newf("sendgrid rejected message: status %d", res.StatusCode)
	}

	s.breaker.RecordSuccess()
	return nil
}

func (s *SendGridService) build(msg notification.Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail("", msg.To))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Body))
	return m
}

// IsTransient reports whether a delivery error was an outage rather than
// a permanent rejection.
func IsTransient(err error) bool {
	return errors.Is(err, errTransient)
}

var _ notification.Service = (*SendGridService)(nil)
