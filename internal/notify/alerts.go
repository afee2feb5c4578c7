package notify

import (
	"context"
	"fmt"

	"github.com/swcleaning/ai-responder/pkg/logging"
)

// lowRatingThreshold marks feedback that warrants an operator alert.
const lowRatingThreshold = 2

// AlertService emails the operator when a generated response is rated
// poorly, so bad replies get reviewed before a habit forms.
type AlertService struct {
	sender  EmailSender
	toEmail string
	log     *logging.Logger
}

// NewAlertService creates the alert service. A nil sender or empty
// destination disables alerts; the returned service is still safe to call.
func NewAlertService(sender EmailSender, toEmail string, log *logging.Logger) *AlertService {
	if log == nil {
		log = logging.Default()
	}
	return &AlertService{sender: sender, toEmail: toEmail, log: log}
}

// NotifyLowRating sends an alert when the rating is at or below the
// threshold. Higher ratings are a no-op.
func (s *AlertService) NotifyLowRating(ctx context.Context, rating int, comments, responseContent string) error {
	if s == nil || rating > lowRatingThreshold {
		return nil
	}
	if s.sender == nil || s.toEmail == "" {
		s.log.Debug("low-rating alert skipped, no sender configured", "rating", rating)
		return nil
	}

	body := fmt.Sprintf(
		"A generated response was rated %d/5.\n\nComments:\n%s\n\nResponse content:\n%s\n",
		rating, orNone(comments), orNone(responseContent),
	)

	err := s.sender.Send(ctx, EmailMessage{
		To:      s.toEmail,
		Subject: fmt.Sprintf("Low response rating: %d/5", rating),
		Body:    body,
	})
	if err != nil {
		return fmt.Errorf("notify: low-rating alert: %w", err)
	}

	s.log.Info("low-rating alert sent", "rating", rating)
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
