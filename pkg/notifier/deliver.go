package notifier

import (
	"context"

	"github.com/sirupsen/logrus"

	tpl "github.com/staybook/backend/pkg/notifier/templates"
)

// Deliver processes one notification job. SMS delivery is mocked: the message
// is logged, never sent. Email jobs render their template and go out via
// Mailgun, or are logged when mg is nil.
func Deliver(ctx context.Context, logger *logrus.Logger, mg *Mailgun, job Job) error {
	switch job.Channel {
	case ChannelSMS:
		logger.WithFields(logrus.Fields{"to": job.To, "body": job.Text}).Info("sms delivered (mock)")
		return nil
	case ChannelEmail:
		subject := job.Subject
		text := job.Text
		html := ""
		if job.Template != "" {
			var err error
			html, text, err = tpl.Render(job.Template, job.Data)
			if err != nil {
				return err
			}
			if subject == "" {
				subject = tpl.Subject(job.Template, job.Data)
			}
		}
		if mg == nil {
			logger.WithFields(logrus.Fields{"to": job.To, "subject": subject}).Info("email logged (mailgun not configured)")
			return nil
		}
		return mg.Send(ctx, job.To, subject, text, html)
	default:
		logger.WithField("channel", string(job.Channel)).Warn("unknown notification channel, dropping")
		return nil
	}
}
