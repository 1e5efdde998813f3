package mailer

import (
	"context"
	"errors"
	"time"

	"github.com/oksasatya/mentor-hub/pkg/mailer/templates"
)

// ErrBadJob marks a job that can never be delivered and must not be requeued.
var ErrBadJob = errors.New("bad email job")

// Deliver renders job if it names a template and hands it to s.
// Errors wrapping ErrBadJob are permanent; anything else is worth a retry.
func Deliver(ctx context.Context, s Sender, job EmailJob) error {
	if job.To == "" {
		return errors.Join(ErrBadJob, errors.New("missing recipient"))
	}
	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		var err error
		subject, text, html, err = templates.Render(job.Template, job.Data)
		if err != nil {
			return errors.Join(ErrBadJob, err)
		}
	}
	if subject == "" || (text == "" && html == "") {
		return errors.Join(ErrBadJob, errors.New("empty message"))
	}

	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	return s.Send(c, job.To, subject, text, html)
}
