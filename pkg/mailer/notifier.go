package mailer

import (
	"context"

	"github.com/oksasatya/mentor-hub/pkg/mailer/templates"
)

// JSONPublisher is satisfied by helpers.RabbitPublisher.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// QueueNotifier enqueues notification emails for the email worker.
type QueueNotifier struct {
	Pub          JSONPublisher
	CompanyName  string
	DashboardURL string
}

func NewQueueNotifier(pub JSONPublisher, companyName, dashboardURL string) *QueueNotifier {
	return &QueueNotifier{Pub: pub, CompanyName: companyName, DashboardURL: dashboardURL}
}

func (n *QueueNotifier) SendWelcome(ctx context.Context, to, name string, isMentor bool) error {
	return n.Pub.PublishJSON(ctx, EmailJob{
		To:       to,
		Template: templates.Welcome,
		Data: map[string]any{
			"Name":         name,
			"IsMentor":     isMentor,
			"CompanyName":  n.CompanyName,
			"DashboardURL": n.DashboardURL,
		},
	})
}
