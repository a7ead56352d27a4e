package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"umrah-backend/internal/utils"
)

// Nama event lifecycle paket yang dipublish ke antrean.
const (
	EventPackageCreated = "package.created"
	EventPackageUpdated = "package.updated"
	EventPackageDeleted = "package.deleted"
)

const packageQueue = "package.events"

// PackageEvent adalah payload event lifecycle custom package.
type PackageEvent struct {
	Event          string    `json:"event"`
	PackageID      int64     `json:"package_id"`
	OrganizationID int64     `json:"organization"`
	QueryNumber    string    `json:"query_number,omitempty"`
	GrandTotal     float64   `json:"grand_total"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher mengirim event paket ke RabbitMQ. URL kosong berarti messaging
// dimatikan: Publish jadi no-op supaya deployment tanpa broker tetap jalan.
type Publisher struct {
	URL       string
	RequestID string
}

func NewPublisher(url string) *Publisher {
	return &Publisher{URL: url}
}

// Publish mengirim satu event, koneksi dibuka per panggilan. Event bersifat
// best-effort: kegagalan broker tidak boleh menggagalkan request user, jadi
// caller cukup me-log error yang dikembalikan.
func (p *Publisher) Publish(ctx context.Context, ev PackageEvent) error {
	if p == nil || p.URL == "" {
		return nil
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(packageQueue, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", packageQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return err
	}

	utils.LogEvent(p.RequestID, "queue", "publish", ev.Event)
	return nil
}
