package queue

import (
	"encoding/json"
	"log"
)

// Notifier is the contract the worker needs from the mail layer.
type Notifier interface {
	SendLeadConverted(toEmail, toName, leadName string) error
}

// Worker consumes lead events and emails the owner when one of their leads
// reaches Converted. Everything else is acked and dropped.
type Worker struct {
	RabbitMQ *RabbitMQ
	Mailer   Notifier
}

func NewWorker(mq *RabbitMQ, mailer Notifier) *Worker {
	return &Worker{RabbitMQ: mq, Mailer: mailer}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.RabbitMQ.Ch.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("worker: consume %s: %s", queueName, err)
	}

	log.Printf("worker: waiting on queue %q", queueName)

	for d := range msgs {
		var payload LeadEventPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("worker: malformed event, sending to DLQ: %s", err)
			d.Nack(false, false)
			continue
		}

		if err := w.process(payload); err != nil {
			log.Printf("worker: event %s for buyer %s failed: %s", payload.Event, payload.BuyerID, err)
			d.Nack(false, false)
			continue
		}

		d.Ack(false)
	}
}

func (w *Worker) process(payload LeadEventPayload) error {
	if payload.Event == EventLeadDeleted || payload.Status != "Converted" {
		return nil
	}
	if payload.OwnerEmail == "" {
		log.Printf("worker: buyer %s converted but owner has no email", payload.BuyerID)
		return nil
	}
	return w.Mailer.SendLeadConverted(payload.OwnerEmail, payload.OwnerName, payload.FullName)
}
