package mailer

import (
	"fmt"
	"medibook-service/internal/app/drivers/mailer"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"net/smtp"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker drains the mailer queue and delivers each payload over SMTP.
type Worker struct {
	channel *amqp091.Channel
	client  *mailer.SMTPClient
	queue   string
	log     *zap.Logger
	done    chan struct{}
}

func NewWorker(rabbitMQConnection *amqp091.Connection, client *mailer.SMTPClient, queue string, log *zap.Logger) (*Worker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	if err := channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	return &Worker{
		channel: channel,
		client:  client,
		queue:   queue,
		log:     log,
		done:    make(chan struct{}),
	}, nil
}

// Start consumes the queue until Stop is called. Failed deliveries are
// rejected without requeue; the payload is logged so nothing is lost
// silently.
func (w *Worker) Start() error {
	deliveries, err := w.channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-w.done:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handle(delivery)
			}
		}
	}()

	return nil
}

func (w *Worker) Stop() {
	close(w.done)
	w.channel.Close()
}

func (w *Worker) handle(delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.log.Error("mailer worker received malformed payload",
			zap.Error(err),
			zap.String(constvars.LoggingQueueKey, w.queue),
		)
		delivery.Reject(false)
		return
	}

	if err := w.deliver(&payload); err != nil {
		w.log.Error("mailer worker failed to deliver email",
			zap.Error(err),
			zap.String(constvars.LoggingQueueKey, w.queue),
			zap.Strings(constvars.LoggingEmailToKey, payload.To),
		)
		delivery.Reject(false)
		return
	}

	delivery.Ack(false)
}

func (w *Worker) deliver(payload *requests.EmailPayload) error {
	from := payload.From
	if from == "" {
		from = w.client.EmailSender
	}

	format := constvars.EmailSendBasicEmailSubjectFormat
	if payload.HTML {
		format = constvars.EmailSendHTMLSubjectFormat
	}

	addr := fmt.Sprintf("%s:%d", w.client.Host, w.client.Port)
	for _, to := range payload.To {
		msg := []byte(fmt.Sprintf(format, to, payload.Subject, payload.Body))
		if err := smtp.SendMail(addr, w.client.Auth, from, []string{to}, msg); err != nil {
			return exceptions.ErrSMTPSendEmail(err, w.client.Host)
		}
	}
	return nil
}
