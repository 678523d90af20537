package audit

import (
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/keys"
	"github.com/jaina/polo-report-service/models"
)

// SchemaName is the schema registry subject describing KeyChangeEvent
const SchemaName = "partner-key-changed"

// Publisher announces changes made to the access key directory
type Publisher interface {
	Publish(event models.KeyChangeEvent) error
	Close() error
}

// KafkaPublisher publishes avro encoded key change events to a Kafka topic
type KafkaPublisher struct {
	Producer *producer.Producer
	Schema   *avro.Schema
	Topic    string
}

// NewKafkaPublisher fetches the event schema from the registry and connects a producer
func NewKafkaPublisher(brokerAddr []string, schemaRegistryURL, topic string) (*KafkaPublisher, error) {

	definition, err := schema.Get(schemaRegistryURL, SchemaName)
	if err != nil {
		log.Error(fmt.Errorf("error receiving %s schema: %s", SchemaName, err))
		return nil, err
	}
	log.Info("Successfully received schema", log.Data{keys.SchemaName: SchemaName})

	p, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: brokerAddr})
	if err != nil {
		log.Error(fmt.Errorf("error initialising producer: %s", err), nil)
		return nil, err
	}

	return &KafkaPublisher{
		Producer: p,
		Schema:   &avro.Schema{Definition: definition},
		Topic:    topic,
	}, nil
}

// Publish encodes the event and sends it keyed by the access key, so every change to one key
// lands on the same partition
func (k *KafkaPublisher) Publish(event models.KeyChangeEvent) error {

	value, err := k.Schema.Marshal(event)
	if err != nil {
		log.Error(err, log.Data{keys.Topic: k.Topic, keys.Action: event.Action})
		return err
	}

	message := &sarama.ProducerMessage{
		Topic: k.Topic,
		Key:   sarama.StringEncoder(event.Chave),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := k.Producer.Send(message)
	if err != nil {
		log.Error(fmt.Errorf("error sending key change event: %s", err), log.Data{keys.Topic: k.Topic})
		return err
	}

	log.Trace("key change event published", log.Data{
		keys.Topic:     k.Topic,
		keys.Action:    event.Action,
		keys.Partition: partition,
		keys.Offset:    offset,
	})
	return nil
}

// Close closes the underlying producer
func (k *KafkaPublisher) Close() error {
	log.Info("Closing producer", log.Data{keys.Topic: k.Topic})
	if err := k.Producer.Close(); err != nil {
		log.Error(fmt.Errorf("error closing producer: %s", err))
		return err
	}
	log.Info("Producer successfully closed", log.Data{keys.Topic: k.Topic})
	return nil
}

// NoopPublisher discards every event. It is used when no broker is configured.
type NoopPublisher struct{}

// Publish discards the event
func (NoopPublisher) Publish(event models.KeyChangeEvent) error {
	log.Debug("audit disabled, key change event dropped", log.Data{keys.Action: event.Action})
	return nil
}

// Close does nothing
func (NoopPublisher) Close() error {
	return nil
}
