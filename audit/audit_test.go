package audit

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Shopify/sarama"
	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/jaina/polo-report-service/models"
	_ "github.com/jaina/polo-report-service/testing"
	. "github.com/smartystreets/goconvey/convey"
)

const schemaFile = "assets/partner-key-changed.avsc"

type MockProducer struct {
	sarama.SyncProducer
	sent    []*sarama.ProducerMessage
	sendErr error
}

func (m *MockProducer) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	if m.sendErr != nil {
		return 0, 0, m.sendErr
	}
	m.sent = append(m.sent, msg)
	return 0, int64(len(m.sent)), nil
}

func (m *MockProducer) Close() error {
	return nil
}

func loadSchema(t *testing.T) string {
	t.Helper()
	content, err := ioutil.ReadFile(schemaFile)
	if err != nil {
		t.Fatalf("reading %s: %s", schemaFile, err)
	}
	return string(content)
}

func startMockSchemaRegistry(t *testing.T, definition string) *httptest.Server {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.schemaregistry.v1+json")
		_ = json.NewEncoder(w).Encode(map[string]string{"schema": definition})
	})
	return httptest.NewServer(handler)
}

func testEvent() models.KeyChangeEvent {
	key := models.PartnerKeyDao{Chave: "ABC123", Nome: "Alfa Cursos", Polo: "Polo X", ExpiraEm: "2030-12-31"}
	return models.NewKeyChangeEvent(models.ActionCreated, key, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
}

func TestUnitKafkaPublisher(t *testing.T) {

	definition := loadSchema(t)

	Convey("Given a publisher over a mock producer", t, func() {
		mockProducer := &MockProducer{}
		publisher := &KafkaPublisher{
			Producer: &producer.Producer{SyncProducer: mockProducer},
			Schema:   &avro.Schema{Definition: definition},
			Topic:    "partner-key-changed",
		}

		Convey("An event is avro encoded and keyed by the access key", func() {
			So(publisher.Publish(testEvent()), ShouldBeNil)
			So(len(mockProducer.sent), ShouldEqual, 1)

			msg := mockProducer.sent[0]
			So(msg.Topic, ShouldEqual, "partner-key-changed")
			So(msg.Key, ShouldEqual, sarama.StringEncoder("ABC123"))

			value, err := msg.Value.Encode()
			So(err, ShouldBeNil)

			var decoded models.KeyChangeEvent
			So(publisher.Schema.Unmarshal(value, &decoded), ShouldBeNil)
			So(decoded, ShouldResemble, testEvent())
			So(decoded.ChangedAt, ShouldEqual, "2024-03-01T12:00:00Z")
		})

		Convey("A send failure is returned to the caller", func() {
			mockProducer.sendErr = errors.New("broker down")
			So(publisher.Publish(testEvent()), ShouldNotBeNil)
		})

		Convey("Close closes the producer", func() {
			So(publisher.Close(), ShouldBeNil)
		})
	})

	Convey("Creating a publisher fails when the schema cannot be fetched", t, func() {
		registry := httptest.NewServer(http.NotFoundHandler())
		defer registry.Close()

		_, err := NewKafkaPublisher([]string{"localhost:9092"}, registry.URL, "partner-key-changed")
		So(err, ShouldNotBeNil)
	})

	Convey("The no-op publisher accepts everything", t, func() {
		var publisher Publisher = NoopPublisher{}
		So(publisher.Publish(testEvent()), ShouldBeNil)
		So(publisher.Close(), ShouldBeNil)
	})
}
