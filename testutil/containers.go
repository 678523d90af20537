//coverage:ignore file

package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupMongoContainer starts a disposable MongoDB and returns its connection uri
func SetupMongoContainer() (testcontainers.Container, string, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:6.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(time.Second * 30),
	}

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to start mongo container: %w", err)
	}

	endpoint, err := mongoC.Endpoint(ctx, "")
	if err != nil {
		return nil, "", err
	}

	uri := fmt.Sprintf("mongodb://%s", endpoint)
	return mongoC, uri, nil
}

// SetupKafkaContainer starts a single node Kafka and returns its bootstrap address
func SetupKafkaContainer() (*kafka.KafkaContainer, string, error) {
	ctx := context.Background()

	kafkaC, err := kafka.Run(ctx, "confluentinc/cp-kafka:7.5.0", kafka.WithClusterID("test-cluster"))
	if err != nil {
		return nil, "", fmt.Errorf("failed to start kafka container: %w", err)
	}

	brokers, err := kafkaC.Brokers(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(brokers) == 0 {
		return nil, "", fmt.Errorf("kafka container reported no brokers")
	}

	return kafkaC, brokers[0], nil
}
