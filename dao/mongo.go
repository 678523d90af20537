package dao

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/keys"
	"github.com/jaina/polo-report-service/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	mongoClient, err := mongo.Connect(ctx, clientOptions)

	// the key store backs every login, so the service cannot continue without it
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = mongoClient.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	client = mongoClient
	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the Service interface using MongoDB as the backend driver.
// Records are keyed by the access key itself.
type MongoService struct {
	db         MongoDatabaseInterface
	Collection string
}

// GetPartnerKey reads a single access key record
func (m *MongoService) GetPartnerKey(chave string) (*models.PartnerKeyDao, error) {

	var key models.PartnerKeyDao

	collection := m.db.Collection(m.Collection)
	err := collection.FindOne(context.Background(), bson.M{"_id": chave}).Decode(&key)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		log.Error(err, log.Data{keys.Collection: m.Collection})
		return nil, err
	}

	return &key, nil
}

// PutPartnerKey upserts an access key record
func (m *MongoService) PutPartnerKey(key *models.PartnerKeyDao) error {

	collection := m.db.Collection(m.Collection)
	_, err := collection.ReplaceOne(context.Background(), bson.M{"_id": key.Chave}, key, options.Replace().SetUpsert(true))
	if err != nil {
		log.Error(err, log.Data{keys.Collection: m.Collection})
		return err
	}

	return nil
}

// DeletePartnerKey removes an access key record
func (m *MongoService) DeletePartnerKey(chave string) (bool, error) {

	collection := m.db.Collection(m.Collection)
	result, err := collection.DeleteOne(context.Background(), bson.M{"_id": chave})
	if err != nil {
		log.Error(err, log.Data{keys.Collection: m.Collection})
		return false, err
	}

	return result.DeletedCount > 0, nil
}

// ListPartnerKeys returns every access key record ordered by name
func (m *MongoService) ListPartnerKeys() ([]models.PartnerKeyDao, error) {

	ctx := context.Background()

	collection := m.db.Collection(m.Collection)
	cursor, err := collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nome", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		log.Error(err, log.Data{keys.Collection: m.Collection})
		return nil, err
	}

	partnerKeys := []models.PartnerKeyDao{}
	if err = cursor.All(ctx, &partnerKeys); err != nil {
		log.Error(err, log.Data{keys.Collection: m.Collection})
		return nil, err
	}

	return partnerKeys, nil
}

// Shutdown is a hook that can be used to clean up db resources
func (m *MongoService) Shutdown() {
	if client != nil {
		err := client.Disconnect(context.Background())
		if err != nil {
			log.Error(err)
			return
		}
		client = nil
		log.Info("disconnected from mongodb successfully")
	}
}
