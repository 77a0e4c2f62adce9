package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ชื่อ database/collection ตาม deployment เดิม
const (
	ClassesDB             = "classesDB"
	ClassesCollection     = "classesCollections"
	UsersDB               = "usersDB"
	UsersCollection       = "usersCollections"
	InstructorDB          = "instructorDB"
	InstructorCollection  = "instructorCollections"
	MyClassDB             = "myClassDB"
	MyClassCollection     = "myClassCollections"
	PaymentDB             = "paymentDB"
	PaymentCollection     = "paymentCollections"
	defaultConnectTimeout = 15 * time.Second
)

// Mongo ถือ client ตัวเดียวที่ใช้ร่วมกันทุก request
type Mongo struct {
	Client *mongo.Client

	Classes     *mongo.Collection
	Users       *mongo.Collection
	Instructors *mongo.Collection
	MyClasses   *mongo.Collection
	Payments    *mongo.Collection
}

// ConnectMongoDB เชื่อมต่อกับ MongoDB แล้ว ping primary
func ConnectMongoDB(ctx context.Context, uri string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	// ตรวจสอบการเชื่อมต่อ
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.Println("✅ MongoDB connected successfully")

	return &Mongo{
		Client:      client,
		Classes:     client.Database(ClassesDB).Collection(ClassesCollection),
		Users:       client.Database(UsersDB).Collection(UsersCollection),
		Instructors: client.Database(InstructorDB).Collection(InstructorCollection),
		MyClasses:   client.Database(MyClassDB).Collection(MyClassCollection),
		Payments:    client.Database(PaymentDB).Collection(PaymentCollection),
	}, nil
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}
