// Package mongodb provides the MongoDB-backed implementation of the
// storage.Storage interface — the document store used in deployments.
//
// Records live in two collections, "students" and "signups". Identifiers
// are driver-assigned ObjectIDs, exposed to the rest of the application
// as hex strings. Username uniqueness is enforced with a unique index
// created at startup, so concurrent signups race safely inside the
// database rather than in application code.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/config"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/types"
)

const (
	studentsCollection = "students"
	usersCollection    = "signups"
)

// studentDoc is the persisted shape of a student record. The capitalised
// bson keys mirror the wire format so documents written by earlier
// deployments stay readable.
type studentDoc struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	Names      string        `bson:"Names"`
	Class      string        `bson:"Class"`
	Field      string        `bson:"Field"`
	PositionId string        `bson:"PositionId"`
}

type userDoc struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Username     string        `bson:"username"`
	PasswordHash string        `bson:"password"`
	PositionId   string        `bson:"positionId"`
}

// MongoDB is the concrete document-store implementation of
// storage.Storage. A single *mongo.Client is safe for concurrent use.
type MongoDB struct {
	client   *mongo.Client
	students *mongo.Collection
	users    *mongo.Collection
}

// New dials the MongoDB deployment named in the config, pings it to fail
// fast on connectivity problems, and ensures the unique username index
// exists. The caller owns the returned store and must Close it.
func New(ctx context.Context, cfg *config.Config) (*MongoDB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongodb.New: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb.New: ping: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)
	users := db.Collection(usersCollection)

	// Idempotent: creating an index that already exists is a no-op.
	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("mongodb.New: username index: %w", err)
	}

	return &MongoDB{
		client:   client,
		students: db.Collection(studentsCollection),
		users:    users,
	}, nil
}

// Close disconnects the underlying client. Called during graceful shutdown.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// objectID parses a client-supplied identifier, mapping parse failures to
// storage.ErrInvalidID so handlers answer 400 rather than 500.
func objectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
	}
	return oid, nil
}

func (m *MongoDB) CreateStudent(ctx context.Context, student types.Student) (types.Student, error) {
	doc := studentDoc{
		Names:      student.Names,
		Class:      student.Class,
		Field:      student.Field,
		PositionId: student.PositionId,
	}

	result, err := m.students.InsertOne(ctx, doc)
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: insert: %w", err)
	}

	student.ID = result.InsertedID.(bson.ObjectID).Hex()
	return student, nil
}

func (m *MongoDB) GetStudents(ctx context.Context) ([]types.Student, error) {
	cursor, err := m.students.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("GetStudents: find: %w", err)
	}
	defer cursor.Close(ctx)

	students := make([]types.Student, 0)
	for cursor.Next(ctx) {
		var doc studentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("GetStudents: decode: %w", err)
		}
		students = append(students, doc.student())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: cursor: %w", err)
	}

	return students, nil
}

func (m *MongoDB) GetStudentByID(ctx context.Context, id string) (types.Student, error) {
	oid, err := objectID(id)
	if err != nil {
		return types.Student{}, err
	}

	var doc studentDoc
	err = m.students.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return types.Student{}, fmt.Errorf("no student found with id %s: %w", id, storage.ErrNotFound)
		}
		return types.Student{}, fmt.Errorf("GetStudentByID: %w", err)
	}

	return doc.student(), nil
}

func (m *MongoDB) UpdateStudentByID(ctx context.Context, id string, student types.Student) (types.Student, error) {
	oid, err := objectID(id)
	if err != nil {
		return types.Student{}, err
	}

	doc := studentDoc{
		ID:         oid,
		Names:      student.Names,
		Class:      student.Class,
		Field:      student.Field,
		PositionId: student.PositionId,
	}

	result, err := m.students.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, doc)
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: replace: %w", err)
	}
	if result.MatchedCount == 0 {
		return types.Student{}, fmt.Errorf("no student found with id %s: %w", id, storage.ErrNotFound)
	}

	return doc.student(), nil
}

func (m *MongoDB) DeleteStudentByID(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := m.students.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: delete: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no student found with id %s: %w", id, storage.ErrNotFound)
	}

	return nil
}

func (m *MongoDB) CreateUser(ctx context.Context, user types.User) (types.User, error) {
	doc := userDoc{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		PositionId:   user.PositionId,
	}

	result, err := m.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return types.User{}, fmt.Errorf("username %q: %w", user.Username, storage.ErrUsernameTaken)
		}
		return types.User{}, fmt.Errorf("CreateUser: insert: %w", err)
	}

	user.ID = result.InsertedID.(bson.ObjectID).Hex()
	return user, nil
}

func (m *MongoDB) GetUsers(ctx context.Context) ([]types.User, error) {
	cursor, err := m.users.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("GetUsers: find: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]types.User, 0)
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("GetUsers: decode: %w", err)
		}
		users = append(users, doc.user())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("GetUsers: cursor: %w", err)
	}

	return users, nil
}

func (m *MongoDB) GetUserByID(ctx context.Context, id string) (types.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return types.User{}, err
	}

	var doc userDoc
	err = m.users.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return types.User{}, fmt.Errorf("no user found with id %s: %w", id, storage.ErrNotFound)
		}
		return types.User{}, fmt.Errorf("GetUserByID: %w", err)
	}

	return doc.user(), nil
}

func (m *MongoDB) GetUserByUsername(ctx context.Context, username string) (types.User, error) {
	var doc userDoc
	err := m.users.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return types.User{}, fmt.Errorf("no user found with username %q: %w", username, storage.ErrNotFound)
		}
		return types.User{}, fmt.Errorf("GetUserByUsername: %w", err)
	}

	return doc.user(), nil
}

func (m *MongoDB) UpdateUserByID(ctx context.Context, id string, user types.User) (types.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return types.User{}, err
	}

	doc := userDoc{
		ID:           oid,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		PositionId:   user.PositionId,
	}

	result, err := m.users.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return types.User{}, fmt.Errorf("username %q: %w", user.Username, storage.ErrUsernameTaken)
		}
		return types.User{}, fmt.Errorf("UpdateUserByID: replace: %w", err)
	}
	if result.MatchedCount == 0 {
		return types.User{}, fmt.Errorf("no user found with id %s: %w", id, storage.ErrNotFound)
	}

	return doc.user(), nil
}

func (m *MongoDB) DeleteUserByID(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := m.users.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("DeleteUserByID: delete: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no user found with id %s: %w", id, storage.ErrNotFound)
	}

	return nil
}

func (d studentDoc) student() types.Student {
	return types.Student{
		ID:         d.ID.Hex(),
		Names:      d.Names,
		Class:      d.Class,
		Field:      d.Field,
		PositionId: d.PositionId,
	}
}

func (d userDoc) user() types.User {
	return types.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		PositionId:   d.PositionId,
	}
}
