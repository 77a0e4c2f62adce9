package repositories

import (
	"context"
	"testing"

	"summer-camp-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestEnrolmentPipelineShape(t *testing.T) {
	require.Len(t, enrolmentPipeline, 1)
	stage := enrolmentPipeline[0]
	require.Len(t, stage, 1)
	assert.Equal(t, "$set", stage[0].Key)

	set, ok := stage[0].Value.(bson.M)
	require.True(t, ok)

	// seat = max(ifNull(seat, 0) - 1, 0)
	assert.Equal(t, bson.M{"$max": bson.A{
		bson.M{"$subtract": bson.A{bson.M{"$ifNull": bson.A{"$seat", 0}}, 1}},
		0,
	}}, set["seat"])

	// studentsEnrolment = ifNull(studentsEnrolment, 0) + 1
	assert.Equal(t, bson.M{"$add": bson.A{
		bson.M{"$ifNull": bson.A{"$studentsEnrolment", 0}},
		1,
	}}, set["studentsEnrolment"])
}

func TestMongoClassRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("RecordEnrolmentSendsPipeline", func(mt *mtest.T) {
		repo := NewMongoClassRepository(mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.RecordEnrolment(context.Background(), id)
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, res.MatchedCount)
		assert.EqualValues(mt, 1, res.ModifiedCount)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)

		var cmd struct {
			Updates []struct {
				Q bson.M `bson:"q"`
				U bson.A `bson:"u"`
			} `bson:"updates"`
		}
		require.NoError(mt, bson.Unmarshal(started.Command, &cmd))
		require.Len(mt, cmd.Updates, 1)
		assert.Equal(mt, id, cmd.Updates[0].Q["_id"])
		// an array "u" is an aggregation pipeline update, evaluated server side
		assert.Len(mt, cmd.Updates[0].U, 1)
	})

	mt.Run("RecordEnrolmentUnknownClass", func(mt *mtest.T) {
		repo := NewMongoClassRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		res, err := repo.RecordEnrolment(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.EqualValues(mt, 0, res.MatchedCount)
	})

	mt.Run("FindByIDNotFound", func(mt *mtest.T) {
		repo := NewMongoClassRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("FindByIDDecodes", func(mt *mtest.T) {
		repo := NewMongoClassRepository(mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Robotics"},
			{Key: "seat", Value: 0},
			{Key: "studentsEnrolment", Value: 4},
			{Key: "status", Value: models.ClassApproved},
		}))

		class, err := repo.FindByID(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, id, class.ID)
		assert.Equal(mt, 0, class.Seat)
		assert.Equal(mt, 4, class.StudentsEnrolment)
	})
}

func TestMongoCartRepositoryDeleteByClass(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("FiltersByClassAndOwner", func(mt *mtest.T) {
		repo := NewMongoCartRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := repo.DeleteByClass(context.Background(), "507f1f77bcf86cd799439011", "jane@example.com")
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, res.DeletedCount)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "delete", started.CommandName)

		var cmd struct {
			Deletes []struct {
				Q     bson.M `bson:"q"`
				Limit int32  `bson:"limit"`
			} `bson:"deletes"`
		}
		require.NoError(mt, bson.Unmarshal(started.Command, &cmd))
		require.Len(mt, cmd.Deletes, 1)
		assert.Equal(mt, bson.M{"classId": "507f1f77bcf86cd799439011", "myemail": "jane@example.com"}, cmd.Deletes[0].Q)
		assert.EqualValues(mt, 1, cmd.Deletes[0].Limit)
	})
}

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("DuplicateEmail", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: usersDB.usersCollections index: email_1",
		}))

		_, err := repo.Insert(context.Background(), &models.User{Email: "jane@example.com"})
		assert.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("InsertAssignsID", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &models.User{Email: "jane@example.com"}
		res, err := repo.Insert(context.Background(), user)
		require.NoError(mt, err)
		assert.False(mt, user.ID.IsZero())
		assert.Equal(mt, user.ID, res.InsertedID)
	})

	mt.Run("FindByEmailNotFound", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
