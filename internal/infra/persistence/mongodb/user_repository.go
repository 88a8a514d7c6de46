package mongodb

import (
	"context"

	"coffeeshop/internal/domain/constants"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(constants.CollectionUsers),
	}
}

func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}
	defer cursor.Close(ctx)

	var userModels []*model.UserModel
	if err := cursor.All(ctx, &userModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) Insert(ctx context.Context, user *entity.User) (*entity.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, fromUserDomain(user))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert user")
	}

	return &entity.InsertResult{InsertedID: hexID(res.InsertedID)}, nil
}

// UpdateLastSignInTime sets lastSignInTime on the first user with the given email.
// No document is created when nothing matches.
func (repo *userRepository) UpdateLastSignInTime(ctx context.Context, email, lastSignInTime string) (*entity.UpdateResult, error) {
	res, err := repo.coll.UpdateOne(ctx,
		bson.D{{Key: entity.UserFieldEmail, Value: email}},
		bson.D{{Key: "$set", Value: bson.D{{Key: entity.UserFieldLastSignInTime, Value: lastSignInTime}}}},
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update user sign-in time")
	}

	return toUpdateResult(res), nil
}

func (repo *userRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	return &entity.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:     data.ID.Hex(),
		Email:  data.Email,
		UID:    data.UID,
		Fields: toDocument(data.Fields),
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		Email:  data.Email,
		UID:    data.UID,
		Fields: fromDocument(data.Fields, entity.UserFieldEmail, entity.UserFieldUID),
	}
}
