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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// coffeeRepository implements the repository.CoffeeRepository interface.
type coffeeRepository struct {
	coll *mongo.Collection
}

// NewCoffeeRepository is the constructor for coffeeRepository.
func NewCoffeeRepository(db *mongo.Database) repository.CoffeeRepository {
	return &coffeeRepository{
		coll: db.Collection(constants.CollectionCoffees),
	}
}

// FindAll returns every coffee in natural order.
func (repo *coffeeRepository) FindAll(ctx context.Context) ([]*entity.Coffee, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find coffees")
	}
	defer cursor.Close(ctx)

	var coffeeModels []*model.CoffeeModel
	if err := cursor.All(ctx, &coffeeModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode coffees")
	}

	coffees := make([]*entity.Coffee, 0, len(coffeeModels))
	for _, coffeeM := range coffeeModels {
		coffees = append(coffees, toCoffeeDomain(coffeeM))
	}

	return coffees, nil
}

// FindByID retrieves a coffee by its key.
func (repo *coffeeRepository) FindByID(ctx context.Context, id string) (*entity.Coffee, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var coffeeM model.CoffeeModel
	if err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&coffeeM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCoffeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find coffee by ID")
	}

	return toCoffeeDomain(&coffeeM), nil
}

// Insert stores a new coffee; the key is generated by the driver.
func (repo *coffeeRepository) Insert(ctx context.Context, coffee *entity.Coffee) (*entity.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, fromCoffeeDomain(coffee))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert coffee")
	}

	return &entity.InsertResult{InsertedID: hexID(res.InsertedID)}, nil
}

// UpdateFields applies a $set of the supplied fields.
func (repo *coffeeRepository) UpdateFields(ctx context.Context, id string, fields entity.Document, upsert bool) (*entity.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := setOf(fields)
	if len(set) == 0 {
		return nil, errors.New("no coffee fields to update")
	}

	res, err := repo.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		options.Update().SetUpsert(upsert),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update coffee")
	}

	return toUpdateResult(res), nil
}

// Delete removes the coffee with the given key.
func (repo *coffeeRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete coffee")
	}

	return &entity.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func toUpdateResult(res *mongo.UpdateResult) *entity.UpdateResult {
	return &entity.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    hexID(res.UpsertedID),
	}
}

// toCoffeeDomain converts a document model to a domain entity.
func toCoffeeDomain(data *model.CoffeeModel) *entity.Coffee {
	if data == nil {
		return nil
	}

	return &entity.Coffee{
		ID:     data.ID.Hex(),
		Fields: toDocument(data.Fields),
	}
}

// fromCoffeeDomain converts a domain entity to a document model.
func fromCoffeeDomain(data *entity.Coffee) *model.CoffeeModel {
	if data == nil {
		return nil
	}

	return &model.CoffeeModel{
		Fields: fromDocument(data.Fields),
	}
}
