package repositories

import (
	"context"
	"log"
	"time"

	"github.com/DenizAltinisik/internship-management/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type ProjectRepo struct {
	cli    *mongo.Client
	logger *log.Logger
}

func NewProjectRepo(ctx context.Context, uri string, logger *log.Logger) (*ProjectRepo, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	err = client.Connect(ctx)
	if err != nil {
		return nil, err
	}

	return &ProjectRepo{
		cli:    client,
		logger: logger,
	}, nil
}

func (pr *ProjectRepo) Disconnect(ctx context.Context) error {
	err := pr.cli.Disconnect(ctx)
	if err != nil {
		return err
	}
	return nil
}

// Check database connection
func (pr *ProjectRepo) Ping() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := pr.cli.Ping(ctx, readpref.Primary())
	if err != nil {
		pr.logger.Println(err)
	}
}

func (pr *ProjectRepo) getCollection() *mongo.Collection {
	projectDatabase := pr.cli.Database(databaseName)
	projectsCollection := projectDatabase.Collection("projects")
	return projectsCollection
}

func (pr *ProjectRepo) getTasksCollection() *mongo.Collection {
	projectDatabase := pr.cli.Database(databaseName)
	tasksCollection := projectDatabase.Collection("tasks")
	return tasksCollection
}

func (pr *ProjectRepo) GetAll() (domain.Projects, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	projectsCollection := pr.getCollection()

	var projects domain.Projects
	projectsCursor, err := projectsCollection.Find(ctx, bson.M{})
	if err != nil {
		pr.logger.Println(err)
		return nil, err
	}
	if err = projectsCursor.All(ctx, &projects); err != nil {
		pr.logger.Println(err)
		return nil, err
	}
	return projects, nil
}

func (pr *ProjectRepo) GetById(id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	projectsCollection := pr.getCollection()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound()
	}

	var project domain.Project
	err = projectsCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&project)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrProjectNotFound()
	}
	if err != nil {
		pr.logger.Println(err)
		return nil, err
	}
	return &project, nil
}

func (pr *ProjectRepo) Insert(project domain.Project) (domain.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	projectsCollection := pr.getCollection()

	if project.Id.IsZero() {
		project.Id = primitive.NewObjectID()
	}

	result, err := projectsCollection.InsertOne(ctx, &project)
	if err != nil {
		pr.logger.Println(err)
		return domain.Project{}, err
	}
	pr.logger.Printf("Documents ID: %v\n", result.InsertedID)
	return project, nil
}

func (pr *ProjectRepo) Update(project domain.Project) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	projectsCollection := pr.getCollection()

	result, err := projectsCollection.UpdateOne(ctx,
		bson.M{"_id": project.Id},
		bson.M{"$set": bson.M{
			"project_name": project.Name,
			"description":  project.Description,
			"status":       project.Status,
		}},
	)
	if err != nil {
		pr.logger.Println(err)
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrProjectNotFound()
	}
	return nil
}

// Delete removes the project and every task referencing it inside one
// session transaction, so a concurrent task listing never sees a task with a
// dangling project reference.
func (pr *ProjectRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound()
	}

	session, err := pr.cli.StartSession()
	if err != nil {
		pr.logger.Println(err)
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		result, err := pr.getCollection().DeleteOne(sc, bson.M{"_id": objID})
		if err != nil {
			return nil, err
		}
		if result.DeletedCount == 0 {
			return nil, domain.ErrProjectNotFound()
		}

		deleted, err := pr.getTasksCollection().DeleteMany(sc, bson.M{"project_id": objID})
		if err != nil {
			return nil, err
		}
		pr.logger.Printf("Cascade deleted %d tasks for project %s\n", deleted.DeletedCount, id)
		return nil, nil
	})
	if err != nil && err != domain.ErrProjectNotFound() {
		pr.logger.Println(err)
	}
	return err
}
