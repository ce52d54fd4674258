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

type TaskRepo struct {
	cli    *mongo.Client
	logger *log.Logger
}

func NewTaskRepo(ctx context.Context, uri string, logger *log.Logger) (*TaskRepo, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	err = client.Connect(ctx)
	if err != nil {
		return nil, err
	}

	return &TaskRepo{
		cli:    client,
		logger: logger,
	}, nil
}

func (tr *TaskRepo) Disconnect(ctx context.Context) error {
	err := tr.cli.Disconnect(ctx)
	if err != nil {
		return err
	}
	return nil
}

// Check database connection
func (tr *TaskRepo) Ping() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := tr.cli.Ping(ctx, readpref.Primary())
	if err != nil {
		tr.logger.Println(err)
	}
}

func (tr *TaskRepo) getCollection() *mongo.Collection {
	taskDatabase := tr.cli.Database(databaseName)
	tasksCollection := taskDatabase.Collection("tasks")
	return tasksCollection
}

func (tr *TaskRepo) getProjectsCollection() *mongo.Collection {
	taskDatabase := tr.cli.Database(databaseName)
	projectsCollection := taskDatabase.Collection("projects")
	return projectsCollection
}

func (tr *TaskRepo) getUsersCollection() *mongo.Collection {
	taskDatabase := tr.cli.Database(databaseName)
	usersCollection := taskDatabase.Collection("users")
	return usersCollection
}

// Insert checks the referenced project and owner and inserts the task inside
// one session transaction. A project deleted concurrently aborts the insert.
func (tr *TaskRepo) Insert(task domain.Task) (domain.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := tr.cli.StartSession()
	if err != nil {
		tr.logger.Println(err)
		return domain.Task{}, err
	}
	defer session.EndSession(ctx)

	if task.Id.IsZero() {
		task.Id = primitive.NewObjectID()
	}

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		count, err := tr.getProjectsCollection().CountDocuments(sc, bson.M{"_id": task.ProjectId})
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, domain.ErrProjectNotFound()
		}

		count, err = tr.getUsersCollection().CountDocuments(sc, bson.M{"email": task.Owner})
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, domain.ErrUserNotFound()
		}

		result, err := tr.getCollection().InsertOne(sc, &task)
		if err != nil {
			return nil, err
		}
		tr.logger.Printf("Documents ID: %v\n", result.InsertedID)
		return nil, nil
	})
	if err != nil {
		if err != domain.ErrProjectNotFound() && err != domain.ErrUserNotFound() {
			tr.logger.Println(err)
		}
		return domain.Task{}, err
	}
	return task, nil
}

func (tr *TaskRepo) GetAll() (domain.Tasks, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tasksCollection := tr.getCollection()

	var tasks domain.Tasks
	tasksCursor, err := tasksCollection.Find(ctx, bson.M{})
	if err != nil {
		tr.logger.Println(err)
		return nil, err
	}
	if err = tasksCursor.All(ctx, &tasks); err != nil {
		tr.logger.Println(err)
		return nil, err
	}
	return tasks, nil
}

func (tr *TaskRepo) GetAllByOwner(email string) (domain.Tasks, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tasksCollection := tr.getCollection()

	var tasks domain.Tasks
	tasksCursor, err := tasksCollection.Find(ctx, bson.M{"owner": email})
	if err != nil {
		tr.logger.Println(err)
		return nil, err
	}
	if err = tasksCursor.All(ctx, &tasks); err != nil {
		tr.logger.Println(err)
		return nil, err
	}
	return tasks, nil
}

func (tr *TaskRepo) GetAllByProject(projectId string) (domain.Tasks, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tasksCollection := tr.getCollection()

	objID, err := primitive.ObjectIDFromHex(projectId)
	if err != nil {
		return nil, domain.ErrProjectNotFound()
	}

	var tasks domain.Tasks
	tasksCursor, err := tasksCollection.Find(ctx, bson.M{"project_id": objID})
	if err != nil {
		tr.logger.Println(err)
		return nil, err
	}
	if err = tasksCursor.All(ctx, &tasks); err != nil {
		tr.logger.Println(err)
		return nil, err
	}
	return tasks, nil
}

func (tr *TaskRepo) GetById(id string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tasksCollection := tr.getCollection()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound()
	}

	var task domain.Task
	err = tasksCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrTaskNotFound()
	}
	if err != nil {
		tr.logger.Println(err)
		return nil, err
	}
	return &task, nil
}

func (tr *TaskRepo) Update(task domain.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tasksCollection := tr.getCollection()

	result, err := tasksCollection.UpdateOne(ctx,
		bson.M{"_id": task.Id},
		bson.M{"$set": bson.M{
			"header":  task.Header,
			"details": task.Details,
			"status":  task.Status,
			"owner":   task.Owner,
		}},
	)
	if err != nil {
		tr.logger.Println(err)
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrTaskNotFound()
	}
	return nil
}

func (tr *TaskRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tasksCollection := tr.getCollection()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound()
	}

	result, err := tasksCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		tr.logger.Println(err)
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrTaskNotFound()
	}
	return nil
}
