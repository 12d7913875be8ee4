/* store.go
 * Contains the store struct and NewStore function. The methods for this package were split across
 * create_trial, replace_trial, get_trial, delete_trial and judges. Each of these files contains the
 * methods for one of the persistence protocols against the trial collections
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store sequences per-collection writes against MongoDB to realise a trial
// hierarchy. MongoDB offers no multi-collection transaction here, so the
// create protocol compensates failed cascades with explicit deletes and the
// replace protocol is delete-and-recreate. Concurrent replaces of the same
// trial are not serialised against each other; interleaved runs can corrupt
// ordering and callers wanting stronger guarantees need a version counter
type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Trials  *mongo.Collection
		Days    *mongo.Collection
		Classes *mongo.Collection
		Rounds  *mongo.Collection
	}
}

// Function for initialising Store. Connects to MongoDB and binds the four trial collections
// Preconditions: Receives strings containing dbName and mongoURI
// Postconditions: Returns pointer to the Store object, or error if the connection fails
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.Trials = db.Collection("trials")
	s.Collections.Days = db.Collection("trial_days")
	s.Collections.Classes = db.Collection("trial_classes")
	s.Collections.Rounds = db.Collection("trial_rounds")

	return s, nil
}
