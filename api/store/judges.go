/* judges.go
 * Contains the judge name lookup used to feed judge autocomplete. We pull the names out of the
 * stored rounds rather than maintaining a separate judges collection, the same way valid team data
 * comes out of whatever is already persisted
 */

package store

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
)

// ListJudgeNames returns the distinct judge names across all stored rounds,
// sorted alphabetically
func (s *Store) ListJudgeNames() ([]string, error) {
	values, err := s.Collections.Rounds.Distinct(context.TODO(), "judge_name", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error fetching judge names from db: %w", err)
	}

	var names []string
	for _, v := range values {
		if name, ok := v.(string); ok && name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
