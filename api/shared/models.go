/* models.go
 * This file contains the structs that are shared between sub packages: the in-memory trial hierarchy
 * (Trial -> Day -> Class -> Round), the fee configuration and the calling user
 */

package shared

import "time"

type User struct {
	UserId   string
	Username string
}

// Trial statuses. Draft and Published are the only statuses a caller may save;
// Closed and Completed are terminal states set elsewhere but can come back out
// of the database.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusClosed    = "closed"
	StatusCompleted = "completed"
)

// FeeConfiguration holds the four entry fee amounts for a trial
type FeeConfiguration struct {
	Regular          float64 `bson:"regular" json:"regular"`
	FEO              float64 `bson:"feo" json:"feo"`
	JuniorHandler    float64 `bson:"juniorHandler" json:"juniorHandler"`
	JuniorHandlerFEO float64 `bson:"juniorHandlerFeo" json:"juniorHandlerFeo"`
}

// Round is one judged run of a class
type Round struct {
	Id           string `json:"id,omitempty"`
	RoundNumber  int    `json:"roundNumber"`
	JudgeName    string `json:"judgeName"`
	FEOAvailable bool   `json:"feoAvailable"`
}

// Class is a discipline offering within a day. Subclass is only set for Games
// family classes and is stored encoded into the class name, see classname.go
type Class struct {
	Id         string  `json:"id,omitempty"`
	ClassName  string  `json:"className"`
	Subclass   string  `json:"subclass,omitempty"`
	ClassOrder int     `json:"classOrder"`
	Rounds     []Round `json:"rounds"`
}

// Day is one calendar day of a trial
type Day struct {
	Id        string  `json:"id,omitempty"`
	DayNumber int     `json:"dayNumber"`
	Date      string  `json:"date"`
	Classes   []Class `json:"classes"`
}

// Trial is the full hierarchy as built by a caller or reconstituted from the db.
// Id, CreatedBy and the timestamps are empty until the trial has been persisted.
type Trial struct {
	Id               string           `json:"id,omitempty"`
	ClubName         string           `json:"clubName"`
	Secretary        string           `json:"secretary"`
	Status           string           `json:"status"`
	FeeConfiguration FeeConfiguration `json:"feeConfiguration"`
	Days             []Day            `json:"days"`
	CreatedBy        string           `json:"createdBy,omitempty"`
	CreatedAt        time.Time        `json:"createdAt,omitempty"`
	UpdatedAt        time.Time        `json:"updatedAt,omitempty"`
}
