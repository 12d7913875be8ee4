/* catalog.go
 * Contains the C-WAGS class catalog, the Games subclass codes and the default judge roster.
 * These lists mirror the published C-WAGS class offerings
 */

package shared

import "strings"

// CWAGSClasses is the catalog of offered class names. Games classes are base
// names, the subclass is selected separately
var CWAGSClasses = []string{
	// Scent work
	"Patrol 1", "Detective 2", "Investigator 3", "Super Sleuth 4",
	"Private Investigator", "Detective Diversions",
	// Rally
	"Rally Starter", "Rally Advanced", "Rally Pro", "Rally ARF",
	"Zoom 1", "Zoom 1.5", "Zoom 2",
	// Games
	"Games 1", "Games 2", "Games 3", "Games 4",
	// Obedience
	"Obedience 1", "Obedience 2", "Obedience 3", "Obedience 4", "Obedience 5",
}

// GamesSubclass maps a subclass code to its display label
type GamesSubclass struct {
	Code  string
	Label string
}

// GamesSubclasses enumerates the valid Games subclass codes
var GamesSubclasses = []GamesSubclass{
	{Code: "GB", Label: "Grab Bag (GB)"},
	{Code: "C", Label: "Colors (C)"},
	{Code: "BJ", Label: "Black Jack (BJ)"},
	{Code: "P", Label: "Pairs (P)"},
	{Code: "T", Label: "Teams (T)"},
}

// DefaultJudges seeds judge name suggestions before any rounds have been stored
var DefaultJudges = []string{
	"Cheree Richmond", "Heather Schneider", "Aaryn Secker", "Julie Williams",
	"Patty Brown", "Sandy Martinez", "William Thompson", "Burt Smith",
}

// IsGamesClass reports whether a class name belongs to the Games family and
// therefore requires a subclass
func IsGamesClass(className string) bool {
	return strings.HasPrefix(className, "Games")
}

// IsValidGamesSubclass reports whether code is one of the enumerated Games subclass codes
func IsValidGamesSubclass(code string) bool {
	for _, sc := range GamesSubclasses {
		if sc.Code == code {
			return true
		}
	}
	return false
}
