/* classname.go
 * Contains the encode/decode pair for the stored class name. A class with a subclass is persisted
 * as a single string, e.g. "Games 1 (GB)", so the two logical fields have to be packed and
 * unpacked losslessly when writing to and reading from the db
 */

package shared

import (
	"fmt"
	"regexp"
)

// Matches a trailing parenthesized group: base name, then "(subclass)" at the
// very end of the string. The lazy base group means the captured subclass is
// always the last such group, so base names that themselves contain
// parentheses still decode correctly.
var storedClassName = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)$`)

// EncodeClassName packs a class name and optional subclass into the single
// string stored in the trial_classes collection
func EncodeClassName(className string, subclass string) string {
	if subclass == "" {
		return className
	}
	return fmt.Sprintf("%s (%s)", className, subclass)
}

// DecodeClassName splits a stored class name back into base name and subclass.
// A name without a trailing parenthesized group decodes with an empty subclass
func DecodeClassName(stored string) (className string, subclass string) {
	m := storedClassName.FindStringSubmatch(stored)
	if m == nil {
		return stored, ""
	}
	return m[1], m[2]
}
