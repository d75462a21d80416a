package utils

import "go.mongodb.org/mongo-driver/v2/bson"

// Oid parses the hex id a route or query parameter carries; handlers
// turn a failure into a 400 before touching storage.
func Oid(hex string) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(hex)
}
