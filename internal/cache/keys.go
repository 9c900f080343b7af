package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "drh"

	serviceDRH     = "api"
	objectEntry    = "entry"
	objectRelation = "questionrelation"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// EntryKey is the key of the raw entries/{id} document.
func EntryKey(entryID int64) string {
	return GenerateCacheKey(serviceDRH, objectEntry, strconv.FormatInt(entryID, 10))
}

// RelationsKey is the key of the raw questionrelation listing.
func RelationsKey() string {
	return GenerateCacheKey(serviceDRH, objectRelation, "all")
}
