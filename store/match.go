package store

import (
	"bandhan/models"

	"go.mongodb.org/mongo-driver/bson"
)

// MatchOptions configures a single match query. The default zero value is the
// widest form: no gender or religion restriction, no result cap, and a
// projection that only strips the password.
type MatchOptions struct {
	// OppositeGender restricts candidates to the inferred opposite gender
	// of the requester.
	OppositeGender bool
	// PreferredReligions restricts candidates to the requester's stored
	// preferred-religion set, when that set is non-empty.
	PreferredReligions bool
	// Limit caps the number of candidates; zero means unlimited.
	Limit int64
	// DisplayFields narrows the projection to the display-relevant
	// attributes instead of "everything but the password".
	DisplayFields bool
}

// SuggestedMatchOptions is the stricter variant used for curated suggestions.
func SuggestedMatchOptions() MatchOptions {
	return MatchOptions{
		OppositeGender:     true,
		PreferredReligions: true,
		Limit:              50,
		DisplayFields:      true,
	}
}

// BuildMatchFilter derives the candidate predicate from the requester's own
// stored record. The base predicate always excludes the requester and bounds
// candidate age to the effective preference band (defaults 18..100 when the
// stored values are absent or non-positive). Interests and location, when
// present, form a disjunction ANDed onto the base: a candidate qualifies by
// sharing an interest OR living in the preferred location. With neither
// present the base predicate stands alone.
func BuildMatchFilter(requester *models.User, opts MatchOptions) bson.M {
	minAge := requester.Preferences.MinAge
	if minAge <= 0 {
		minAge = models.MinAllowedAge
	}
	maxAge := requester.Preferences.MaxAge
	if maxAge <= 0 {
		maxAge = models.MaxAllowedAge
	}

	filter := bson.M{
		"_id": bson.M{"$ne": requester.ID},
		"age": bson.M{"$gte": minAge, "$lte": maxAge},
	}

	var optional []bson.M
	if len(requester.Preferences.Interests) > 0 {
		optional = append(optional, bson.M{"interests": bson.M{"$in": requester.Preferences.Interests}})
	}
	if requester.Preferences.Location != "" {
		optional = append(optional, bson.M{"location": requester.Preferences.Location})
	}
	if len(optional) > 0 {
		filter["$or"] = optional
	}

	if opts.OppositeGender {
		filter["gender"] = requester.Gender.Opposite()
	}
	if opts.PreferredReligions && len(requester.Preferences.PreferredReligions) > 0 {
		filter["religion"] = bson.M{"$in": requester.Preferences.PreferredReligions}
	}

	return filter
}

// matchProjection returns the field projection for a match query. The
// password hash is never part of any result.
func matchProjection(opts MatchOptions) bson.M {
	if opts.DisplayFields {
		return bson.M{
			"firstName":    1,
			"lastName":     1,
			"age":          1,
			"religion":     1,
			"location":     1,
			"profilePhoto": 1,
			"interests":    1,
		}
	}
	return bson.M{"password": 0}
}
