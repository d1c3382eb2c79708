package store

import (
	"testing"

	"bandhan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func requester(prefs models.Preferences) *models.User {
	return &models.User{
		ID:          primitive.NewObjectID(),
		FirstName:   "Asha",
		Gender:      models.GenderFemale,
		Age:         28,
		Preferences: prefs,
	}
}

func TestBuildMatchFilterDefaults(t *testing.T) {
	u := requester(models.Preferences{})

	filter := BuildMatchFilter(u, MatchOptions{})

	assert.Equal(t, bson.M{"$ne": u.ID}, filter["_id"])
	assert.Equal(t, bson.M{"$gte": 18, "$lte": 100}, filter["age"])
	assert.NotContains(t, filter, "$or")
	assert.NotContains(t, filter, "gender")
	assert.NotContains(t, filter, "religion")
}

func TestBuildMatchFilterNegativeBoundsFallBack(t *testing.T) {
	u := requester(models.Preferences{MinAge: -3, MaxAge: 0})

	filter := BuildMatchFilter(u, MatchOptions{})

	assert.Equal(t, bson.M{"$gte": 18, "$lte": 100}, filter["age"])
}

func TestBuildMatchFilterAgeBand(t *testing.T) {
	u := requester(models.Preferences{MinAge: 25, MaxAge: 32})

	filter := BuildMatchFilter(u, MatchOptions{})

	assert.Equal(t, bson.M{"$gte": 25, "$lte": 32}, filter["age"])
}

func TestBuildMatchFilterOptionalDisjunction(t *testing.T) {
	u := requester(models.Preferences{
		Interests: []string{"music", "travel"},
		Location:  "Pune",
	})

	filter := BuildMatchFilter(u, MatchOptions{})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"interests": bson.M{"$in": []string{"music", "travel"}}}, or[0])
	assert.Equal(t, bson.M{"location": "Pune"}, or[1])
}

func TestBuildMatchFilterInterestsOnly(t *testing.T) {
	u := requester(models.Preferences{Interests: []string{"cricket"}})

	filter := BuildMatchFilter(u, MatchOptions{})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 1)
	assert.Equal(t, bson.M{"interests": bson.M{"$in": []string{"cricket"}}}, or[0])
}

func TestBuildMatchFilterLocationOnly(t *testing.T) {
	u := requester(models.Preferences{Location: "Mumbai"})

	filter := BuildMatchFilter(u, MatchOptions{})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 1)
	assert.Equal(t, bson.M{"location": "Mumbai"}, or[0])
}

func TestBuildMatchFilterSuggestedVariant(t *testing.T) {
	u := requester(models.Preferences{
		MinAge:             21,
		MaxAge:             30,
		PreferredReligions: []models.Religion{models.ReligionHindu, models.ReligionJain},
	})

	opts := SuggestedMatchOptions()
	filter := BuildMatchFilter(u, opts)

	assert.Equal(t, models.GenderMale, filter["gender"])
	assert.Equal(t, bson.M{"$in": []models.Religion{models.ReligionHindu, models.ReligionJain}}, filter["religion"])
	assert.EqualValues(t, 50, opts.Limit)
}

func TestBuildMatchFilterSuggestedWithoutReligions(t *testing.T) {
	u := requester(models.Preferences{})

	filter := BuildMatchFilter(u, SuggestedMatchOptions())

	// An empty preferred set must not restrict religion at all.
	assert.NotContains(t, filter, "religion")
	assert.Equal(t, models.GenderMale, filter["gender"])
}

func TestBuildMatchFilterOppositeGenderForMale(t *testing.T) {
	u := requester(models.Preferences{})
	u.Gender = models.GenderMale

	filter := BuildMatchFilter(u, MatchOptions{OppositeGender: true})

	assert.Equal(t, models.GenderFemale, filter["gender"])
}

func TestMatchProjectionNeverExposesPassword(t *testing.T) {
	wide := matchProjection(MatchOptions{})
	assert.Equal(t, bson.M{"password": 0}, wide)

	display := matchProjection(MatchOptions{DisplayFields: true})
	assert.NotContains(t, display, "password")
	for _, field := range []string{"firstName", "lastName", "age", "religion", "location", "profilePhoto", "interests"} {
		assert.Contains(t, display, field)
	}
}
