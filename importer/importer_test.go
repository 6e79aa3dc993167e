package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/swarmtrail/api-go/config"
	"github.com/swarmtrail/api-go/models"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// writeFullExport lays down one file per family, with venue v2 sighted by
// three families so the merge paths run.
func writeFullExport(t *testing.T, dir string) {
	t.Helper()
	writeFixture(t, dir, "checkins1.json", `{"items":[
		{"id":"c1","createdAt":1700000000,"shout":"hello","timeZone":"America/New_York",
		 "venue":{"id":"v1","name":"Cafe Uno","location":{"address":"1 Main St","lat":40.7,"lng":-74.0}}},
		{"id":"c2","createdAt":1700259200,"venue":{"id":"v2","name":"Bar Due"}}
	]}`)
	writeFixture(t, dir, "photos1.json", `{"items":[
		{"id":"p1","createdAt":1700000500,"fullUrl":"https://img/p1.jpg","width":100,"height":200,
		 "relatedItemUrl":"https://www.swarmapp.com/checkin/abc123"},
		{"id":"p2","createdAt":1700000600,"relatedItemUrl":"https://www.swarmapp.com/user/42"}
	]}`)
	writeFixture(t, dir, "users.json", `{"self":{"id":"u1","firstName":"Ada","lastName":"L",
		"contact":{"phone":"555-0100","verifiedPhone":"true","verifiedEmail":"false"},
		"photo":{"prefix":"https://p/","suffix":"/orig.jpg"},
		"displayName":"Ada L","tips":{"count":3},"lists":{"groups":[{"count":2}]}},
		"friends":{"items":[{"id":"f1","firstName":"Bob","canonicalUrl":"https://4sq/bob"}]}}`)
	writeFixture(t, dir, "visits.json", `{"items":[
		{"id":"vi1","userId":"u1","timeArrived":1700003600,"timeDeparted":1700007200,
		 "os":"iOS","deviceModel":"iPhone12,1","latitude":40.7,"longitude":-74.0,
		 "city":"New York","state":"NY","countryCode":"US","locationType":"venue"}
	]}`)
	writeFixture(t, dir, "unconfirmed_visits.json", `{"items":[
		{"id":"uv1","startTime":1700010000,"endTime":1700013600,"venueId":"v2",
		 "lat":41.0,"lng":-73.0,"venue":{"name":"Bar Due Stale","url":"https://4sq/v2"}}
	]}`)
	writeFixture(t, dir, "tips.json", `{"items":[
		{"id":"t1","createdAt":1700020000,"text":"good coffee","type":"user",
		 "viewCount":5,"agreeCount":1,"disagreeCount":0,
		 "user":{"id":"u1"},"venue":{"id":"v2","name":"Bar Due Other"}}
	]}`)
	writeFixture(t, dir, "comments.json", `{"items":[
		{"userId":"u1","time":1700030000,"comment":"nice"}
	]}`)
	writeFixture(t, dir, "venueRatings.json", `{"venueLikes":[
		{"id":"v3","name":"Tre","url":"https://4sq/v3"}
	]}`)
	writeFixture(t, dir, "expertise.json", `{"items":[
		{"id":"e1","type":"coffee","timestamp":1700040000,"lastModified":1700040001}
	]}`)
	writeFixture(t, dir, "plans.json", `{"items":[
		{"id":"pl1","userId":"u1","createdAt":1700050000,"modifiedTime":1700050001,"isBroadcast":true,"type":"plan"}
	]}`)
	writeFixture(t, dir, "shares.json", `{"items":[
		{"id":"s1","sharedAt":1700060000,"state":"accepted","type":"checkin"}
	]}`)
}

func runImport(t *testing.T, dir, dbPath string) *Report {
	t.Helper()
	imp := New(Config{ExportDir: dir, DBPath: dbPath}, zerolog.Nop())
	report, err := imp.Run(context.Background())
	require.NoError(t, err)
	return report
}

func openStore(t *testing.T, dbPath string) *gorm.DB {
	t.Helper()
	db, err := config.Store{Path: dbPath}.Open()
	require.NoError(t, err)
	t.Cleanup(func() { config.Close(db) })
	return db
}

func tableCounts(t *testing.T, db *gorm.DB) map[string]int64 {
	t.Helper()
	counts := map[string]int64{}
	for name, model := range map[string]any{
		"venues":             &models.Venue{},
		"checkins":           &models.Checkin{},
		"photos":             &models.Photo{},
		"users":              &models.User{},
		"friends":            &models.Friend{},
		"visits":             &models.Visit{},
		"unconfirmed_visits": &models.UnconfirmedVisit{},
		"tips":               &models.Tip{},
		"comments":           &models.Comment{},
		"venue_ratings":      &models.VenueRating{},
		"expertise":          &models.Expertise{},
		"plans":              &models.Plan{},
		"shares":             &models.Share{},
	} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		counts[name] = n
	}
	return counts
}

func TestRunImportsFullExport(t *testing.T) {
	dir := t.TempDir()
	writeFullExport(t, dir)
	dbPath := filepath.Join(dir, "store.db")

	report := runImport(t, dir, dbPath)
	require.Len(t, report.Families, 12)
	for _, fam := range report.Families {
		assert.Equal(t, StatusImported, fam.Status, fam.Family)
	}

	db := openStore(t, dbPath)
	counts := tableCounts(t, db)
	assert.Equal(t, int64(3), counts["venues"])
	assert.Equal(t, int64(2), counts["checkins"])
	assert.Equal(t, int64(2), counts["photos"])
	assert.Equal(t, int64(1), counts["users"])
	assert.Equal(t, int64(1), counts["friends"])
	assert.Equal(t, int64(1), counts["visits"])
	assert.Equal(t, int64(1), counts["unconfirmed_visits"])
	assert.Equal(t, int64(1), counts["tips"])
	assert.Equal(t, int64(1), counts["comments"])
	assert.Equal(t, int64(1), counts["venue_ratings"])
	assert.Equal(t, int64(1), counts["expertise"])
	assert.Equal(t, int64(1), counts["plans"])
	assert.Equal(t, int64(1), counts["shares"])
}

// v2 is named by the check-in, located by the unconfirmed visit and renamed
// (unsuccessfully) by the tip: the stored row must be the union with the
// first-seen name.
func TestRunMergesVenueAcrossFamilies(t *testing.T) {
	dir := t.TempDir()
	writeFullExport(t, dir)
	dbPath := filepath.Join(dir, "store.db")
	runImport(t, dir, dbPath)

	db := openStore(t, dbPath)
	v := loadVenue(t, db, "v2")
	require.NotNil(t, v.Name)
	assert.Equal(t, "Bar Due", *v.Name)
	require.NotNil(t, v.Lat)
	assert.Equal(t, 41.0, *v.Lat)
	require.NotNil(t, v.Lng)
	assert.Equal(t, -73.0, *v.Lng)
	require.NotNil(t, v.URL)
	assert.Equal(t, "https://4sq/v2", *v.URL)
	assert.Nil(t, v.Address)
}

func TestRunExtractsPhotoCheckinLink(t *testing.T) {
	dir := t.TempDir()
	writeFullExport(t, dir)
	dbPath := filepath.Join(dir, "store.db")
	runImport(t, dir, dbPath)

	db := openStore(t, dbPath)

	var linked models.Photo
	require.NoError(t, db.First(&linked, "id = ?", "p1").Error)
	require.NotNil(t, linked.CheckinID)
	assert.Equal(t, "abc123", *linked.CheckinID)
	assert.Equal(t, filepath.Join("pix", "p1.jpg"), linked.LocalPath)

	var unlinked models.Photo
	require.NoError(t, db.First(&unlinked, "id = ?", "p2").Error)
	assert.Nil(t, unlinked.CheckinID)
}

func TestRunUsersAndFriends(t *testing.T) {
	dir := t.TempDir()
	writeFullExport(t, dir)
	dbPath := filepath.Join(dir, "store.db")
	runImport(t, dir, dbPath)

	db := openStore(t, dbPath)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "u1").Error)
	assert.True(t, user.VerifiedPhone)
	assert.False(t, user.VerifiedEmail)
	require.NotNil(t, user.TipsCount)
	assert.Equal(t, 3, *user.TipsCount)
	require.NotNil(t, user.ListsCount)
	assert.Equal(t, 2, *user.ListsCount)

	var friend models.Friend
	require.NoError(t, db.First(&friend, "user_id = ? AND friend_id = ?", "u1", "f1").Error)
	require.NotNil(t, friend.FriendFirstName)
	assert.Equal(t, "Bob", *friend.FriendFirstName)
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFullExport(t, dir)
	dbPath := filepath.Join(dir, "store.db")

	runImport(t, dir, dbPath)
	db := openStore(t, dbPath)
	first := tableCounts(t, db)
	firstVenue := loadVenue(t, db, "v2")
	config.Close(db)

	report := runImport(t, dir, dbPath)
	for _, fam := range report.Families {
		assert.Zero(t, fam.Inserted, fam.Family)
		assert.Zero(t, fam.Filled, fam.Family)
	}

	db = openStore(t, dbPath)
	assert.Equal(t, first, tableCounts(t, db))
	assert.Equal(t, firstVenue, loadVenue(t, db, "v2"))
}

func TestRunToleratesMissingFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "checkins1.json", `{"items":[
		{"id":"c1","createdAt":1700000000,"venue":{"id":"v1","name":"Cafe Uno"}}
	]}`)
	dbPath := filepath.Join(dir, "store.db")

	report := runImport(t, dir, dbPath)
	byFamily := map[string]*FamilyResult{}
	for _, fam := range report.Families {
		byFamily[fam.Family] = fam
	}
	assert.Equal(t, StatusImported, byFamily["checkins"].Status)
	assert.Equal(t, StatusImported, byFamily["venues"].Status)
	assert.Equal(t, StatusSkipped, byFamily["tips"].Status)
	assert.Equal(t, StatusSkipped, byFamily["users"].Status)
	assert.Equal(t, StatusSkipped, byFamily["photos"].Status)

	db := openStore(t, dbPath)
	counts := tableCounts(t, db)
	assert.Equal(t, int64(1), counts["checkins"])
	assert.Equal(t, int64(1), counts["venues"])
	for _, table := range []string{"photos", "users", "friends", "visits", "unconfirmed_visits", "tips", "comments", "venue_ratings", "expertise", "plans", "shares"} {
		assert.Zero(t, counts[table], table)
	}
}

// A malformed document abandons its own family and nothing else.
func TestRunIsolatesMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	writeFullExport(t, dir)
	writeFixture(t, dir, "tips.json", `{"items": [not json`)
	dbPath := filepath.Join(dir, "store.db")

	report := runImport(t, dir, dbPath)
	byFamily := map[string]*FamilyResult{}
	for _, fam := range report.Families {
		byFamily[fam.Family] = fam
	}
	assert.Equal(t, StatusFailed, byFamily["tips"].Status)
	assert.Equal(t, StatusImported, byFamily["checkins"].Status)
	assert.Equal(t, StatusImported, byFamily["shares"].Status)

	db := openStore(t, dbPath)
	counts := tableCounts(t, db)
	assert.Zero(t, counts["tips"])
	assert.Equal(t, int64(2), counts["checkins"])

	// The venue pass loses only the tips sighting; v2 still merges from the
	// check-in and the unconfirmed visit.
	v := loadVenue(t, db, "v2")
	require.NotNil(t, v.Name)
	assert.Equal(t, "Bar Due", *v.Name)
	require.NotNil(t, v.Lat)
}

func TestRunCommentsDedupAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "comments.json", `{"items":[
		{"userId":"u1","time":1700030000,"comment":"nice"},
		{"userId":"u1","time":1700030001,"comment":"nice"}
	]}`)
	dbPath := filepath.Join(dir, "store.db")

	runImport(t, dir, dbPath)
	runImport(t, dir, dbPath)

	db := openStore(t, dbPath)
	var n int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&n).Error)
	assert.Equal(t, int64(2), n)
}
