package importer

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmtrail/api-go/types"
)

func TestNewPhotoLinkExtraction(t *testing.T) {
	cases := []struct {
		name string
		url  *string
		want *string
	}{
		{"embedded_checkin", strp("https://www.swarmapp.com/user/1/checkin/abc123"), strp("abc123")},
		{"no_checkin_segment", strp("https://www.swarmapp.com/user/42"), nil},
		{"absent_url", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := newPhoto(types.PhotoItem{ID: "p1", RelatedItemURL: tc.url}, "pix")
			if tc.want == nil {
				assert.Nil(t, rec.CheckinID)
			} else {
				require.NotNil(t, rec.CheckinID)
				assert.Equal(t, *tc.want, *rec.CheckinID)
			}
		})
	}
}

func TestNewPhotoLocalPath(t *testing.T) {
	rec := newPhoto(types.PhotoItem{ID: "p9"}, "pix")
	assert.Equal(t, filepath.Join("pix", "p9.jpg"), rec.LocalPath)
}

func TestNewCheckinNormalizesTimestamp(t *testing.T) {
	rec := newCheckin(types.CheckinItem{ID: "c1", CreatedAt: json.Number("1700000000")})
	require.NotNil(t, rec.CreatedAt)
	assert.Equal(t, "1700000000", *rec.CreatedAt)

	rec = newCheckin(types.CheckinItem{ID: "c2", CreatedAt: json.Number("not-a-number")})
	assert.Nil(t, rec.CreatedAt)

	rec = newCheckin(types.CheckinItem{ID: "c3"})
	assert.Nil(t, rec.CreatedAt)
	assert.Nil(t, rec.VenueID)
}

func TestNewUserContactFlags(t *testing.T) {
	rec := newUser(types.SelfUser{
		ID: "u1",
		Contact: types.UserContact{
			VerifiedPhone: "true",
			VerifiedEmail: "nope",
		},
	})
	assert.True(t, rec.VerifiedPhone)
	assert.False(t, rec.VerifiedEmail)
	assert.Nil(t, rec.ListsCount)
}
