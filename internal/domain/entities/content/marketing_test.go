package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMarketing(t *testing.T) {
	m, err := DecodeMarketing(
		`{"name":"Yayasan Unggul Bangsa","about":"Lembaga pendidikan Islam"}`,
		`[{"title":"Selamat Datang","image":"/hero.webp"}]`,
		`[{"name":"Bu Rina","role":"Wali Murid","quote":"Anak saya betah"}]`,
	)
	require.NoError(t, err)

	assert.Equal(t, "Yayasan Unggul Bangsa", m.Profile.Name)
	require.Len(t, m.Slides, 1)
	assert.Equal(t, "/hero.webp", m.Slides[0].Image)
	require.Len(t, m.Testimonials, 1)
	assert.Equal(t, "Bu Rina", m.Testimonials[0].Name)
}

func TestDecodeMarketingEmptyBlobs(t *testing.T) {
	m, err := DecodeMarketing("", "", "")
	require.NoError(t, err)

	assert.Empty(t, m.Profile.Name)
	assert.Nil(t, m.Slides)
	assert.Nil(t, m.Testimonials)
}

func TestDecodeMarketingRejectsBadJSON(t *testing.T) {
	_, err := DecodeMarketing(`{broken`, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile")

	_, err = DecodeMarketing("", `not-an-array`, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slides")
}

func TestRelatedExcludesSelfAndCaps(t *testing.T) {
	items := []Item{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"},
	}

	related := Related(items, "b", 3)
	require.Len(t, related, 3)
	assert.Equal(t, "a", related[0].ID)
	assert.Equal(t, "c", related[1].ID)
	assert.Equal(t, "d", related[2].ID)

	assert.Empty(t, Related([]Item{{ID: "only"}}, "only", 3))
}

func TestFindByID(t *testing.T) {
	items := []Item{{ID: "x", Title: "X"}, {ID: "y", Title: "Y"}}

	found := FindByID(items, "y")
	require.NotNil(t, found)
	assert.Equal(t, "Y", found.Title)

	assert.Nil(t, FindByID(items, "z"))
}
