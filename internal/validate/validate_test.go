package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
)

func TestCheckCollectsFieldErrors(t *testing.T) {
	in := BlogPostInput{Title: "only a title"}

	err := Check(&in)
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.InvalidArgument, appErr.Kind)

	fields := make(map[string]string)
	for _, fe := range appErr.Fields {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "summary")
	assert.Contains(t, fields, "content")
	assert.NotContains(t, fields, "title")
}

func TestCheckEmailAndURL(t *testing.T) {
	in := ProfileInput{
		DisplayName: "Jane",
		Email:       "not-an-email",
		Website:     "not a url",
	}

	appErr := apperr.From(Check(&in))
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.InvalidArgument, appErr.Kind)
	assert.Len(t, appErr.Fields, 2)
}

func TestCheckPassesValidInput(t *testing.T) {
	in := ContactInput{Name: "Jane", Email: "jane@example.com", Message: "hi"}
	assert.NoError(t, Check(&in))
}

func TestSkillDefaults(t *testing.T) {
	in := SkillInput{Name: "Go", Category: "backend"}
	in.ApplyDefaults()
	assert.Equal(t, 3, in.Proficiency)

	explicit := SkillInput{Name: "Go", Category: "backend", Proficiency: 5}
	explicit.ApplyDefaults()
	assert.Equal(t, 5, explicit.Proficiency)
}

func TestProcessImageDefaults(t *testing.T) {
	in := ProcessImageInput{TempPath: "uploads/x.png", DestinationFolder: "misc", FileName: "x.png"}
	in.ApplyDefaults()

	require.NotNil(t, in.GenerateThumbnail)
	require.NotNil(t, in.OptimizeImage)
	assert.True(t, *in.GenerateThumbnail)
	assert.True(t, *in.OptimizeImage)
	assert.Equal(t, 300, in.ThumbnailWidth)
	assert.Equal(t, 300, in.ThumbnailHeight)
	assert.Equal(t, 80, in.Quality)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got.UTC())

	rfc, err := ParseDate("2024-03-15T10:30:00Z")
	require.NoError(t, err)
	require.NotNil(t, rfc)

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = ParseDate("15/03/2024")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}
