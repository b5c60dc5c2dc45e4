package interests

import (
	"testing"

	"github.com/adityarizki/amora/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNormalizesTags(t *testing.T) {
	mine := entity.ProfileQuestions{
		MusicGenres: entity.StringList{"  Pop ", "ROCK"},
		Hobbies:     entity.StringList{"Hiking"},
	}
	theirs := entity.ProfileQuestions{
		MusicGenres: entity.StringList{"pop"},
		Hobbies:     entity.StringList{" hiking "},
	}

	mutual := Compute(mine, theirs)

	assert.Equal(t, []string{"pop"}, mutual.MusicGenres)
	assert.Equal(t, []string{"hiking"}, mutual.Hobbies)
	assert.Equal(t, 2, mutual.Count)
}

func TestComputeEmptyProfiles(t *testing.T) {
	mutual := Compute(entity.ProfileQuestions{}, entity.ProfileQuestions{})

	assert.Empty(t, mutual.Shared)
	assert.Equal(t, 0, mutual.Count)
	assert.NotNil(t, mutual.MusicGenres)
	assert.NotNil(t, mutual.Hobbies)
	assert.NotNil(t, mutual.Passions)
}

func TestComputeCountIsSymmetric(t *testing.T) {
	a := entity.ProfileQuestions{
		MusicGenres: entity.StringList{"jazz", "pop", "rock"},
		Passions:    entity.StringList{"food", "tech"},
	}
	b := entity.ProfileQuestions{
		MusicGenres: entity.StringList{"rock", "jazz"},
		Passions:    entity.StringList{"tech"},
	}

	ab := Compute(a, b)
	ba := Compute(b, a)

	assert.Equal(t, ab.Count, ba.Count)
	assert.ElementsMatch(t, ab.Shared, ba.Shared)
}

func TestComputePreservesLeftOrder(t *testing.T) {
	a := entity.ProfileQuestions{MusicGenres: entity.StringList{"jazz", "pop", "rock"}}
	b := entity.ProfileQuestions{MusicGenres: entity.StringList{"rock", "pop", "jazz"}}

	mutual := Compute(a, b)

	assert.Equal(t, []string{"jazz", "pop", "rock"}, mutual.MusicGenres)
}

func TestComputeSharedCapAndOrdering(t *testing.T) {
	tags := entity.StringList{"a", "b", "c"}
	profile := entity.ProfileQuestions{MusicGenres: tags, Hobbies: tags, Passions: tags}

	mutual := Compute(profile, profile)

	// music first, then hobbies, truncated at six
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, mutual.Shared)
	assert.Equal(t, 9, mutual.Count)
}

func TestMatchReasons(t *testing.T) {
	mine := entity.ProfileQuestions{
		MusicGenres: entity.StringList{"Pop", "Rock", "Jazz", "EDM"},
		Hobbies:     entity.StringList{"Hiking"},
	}
	theirs := entity.ProfileQuestions{
		MusicGenres: entity.StringList{"pop", "rock", "jazz", "edm"},
		Hobbies:     entity.StringList{"hiking"},
	}

	reasons, mutual := MatchReasons(mine, theirs)

	require.Len(t, reasons, 2)
	// at most three tags named per category
	assert.Equal(t, "Shared music: pop, rock, jazz", reasons[0])
	assert.Equal(t, "Shared hobbies: hiking", reasons[1])
	assert.Equal(t, 5, mutual.Count)
}
