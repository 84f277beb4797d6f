package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSerializeOmitsPassword(t *testing.T) {
	u := User{ID: 7, Email: "luke@tatooine.example", Password: "blue-milk", IsActive: true}

	raw, err := json.Marshal(u.Serialize())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, float64(7), got["id"])
	assert.Equal(t, "luke@tatooine.example", got["email"])
	assert.Equal(t, true, got["is_active"])
	assert.NotContains(t, got, "password")
}

func TestFavoriteSerializeKeepsNullTarget(t *testing.T) {
	characterID := uint(3)
	f := Favorite{ID: 1, UserID: 1, CharacterID: &characterID}

	raw, err := json.Marshal(f.Serialize())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"user_id":1,"character_id":3,"planet_id":null}`, string(raw))
}

func TestSerializeAll(t *testing.T) {
	t.Run("empty input encodes as an empty array", func(t *testing.T) {
		out := SerializeAll[PlanetResponse]([]Planet(nil))
		raw, err := json.Marshal(out)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(raw))
	})

	t.Run("keeps input order", func(t *testing.T) {
		out := SerializeAll[CharacterResponse]([]Character{
			{ID: 2, Name: "Leia Organa"},
			{ID: 1, Name: "Luke Skywalker"},
		})
		require.Len(t, out, 2)
		assert.Equal(t, "Leia Organa", out[0].Name)
		assert.Equal(t, "Luke Skywalker", out[1].Name)
	})

	t.Run("is deterministic", func(t *testing.T) {
		in := []Planet{{ID: 1, Name: "Tatooine", Climate: "arid"}}
		assert.Equal(t, SerializeAll[PlanetResponse](in), SerializeAll[PlanetResponse](in))
	})
}
