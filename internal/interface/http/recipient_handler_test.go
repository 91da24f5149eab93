package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipientCreateAndSearch(t *testing.T) {
	env := newTestEnv()

	for i := 0; i < 11; i++ {
		w := env.do(http.MethodPost, "/api/recipients", fmt.Sprintf(`{
			"phone": "010-0000-%04d",
			"address": "Mapo-gu, Seoul"
		}`, i))
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, decodeMap(t, w)["id"])
	}

	w := env.do(http.MethodGet, "/api/recipients?q=Seoul", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 10, "search result is capped at 10")

	// Phone is searchable too.
	w = env.do(http.MethodGet, "/api/recipients?q=010-0000-0003", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// No matches is an empty array, not an error.
	w = env.do(http.MethodGet, "/api/recipients?q=Incheon", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestRecipientCreateValidation(t *testing.T) {
	env := newTestEnv()
	w := env.do(http.MethodPost, "/api/recipients", `{"name": "no phone or address"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decodeMap(t, w)["error"])
}

func TestRecipientUpdate(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/api/recipients", `{
		"name": "Kim Minji",
		"phone": "010-1111-2222",
		"address": "Seoul",
		"memo": "door code 1234"
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	id := decodeMap(t, w)["id"].(string)

	w = env.do(http.MethodPut, "/api/recipients/"+id, `{
		"phone": "010-3333-4444",
		"address": "Busan",
		"lat": 35.1796,
		"lng": 129.0756
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.Equal(t, id, body["id"])
	assert.Nil(t, body["name"], "full replace clears absent fields")
	addr := body["address"].(map[string]any)
	assert.Equal(t, "Busan", addr["full"])
	assert.Equal(t, 35.1796, addr["lat"])
}

func TestRecipientUpdateNotFound(t *testing.T) {
	env := newTestEnv()
	w := env.do(http.MethodPut, "/api/recipients/missing", `{"phone": "010", "address": "x"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Recipient with id missing not found", decodeMap(t, w)["error"])
}

func TestRecipientDelete(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/api/recipients", `{"phone": "010-1111-2222", "address": "Seoul"}`)
	require.Equal(t, http.StatusOK, w.Code)
	id := decodeMap(t, w)["id"].(string)

	w = env.do(http.MethodDelete, "/api/recipients/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeMap(t, w)["ok"])

	w = env.do(http.MethodDelete, "/api/recipients/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
