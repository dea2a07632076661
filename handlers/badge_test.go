package handlers

import (
	"net/http"
	"testing"

	"github.com/flashdeck-app/flashdeck-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBadgeAndList(t *testing.T) {
	mux, _ := newTestEnv(t)

	rec := doRequest(t, mux, http.MethodGet, "/badges", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = doRequest(t, mux, http.MethodPost, "/badge", map[string]string{
		"name": "Streak Master",
		"tag":  "consistency",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Badge created successfully", body["message"])
	badge := body["badge"].(map[string]interface{})
	assert.Equal(t, "Streak Master", badge["name"])
	assert.Equal(t, "consistency", badge["tag"])
	assert.NotEmpty(t, badge["id"])

	rec = doRequest(t, mux, http.MethodGet, "/badges", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	badges := decodeList(t, rec)
	require.Len(t, badges, 1)
	assert.Equal(t, "Streak Master", badges[0]["name"])
}

func TestCreateBadgeMissingFields(t *testing.T) {
	mux, _ := newTestEnv(t)

	rec := doRequest(t, mux, http.MethodPost, "/badge", map[string]string{"name": "Nameless"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBadgeNoDedup(t *testing.T) {
	mux, db := newTestEnv(t)

	payload := map[string]string{"name": "Twin", "tag": "dup"}
	for i := 0; i < 2; i++ {
		rec := doRequest(t, mux, http.MethodPost, "/badge", payload)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	var count int64
	require.NoError(t, db.Model(&models.Badge{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
