package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sistem-Utilitas-QR/models"
)

func TestDraftStoreDefaults(t *testing.T) {
	store, err := NewDraftStore(newTestLocalRepo(t))
	require.NoError(t, err)

	drafts := store.Load()
	assert.Equal(t, models.QRTypeURL, drafts.LastType)
	assert.Equal(t, "WPA", drafts.WiFi.Auth)
	assert.Equal(t, "USD", drafts.Payment.Currency)
}

func TestDraftStoreKeepsEveryVariantDraft(t *testing.T) {
	store, err := NewDraftStore(newTestLocalRepo(t))
	require.NoError(t, err)

	// User mengisi draft WiFi, lalu pindah ke URL; isian WiFi tidak hilang.
	drafts := store.Load()
	drafts.WiFi = models.WiFiFields{SSID: "Home", Password: "rahasia", Auth: "WPA"}
	drafts.LastType = models.QRTypeWiFi
	require.NoError(t, store.Save(drafts))

	drafts = store.Load()
	drafts.URL.Address = "example.com"
	drafts.LastType = models.QRTypeURL
	require.NoError(t, store.Save(drafts))

	final := store.Load()
	assert.Equal(t, models.QRTypeURL, final.LastType)
	assert.Equal(t, "example.com", final.URL.Address)
	assert.Equal(t, "Home", final.WiFi.SSID)
	assert.Equal(t, "rahasia", final.WiFi.Password)
}

func TestDraftStorePersistsAcrossReload(t *testing.T) {
	local := newTestLocalRepo(t)

	store, err := NewDraftStore(local)
	require.NoError(t, err)

	drafts := store.Load()
	drafts.LastType = models.QRTypeVCard
	drafts.VCard.FirstName = "Jane"
	require.NoError(t, store.Save(drafts))

	reloaded, err := NewDraftStore(local)
	require.NoError(t, err)

	final := reloaded.Load()
	assert.Equal(t, models.QRTypeVCard, final.LastType)
	assert.Equal(t, "Jane", final.VCard.FirstName)
}
