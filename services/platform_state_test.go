package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sistem-Utilitas-QR/models"
)

func TestPlatformStateDefaultsWhenEmpty(t *testing.T) {
	state, err := NewPlatformState(newTestLocalRepo(t))
	require.NoError(t, err)

	cfg := state.Config()
	assert.Equal(t, models.DefaultPlatformConfig(), cfg)
	assert.True(t, state.SaveHistoryEnabled())
	assert.Nil(t, state.CurrentUser())
}

func TestPlatformStateUpdateConfigWholeReplace(t *testing.T) {
	local := newTestLocalRepo(t)
	state, err := NewPlatformState(local)
	require.NoError(t, err)

	newCfg := models.PlatformConfig{
		AppName:      "Ujian 2027 QR",
		PlatformName: "QR Sekolah",
		SaveHistory:  false,
		QRColor:      "#111111",
		BGColor:      "#eeeeee",
	}
	require.NoError(t, state.UpdateConfig(newCfg))

	assert.Equal(t, newCfg, state.Config())
	assert.False(t, state.SaveHistoryEnabled())

	// Replace utuh: field boolean yang tidak di-set ikut terganti.
	assert.False(t, state.Config().EnableVibration)

	// Persist: state baru dari repo yang sama melihat config terbaru.
	reloaded, err := NewPlatformState(local)
	require.NoError(t, err)
	assert.Equal(t, newCfg, reloaded.Config())
}

func TestPlatformStateSaveHistoryToggleGatesLedger(t *testing.T) {
	state, err := NewPlatformState(newTestLocalRepo(t))
	require.NoError(t, err)

	remote := &fakeHistoryRepo{}
	ledger := NewHistoryLedger(remote, state.SaveHistoryEnabled)

	require.NotNil(t, ledger.Record(models.OperationScan, "tercatat", ""))

	cfg := state.Config()
	cfg.SaveHistory = false
	require.NoError(t, state.UpdateConfig(cfg))

	assert.Nil(t, ledger.Record(models.OperationScan, "diabaikan", ""))
	assert.Len(t, ledger.All(), 1)
}

func TestPlatformStateLoginLogout(t *testing.T) {
	local := newTestLocalRepo(t)
	state, err := NewPlatformState(local)
	require.NoError(t, err)

	admin := models.User{Name: "Platform Admin", Email: "admin@example.com", Role: "admin"}
	require.NoError(t, state.Login(admin))

	current := state.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "admin", current.Role)

	// Identitas ikut dipersist.
	reloaded, err := NewPlatformState(local)
	require.NoError(t, err)
	require.NotNil(t, reloaded.CurrentUser())

	require.NoError(t, state.Logout())
	assert.Nil(t, state.CurrentUser())
}
