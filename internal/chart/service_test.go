package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senja-dev/senja/internal/model"
)

func TestNewService(t *testing.T) {
	accts := DefaultChart()
	svc := NewService(accts)

	assert.Len(t, svc.All(), len(accts))
}

func TestFindByID(t *testing.T) {
	svc := NewService(DefaultChart())

	acct, ok := svc.FindByID("A101")
	require.True(t, ok)
	assert.Equal(t, "Kas", acct.Name)
	assert.Equal(t, model.AccountTypeAsset, acct.Type)

	_, ok = svc.FindByID("ZZZ")
	assert.False(t, ok)

	assert.True(t, svc.Exists("A101"))
	assert.False(t, svc.Exists("ZZZ"))
}

func TestFindByName(t *testing.T) {
	svc := NewService(DefaultChart())

	tests := []struct {
		name   string
		wantID string
		found  bool
	}{
		{"Kas", "A101", true},
		{"kas", "A101", true},
		{"KAS", "A101", true},
		{"Utang Usaha", "L201", true},
		{"utang usaha", "L201", true},
		{"Ka", "", false},
		{"Kass", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		acct, ok := svc.FindByName(tt.name)
		assert.Equal(t, tt.found, ok, "FindByName(%q)", tt.name)
		if tt.found {
			assert.Equal(t, tt.wantID, acct.ID, "FindByName(%q)", tt.name)
		}
	}
}

func TestByTypeKeepsChartOrder(t *testing.T) {
	svc := NewService(DefaultChart())

	assets := svc.ByType(model.AccountTypeAsset)
	require.Len(t, assets, 5)
	assert.Equal(t, "A101", assets[0].ID)
	assert.Equal(t, "A105", assets[4].ID)

	expenses := svc.ByType(model.AccountTypeExpense)
	require.Len(t, expenses, 7)
	assert.Equal(t, "X501", expenses[0].ID)
	assert.Equal(t, "X507", expenses[6].ID)

	for _, a := range svc.ByType(model.AccountTypeRevenue) {
		assert.Equal(t, model.AccountTypeRevenue, a.Type)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	accts := DefaultChart()
	svc := NewService(accts)

	dir := t.TempDir()
	require.NoError(t, svc.Save(dir))

	svc2, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, svc2.All(), len(accts))

	for _, orig := range accts {
		got, ok := svc2.FindByID(orig.ID)
		require.True(t, ok, "account %s should exist", orig.ID)
		assert.Equal(t, orig, got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}
