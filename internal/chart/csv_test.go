package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senja-dev/senja/internal/model"
)

func TestWriteReadAccounts(t *testing.T) {
	accts := DefaultChart()

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, accts))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, accts, got)
}

func TestReadAccountsEmpty(t *testing.T) {
	got, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnmarshalAccount(t *testing.T) {
	acct, err := UnmarshalAccount([]string{"A101", "101", "Kas", "asset"})
	require.NoError(t, err)
	assert.Equal(t, model.Account{ID: "A101", Code: "101", Name: "Kas", Type: model.AccountTypeAsset}, acct)
}

func TestUnmarshalAccountErrors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
	}{
		{"too few fields", []string{"A101", "101", "Kas"}},
		{"empty id", []string{"", "101", "Kas", "asset"}},
		{"bad type", []string{"A101", "101", "Kas", "banana"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalAccount(tt.record)
			assert.Error(t, err)
		})
	}
}
