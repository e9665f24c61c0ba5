package reflist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkeep/assetlog/internal/model"
)

func TestAccountsRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, DefaultAccounts()))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultAccounts(), got)
}

func TestReadAccounts_TrimsAndSkipsBlank(t *testing.T) {
	got, err := ReadAccounts(strings.NewReader("  富邦 \n\n\tLINEPAY\n   \n"))
	require.NoError(t, err)
	assert.Equal(t, []model.Account{{Name: "富邦"}, {Name: "LINEPAY"}}, got)
}

func TestReadAccounts_KeepsDuplicates(t *testing.T) {
	got, err := ReadAccounts(strings.NewReader("A\nA\n"))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReadStocks(t *testing.T) {
	input := "台股, 2330 ,台積電\nbroken line\n台股,0050\n\n複委託-美股,AAPL,Apple,extra\n"
	got, skipped, err := ReadStocks(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, skipped, "short and blank lines are skipped")
	require.Len(t, got, 2)
	assert.Equal(t, model.Stock{Market: "台股", Code: "2330", Name: "台積電"}, got[0])
	assert.Equal(t, model.Stock{Market: "複委託-美股", Code: "AAPL", Name: "Apple"}, got[1])
}

func TestStocksRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStocks(&buf, DefaultStocks()))
	assert.True(t, strings.HasPrefix(buf.String(), "台股,2330,台積電\n"))

	got, skipped, err := ReadStocks(&buf)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, DefaultStocks(), got)
}

func TestUnmarshalStock(t *testing.T) {
	tests := []struct {
		line string
		ok   bool
	}{
		{"台股,2330,台積電", true},
		{" a , b , c ", true},
		{"a,b", false},
		{"", false},
	}
	for _, tt := range tests {
		_, ok := UnmarshalStock(tt.line)
		assert.Equal(t, tt.ok, ok, "UnmarshalStock(%q)", tt.line)
	}
}

func TestDefaults(t *testing.T) {
	assert.Len(t, DefaultAccounts(), 7)
	assert.Len(t, DefaultStocks(), 3)
	for _, s := range DefaultStocks() {
		assert.NotEmpty(t, s.Market)
		assert.NotEmpty(t, s.Code)
		assert.NotEmpty(t, s.Name)
	}
}
