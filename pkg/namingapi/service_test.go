package namingapi_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/basenames/pkg/listing"
	"github.com/dmitrymomot/basenames/pkg/namingapi"
	"github.com/dmitrymomot/basenames/pkg/numeral"
)

func TestService_Entry(t *testing.T) {
	t.Parallel()
	svc := namingapi.NewService(nil, namingapi.WithMaxBase(50))

	entry, err := svc.Entry(16)
	require.NoError(t, err)
	assert.Equal(t, listing.Entry{Base: 16, Name: "hex", Abbreviation: "HEX"}, entry)

	_, err = svc.Entry(51)
	assert.ErrorIs(t, err, namingapi.ErrBaseTooLarge)
	_, err = svc.Entry(-51)
	assert.ErrorIs(t, err, namingapi.ErrBaseTooLarge)
}

func TestService_Listing(t *testing.T) {
	t.Parallel()
	svc := namingapi.NewService(nil, namingapi.WithMaxListing(10), namingapi.WithMaxBase(20))

	entries, err := svc.Listing(18, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	_, err = svc.Listing(1, 11)
	assert.ErrorIs(t, err, namingapi.ErrListingTooLarge)

	_, err = svc.Listing(19, 3)
	assert.ErrorIs(t, err, namingapi.ErrBaseTooLarge)

	_, err = svc.Listing(1, -1)
	assert.ErrorIs(t, err, listing.ErrInvalidRange)
}

func TestService_Rational(t *testing.T) {
	t.Parallel()
	svc := namingapi.NewService(nil)

	name, err := svc.Rational(1, 10)
	require.NoError(t, err)
	assert.Equal(t, "votdecimal", name)

	_, err = svc.Rational(1, 0)
	assert.ErrorIs(t, err, namingapi.ErrZeroDenominator)

	_, err = svc.Rational(1, namingapi.DefaultMaxBase+1)
	assert.ErrorIs(t, err, namingapi.ErrBaseTooLarge)
}

func TestService_Prewarm(t *testing.T) {
	t.Parallel()
	svc := namingapi.NewService(numeral.NewCache(), namingapi.WithMaxBase(30))

	svc.Prewarm(0)
	_, abbreviations := svc.Stats()
	assert.Zero(t, abbreviations)

	svc.Prewarm(1000)
	_, abbreviations = svc.Stats()
	assert.Equal(t, 31, abbreviations)
}

func TestService_Concurrent(t *testing.T) {
	t.Parallel()
	svc := namingapi.NewService(nil)
	want := listing.NewEntry(numeral.NewCache(), 585)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := svc.Entry(585)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
