package normalized

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisepythagoras/geoip-normalizer/types"
)

type stubDecoder struct {
	records map[string]*types.City
	err     error
	calls   int
}

func (s *stubDecoder) Lookup(ip net.IP, result any) error {
	s.calls++

	if s.err != nil {
		return s.err
	}

	rec, ok := s.records[ip.String()]

	if !ok {
		return errors.New("not found")
	}

	*result.(*types.City) = *rec

	return nil
}

func TestDatabaseLookup(t *testing.T) {
	dec := &stubDecoder{
		records: map[string]*types.City{
			"81.2.69.142": fullRecord(),
			"10.0.0.1":    {},
		},
	}
	database := NewDatabase(dec)

	rec, err := database.Lookup(net.ParseIP("81.2.69.142"))
	require.NoError(t, err)

	code, ok := rec.CountryCode()
	assert.True(t, ok)
	assert.Equal(t, "GB", code)

	// A record without any data is still a successful lookup.
	rec, err = database.Lookup(net.ParseIP("10.0.0.1"))
	require.NoError(t, err)
	require.NotNil(t, rec)

	_, ok = rec.CountryCode()
	assert.False(t, ok)
	assert.Equal(t, 2, dec.calls)
}

func TestDatabaseLookupForwardsErrors(t *testing.T) {
	decodeErr := errors.New("unexpected end of database")
	database := NewDatabase(&stubDecoder{err: decodeErr})

	rec, err := database.Lookup(net.ParseIP("1.1.1.1"))
	assert.Nil(t, rec)
	assert.Same(t, decodeErr, err)
}
