package normalized

import (
	"net"

	"github.com/wisepythagoras/geoip-normalizer/types"
)

// Decoder resolves an IP address into a raw record. *maxminddb.Reader and
// *db.DB both satisfy it.
type Decoder interface {
	Lookup(ip net.IP, result any) error
}

// Database is the lookup entry point: it asks the decoder for the raw City
// record of an address and wraps it in a CityRecord.
type Database struct {
	inner Decoder
}

// NewDatabase wraps an open decoder.
func NewDatabase(dec Decoder) *Database {
	return &Database{inner: dec}
}

// Lookup resolves ip. Decoder errors are returned unchanged, in which case no
// record is built.
func (d *Database) Lookup(ip net.IP) (*CityRecord, error) {
	raw := &types.City{}

	if err := d.inner.Lookup(ip, raw); err != nil {
		return nil, err
	}

	return NewCityRecord(raw), nil
}
