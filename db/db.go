package db

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/asaskevich/govalidator"
	"github.com/oschwald/maxminddb-golang"
	"github.com/sirupsen/logrus"
	"github.com/wisepythagoras/geoip-normalizer/dns"
	"github.com/wisepythagoras/geoip-normalizer/normalized"
	"github.com/wisepythagoras/geoip-normalizer/types"
)

// ErrInvalidInput is returned for strings that are neither an IP address nor
// a DNS name.
var ErrInvalidInput = errors.New("invalid input")

// AddressNotFoundError reports that the database has no record for IP.
type AddressNotFoundError struct {
	IP net.IP
}

func (e *AddressNotFoundError) Error() string {
	return fmt.Sprintf("address %s not found in database", e.IP)
}

// DB owns an open City database.
type DB struct {
	cityMmdb *maxminddb.Reader
	logger   *logrus.Entry
}

// Open memory maps the database at path.
func Open(path string) (*DB, error) {
	// Load the city database.
	cityMmdb, err := maxminddb.Open(path)

	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return newDB(cityMmdb), nil
}

// FromBytes opens a database held in memory.
func FromBytes(buf []byte) (*DB, error) {
	cityMmdb, err := maxminddb.FromBytes(buf)

	if err != nil {
		return nil, err
	}

	return newDB(cityMmdb), nil
}

func newDB(reader *maxminddb.Reader) *DB {
	return &DB{
		cityMmdb: reader,
		logger:   logrus.WithFields(logrus.Fields{
			"database_type": reader.Metadata.DatabaseType,
			"build_epoch":   reader.Metadata.BuildEpoch,
		}),
	}
}

// Lookup decodes the record for ip into result. Unlike the bare reader it
// fails with *AddressNotFoundError when the database has no entry.
func (db *DB) Lookup(ip net.IP, result any) error {
	_, ok, err := db.cityMmdb.LookupNetwork(ip, result)

	if err != nil {
		return err
	}

	if !ok {
		return &AddressNotFoundError{IP: ip}
	}

	return nil
}

// Metadata returns the metadata section of the database.
func (db *DB) Metadata() maxminddb.Metadata {
	return db.cityMmdb.Metadata
}

// Close unmaps the database. Records handed out earlier must not be used
// after this.
func (db *DB) Close() error {
	return db.cityMmdb.Close()
}

// Normalized returns a lookup entry point backed by this database.
func (db *DB) Normalized() *normalized.Database {
	return normalized.NewDatabase(db)
}

// GetIPInformation looks up one address and flattens the record with names in
// language.
func (db *DB) GetIPInformation(hostname, language string) (*types.LookupResult, error) {
	ip := net.ParseIP(hostname)

	if ip == nil {
		return nil, ErrInvalidInput
	}

	rec, err := db.Normalized().Lookup(ip)

	if err != nil {
		db.logger.WithError(err).WithField("ip", hostname).Debug("Lookup failed")
		return nil, err
	}

	return rec.Result(ip.String(), language), nil
}

// GetDomainInformation resolves hostname with caller and looks up every
// address it resolves to. Addresses missing from the database are skipped.
func (db *DB) GetDomainInformation(ctx context.Context, hostname string, dnsServerList []string, caller dns.Caller, language string) ([]*types.LookupResult, error) {
	var records []*types.LookupResult = []*types.LookupResult{}

	// Is this a valid domain name?
	if !govalidator.IsDNSName(hostname) {
		return records, ErrInvalidInput
	}

	if caller == nil {
		caller = dns.Lookup
	}

	ips, err := caller(ctx, hostname, dnsServerList)

	if err != nil {
		return records, err
	}

	for _, ip := range ips {
		info, err := db.GetIPInformation(ip.String(), language)

		if err != nil {
			continue
		}

		records = append(records, info)
	}

	return records, nil
}
