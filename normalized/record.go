package normalized

import (
	"github.com/wisepythagoras/geoip-normalizer/types"
)

// CityRecord is a read-only, flat view over a raw City record. Each getter
// walks its own path through the record and reports ok=false as soon as any
// node on that path is missing. Getters never modify the record and keep no
// state, so a CityRecord may be shared between goroutines as long as the
// underlying record is left alone.
type CityRecord struct {
	inner *types.City
}

// NewCityRecord wraps an already decoded record.
func NewCityRecord(raw *types.City) *CityRecord {
	return &CityRecord{inner: raw}
}

// Raw returns the wrapped record.
func (r *CityRecord) Raw() *types.City {
	if r == nil {
		return nil
	}

	return r.inner
}

func (r *CityRecord) record() *types.City {
	if r == nil || r.inner == nil {
		return &types.City{}
	}

	return r.inner
}

func deref[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}

	return *v, true
}

func countryCode(c *types.Country) (string, bool) {
	if c == nil {
		return "", false
	}

	return deref(c.ISOCode)
}

func countryName(c *types.Country, language string) (string, bool) {
	if c == nil {
		return "", false
	}

	return localizedName(c.Names, language)
}

// CountryCode returns the ISO code of the country.
func (r *CityRecord) CountryCode() (string, bool) {
	return countryCode(r.record().Country)
}

// CountryName returns the country name in the given language ("" for English).
func (r *CityRecord) CountryName(language string) (string, bool) {
	return countryName(r.record().Country, language)
}

// RegisteredCountryISOCode returns the ISO code of the country the network is
// registered in.
func (r *CityRecord) RegisteredCountryISOCode() (string, bool) {
	return countryCode(r.record().RegisteredCountry)
}

// RegisteredCountryName returns the registered country name in the given
// language ("" for English).
func (r *CityRecord) RegisteredCountryName(language string) (string, bool) {
	return countryName(r.record().RegisteredCountry, language)
}

// RepresentedCountryISOCode returns the ISO code of the represented country,
// e.g. the country of a military base.
func (r *CityRecord) RepresentedCountryISOCode() (string, bool) {
	return countryCode(r.record().RepresentedCountry)
}

// RepresentedCountryName returns the represented country name in the given
// language ("" for English).
func (r *CityRecord) RepresentedCountryName(language string) (string, bool) {
	return countryName(r.record().RepresentedCountry, language)
}

// CityName returns the city name in the given language ("" for English).
func (r *CityRecord) CityName(language string) (string, bool) {
	city := r.record().City

	if city == nil {
		return "", false
	}

	return localizedName(city.Names, language)
}

// CityGeonameID returns the GeoNames identifier of the city.
func (r *CityRecord) CityGeonameID() (uint32, bool) {
	city := r.record().City

	if city == nil {
		return 0, false
	}

	return deref(city.GeonameID)
}

// SubdivisionCount returns how many subdivisions the record has, most general
// first.
func (r *CityRecord) SubdivisionCount() int {
	return len(r.record().Subdivisions)
}

func (r *CityRecord) subdivision(idx int) *types.Subdivision {
	subdivisions := r.record().Subdivisions

	if idx < 0 || idx >= len(subdivisions) {
		return nil
	}

	return &subdivisions[idx]
}

// SubdivisionGeonameID returns the GeoNames identifier of the subdivision at
// idx. An index past the end is reported like a missing subdivision.
func (r *CityRecord) SubdivisionGeonameID(idx int) (uint32, bool) {
	sub := r.subdivision(idx)

	if sub == nil {
		return 0, false
	}

	return deref(sub.GeonameID)
}

// SubdivisionName returns the name of the subdivision at idx in the given
// language ("" for English).
func (r *CityRecord) SubdivisionName(idx int, language string) (string, bool) {
	sub := r.subdivision(idx)

	if sub == nil {
		return "", false
	}

	return localizedName(sub.Names, language)
}

// SubdivisionISOCode returns the ISO 3166-2 code of the subdivision at idx.
func (r *CityRecord) SubdivisionISOCode(idx int) (string, bool) {
	sub := r.subdivision(idx)

	if sub == nil {
		return "", false
	}

	return deref(sub.ISOCode)
}

// ContinentCode returns the two letter continent code.
func (r *CityRecord) ContinentCode() (string, bool) {
	continent := r.record().Continent

	if continent == nil {
		return "", false
	}

	return deref(continent.Code)
}

// ContinentGeonameID returns the GeoNames identifier of the continent.
func (r *CityRecord) ContinentGeonameID() (uint32, bool) {
	continent := r.record().Continent

	if continent == nil {
		return 0, false
	}

	return deref(continent.GeonameID)
}

// ContinentName returns the continent name in the given language ("" for
// English).
func (r *CityRecord) ContinentName(language string) (string, bool) {
	continent := r.record().Continent

	if continent == nil {
		return "", false
	}

	return localizedName(continent.Names, language)
}

// PostalCode returns the postal code.
func (r *CityRecord) PostalCode() (string, bool) {
	postal := r.record().Postal

	if postal == nil {
		return "", false
	}

	return deref(postal.Code)
}

// TimeZone returns the IANA time zone of the location.
func (r *CityRecord) TimeZone() (string, bool) {
	location := r.record().Location

	if location == nil {
		return "", false
	}

	return deref(location.TimeZone)
}

// LonAndLat returns the coordinates of the location. ok is only true when
// the record has both the longitude and the latitude.
func (r *CityRecord) LonAndLat() (lon, lat float64, ok bool) {
	location := r.record().Location

	if location == nil || location.Longitude == nil || location.Latitude == nil {
		return 0, 0, false
	}

	return *location.Longitude, *location.Latitude, true
}
