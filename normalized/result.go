package normalized

import (
	"github.com/wisepythagoras/geoip-normalizer/types"
)

func optional[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}

	return &v
}

// Result flattens every field of the record into a LookupResult, with names
// resolved in the given language ("" for English).
func (r *CityRecord) Result(ipAddress, language string) *types.LookupResult {
	if language == "" {
		language = DefaultLanguage
	}

	res := &types.LookupResult{
		IPAddress: ipAddress,
		Language:  language,

		CountryCode:            optional(r.CountryCode()),
		CountryName:            optional(r.CountryName(language)),
		RegisteredCountryCode:  optional(r.RegisteredCountryISOCode()),
		RegisteredCountryName:  optional(r.RegisteredCountryName(language)),
		RepresentedCountryCode: optional(r.RepresentedCountryISOCode()),
		RepresentedCountryName: optional(r.RepresentedCountryName(language)),

		ContinentCode:      optional(r.ContinentCode()),
		ContinentGeonameID: optional(r.ContinentGeonameID()),
		ContinentName:      optional(r.ContinentName(language)),

		CityGeonameID: optional(r.CityGeonameID()),
		CityName:      optional(r.CityName(language)),

		PostalCode: optional(r.PostalCode()),
		TimeZone:   optional(r.TimeZone()),
	}

	for i := 0; i < r.SubdivisionCount(); i++ {
		res.Subdivisions = append(res.Subdivisions, types.SubdivisionResult{
			GeonameID: optional(r.SubdivisionGeonameID(i)),
			ISOCode:   optional(r.SubdivisionISOCode(i)),
			Name:      optional(r.SubdivisionName(i, language)),
		})
	}

	if lon, lat, ok := r.LonAndLat(); ok {
		res.Coordinate = &types.Coordinate{Longitude: lon, Latitude: lat}
	}

	return res
}
