package types

// LookupResult is the flattened view of one looked up address. Fields the
// database does not carry are left out of the JSON output.
type LookupResult struct {
	IPAddress string `json:"ip_address"`
	Language  string `json:"language"`

	CountryCode            *string `json:"country_code,omitempty"`
	CountryName            *string `json:"country_name,omitempty"`
	RegisteredCountryCode  *string `json:"registered_country_code,omitempty"`
	RegisteredCountryName  *string `json:"registered_country_name,omitempty"`
	RepresentedCountryCode *string `json:"represented_country_code,omitempty"`
	RepresentedCountryName *string `json:"represented_country_name,omitempty"`

	ContinentCode      *string `json:"continent_code,omitempty"`
	ContinentGeonameID *uint32 `json:"continent_geoname_id,omitempty"`
	ContinentName      *string `json:"continent_name,omitempty"`

	CityGeonameID *uint32 `json:"city_geoname_id,omitempty"`
	CityName      *string `json:"city_name,omitempty"`

	Subdivisions []SubdivisionResult `json:"subdivisions,omitempty"`

	PostalCode *string     `json:"postal_code,omitempty"`
	TimeZone   *string     `json:"time_zone,omitempty"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}

type SubdivisionResult struct {
	GeonameID *uint32 `json:"geoname_id,omitempty"`
	ISOCode   *string `json:"iso_code,omitempty"`
	Name      *string `json:"name,omitempty"`
}

type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type ApiResponse struct {
	Success bool          `json:"success"`
	Status  string        `json:"status"`
	Record  *LookupResult `json:"record"`
}

type MultiApiResponse struct {
	Success bool            `json:"success"`
	Status  string          `json:"status"`
	Records []*LookupResult `json:"records"`
}
