package types

// City is the raw GeoIP2 City record as produced by the maxminddb decoder.
// Every node and leaf is optional: a nil pointer, nil map or nil slice means
// the database carries no value for it.
type City struct {
	Continent          *Continent    `maxminddb:"continent" json:"continent,omitempty"`
	Country            *Country      `maxminddb:"country" json:"country,omitempty"`
	RegisteredCountry  *Country      `maxminddb:"registered_country" json:"registered_country,omitempty"`
	RepresentedCountry *Country      `maxminddb:"represented_country" json:"represented_country,omitempty"`
	City               *CityNode     `maxminddb:"city" json:"city,omitempty"`
	Subdivisions       []Subdivision `maxminddb:"subdivisions" json:"subdivisions,omitempty"`
	Postal             *Postal       `maxminddb:"postal" json:"postal,omitempty"`
	Location           *Location     `maxminddb:"location" json:"location,omitempty"`
}

// Country is shared by the country, registered_country and
// represented_country nodes.
type Country struct {
	ISOCode *string           `maxminddb:"iso_code" json:"iso_code,omitempty"`
	Names   map[string]string `maxminddb:"names" json:"names,omitempty"`
}

type CityNode struct {
	GeonameID *uint32           `maxminddb:"geoname_id" json:"geoname_id,omitempty"`
	Names     map[string]string `maxminddb:"names" json:"names,omitempty"`
}

type Continent struct {
	Code      *string           `maxminddb:"code" json:"code,omitempty"`
	GeonameID *uint32           `maxminddb:"geoname_id" json:"geoname_id,omitempty"`
	Names     map[string]string `maxminddb:"names" json:"names,omitempty"`
}

type Subdivision struct {
	GeonameID *uint32           `maxminddb:"geoname_id" json:"geoname_id,omitempty"`
	ISOCode   *string           `maxminddb:"iso_code" json:"iso_code,omitempty"`
	Names     map[string]string `maxminddb:"names" json:"names,omitempty"`
}

type Postal struct {
	Code *string `maxminddb:"code" json:"code,omitempty"`
}

type Location struct {
	Longitude *float64 `maxminddb:"longitude" json:"longitude,omitempty"`
	Latitude  *float64 `maxminddb:"latitude" json:"latitude,omitempty"`
	TimeZone  *string  `maxminddb:"time_zone" json:"time_zone,omitempty"`
}
