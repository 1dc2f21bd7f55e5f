package domain

// Document is a decoded JSON object returned by an upstream service as-is.
// No schema is enforced; the shape is whatever the remote service returned.
type Document map[string]any

// QuoteRecord is the body of a quote service reply.
type QuoteRecord = Document

// WeatherReport is the body of a weather service reply.
type WeatherReport = Document

// GeoLocation is the body of an IP geolocation reply.
type GeoLocation = Document

// StringField returns the string value stored under key, or "" when the key is
// missing or holds another type.
func (d Document) StringField(key string) string {
	if d == nil {
		return ""
	}

	s, _ := d[key].(string)

	return s
}

// Adcode returns the administrative region code of a geolocation reply.
func (d Document) Adcode() string {
	return d.StringField("adcode")
}

// City returns the city name of a geolocation reply.
func (d Document) City() string {
	return d.StringField("city")
}
