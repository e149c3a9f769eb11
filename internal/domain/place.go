package domain

// NamedLocation is one entry of the known-places reference table.
type NamedLocation struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// DefaultPlaces is the built-in reference table. Order matters: the resolver
// returns the first entry whose tolerance box contains the query point.
// The trailing space in the first name is part of the name.
var DefaultPlaces = []NamedLocation{
	{Name: "Holiday Apartment Civitanova ", Latitude: 43.307546, Longitude: 13.7294109},
	{Name: "Holiday Apartament Chrzanow", Latitude: 50.1407078, Longitude: 19.4056969},
}

// DefaultRenames maps a lowercase resolved place name to its display name.
var DefaultRenames = map[string]string{
	"calzaturificiojessie": "4D Engineering S.r.l.",
}
