package geo

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	earthRadiusKm = 6371
	// Driving distance runs roughly 30-40% over the straight line.
	drivingFactor = 1.35
)

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Resolver turns a free-text destination into an estimated driving distance in
// whole kilometers from the studio's home base. It never fails the quoting
// flow: any unresolvable input degrades to 0, which zero-rates travel.
type Resolver interface {
	Resolve(ctx context.Context, address string) int
}

// NominatimResolver geocodes through an OpenStreetMap Nominatim endpoint.
type NominatimResolver struct {
	Client  *http.Client
	BaseURL string
	// Country biases geocoding so ambiguous place names resolve locally.
	Country string
	Origin  Coordinates
	Logger  *zap.Logger
}

func NewNominatimResolver(baseURL, country string, origin Coordinates, logger *zap.Logger) *NominatimResolver {
	return &NominatimResolver{
		Client:  &http.Client{Timeout: 10 * time.Second},
		BaseURL: baseURL,
		Country: country,
		Origin:  origin,
		Logger:  logger,
	}
}

type nominatimPlace struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve geocodes the address to its single best match and returns the
// haversine distance from the origin, corrected for road tortuosity and
// rounded to the nearest kilometer.
func (r *NominatimResolver) Resolve(ctx context.Context, address string) int {
	dest := strings.TrimSpace(address)
	if len(dest) < 3 {
		return 0
	}

	// Bias the search toward the home country when the client didn't.
	query := dest
	if !strings.Contains(strings.ToLower(query), "brasil") {
		query += ", Brasil"
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")
	if r.Country != "" {
		params.Set("countrycodes", r.Country)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		r.Logger.Warn("geo: failed to build geocoding request", zap.Error(err))
		return 0
	}
	// Nominatim's usage policy requires an identifying agent.
	req.Header.Set("User-Agent", "earec-quote-server")

	resp, err := r.Client.Do(req)
	if err != nil {
		r.Logger.Warn("geo: geocoding request failed", zap.String("address", dest), zap.Error(err))
		return 0
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.Logger.Warn("geo: geocoder returned non-OK status", zap.Int("status", resp.StatusCode))
		return 0
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		r.Logger.Warn("geo: failed to decode geocoder response", zap.Error(err))
		return 0
	}
	if len(places) == 0 {
		return 0
	}

	// First result wins.
	lat, errLat := strconv.ParseFloat(places[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(places[0].Lon, 64)
	if errLat != nil || errLon != nil {
		r.Logger.Warn("geo: geocoder returned malformed coordinates",
			zap.String("lat", places[0].Lat), zap.String("lon", places[0].Lon))
		return 0
	}

	straight := haversine(r.Origin.Lat, r.Origin.Lon, lat, lon)
	return int(math.Round(straight * drivingFactor))
}

// haversine calculates the great-circle distance (in km) between two lat/lon points.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
