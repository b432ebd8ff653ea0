package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows per bulk COPY batch.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptIngestProfile selects reads-value handling for malformed cells.
// Valid values: "strict" (reject row), "lenient" (coerce to zero).
func OptIngestProfile(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Ingest.Profile", s) {
			c.Ingest.Profile = s
		}
	}
}

// OptIngestSheet sets the spreadsheet sheet name holding sampling rows.
func OptIngestSheet(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Ingest Sheet", s) {
			c.Ingest.Sheet = s
		}
	}
}

// OptIngestWithCanonical enables scientific-name canonicalization.
func OptIngestWithCanonical(b bool) Option {
	return func(c *Config) {
		c.Ingest.WithCanonical = b
	}
}

// OptMapCenter sets the default map center coordinates.
func OptMapCenter(lat, lon float64) Option {
	return func(c *Config) {
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			warnCoords(lat, lon)
			return
		}
		c.Map.CenterLat = lat
		c.Map.CenterLon = lon
	}
}

// OptMapZoom sets the default map zoom level.
func OptMapZoom(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Map Zoom", f) {
			c.Map.Zoom = f
		}
	}
}

// OptMapBaseRadiusMeters sets the declutter circle radius in meters
// before zoom scaling.
func OptMapBaseRadiusMeters(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Base Radius", f) {
			c.Map.BaseRadiusMeters = f
		}
	}
}

// OptMapMarkerBaseSize sets the display size factor of singleton markers.
func OptMapMarkerBaseSize(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Marker Base Size", f) {
			c.Map.MarkerBaseSize = f
		}
	}
}

// OptMapIconCacheSize bounds the in-memory marker icon cache.
func OptMapIconCacheSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Icon Cache Size", i) {
			c.Map.IconCacheSize = i
		}
	}
}

// OptServerHost sets the listen address of the HTTP API.
func OptServerHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Server Host", s) {
			c.Server.Host = s
		}
	}
}

// OptServerPort sets the listen port of the HTTP API.
func OptServerPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Port", i) {
			c.Server.Port = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of datasets ingested concurrently.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
