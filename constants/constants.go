package constants

const (
	// EnvVarPrefix is prefixed onto environment variables used when running without a config file.
	EnvVarPrefix = "SPARKIFY"

	// ConnectionTypeRedshift is the only warehouse connection type supported by this tool.
	// Redshift speaks the Postgres wire protocol so the DSN uses a postgres:// scheme.
	ConnectionTypeRedshift = "redshift"

	// WarehouseConnectionName is the config key under which the warehouse connection is stored.
	WarehouseConnectionName = "warehouse"

	// EtlSettingsName is the config key under which the S3/IAM load settings are stored.
	EtlSettingsName = "etl"

	// DefaultBucketRegion matches the region the public Sparkify datasets are hosted in.
	DefaultBucketRegion = "us-west-2"

	DefaultLogLevel = "info"

	// Statement names used for logging, stats and plan export.
	StmtCopyStagingEvents = "copy-staging-events"
	StmtCopyStagingSongs  = "copy-staging-songs"
	StmtInsertSongplays   = "insert-songplays"
	StmtInsertUsers       = "insert-users"
	StmtInsertSongs       = "insert-songs"
	StmtInsertArtists     = "insert-artists"
	StmtInsertTime        = "insert-time"
)
